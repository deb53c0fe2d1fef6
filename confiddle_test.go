package confiddle_test

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/0xalexb/confiddle"
	jsonparser "github.com/0xalexb/confiddle/config/parser/json"
	"github.com/0xalexb/confiddle/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nestedSchema = schema.MustParse([]byte(`
type: object
required: [name]
properties:
  name:
    type: string
    default: unnamed
  ratio:
    type: number
    default: 1.0
  weights:
    type: array
    items: {type: number}
    default: [1.5, 2.0]
  server:
    type: object
    properties:
      host: {type: string, default: localhost}
      port: {type: integer, minimum: 1, maximum: 65535, default: 8080}
      tls:
        type: object
        properties:
          enabled: {type: boolean, default: false}
          cert: {type: string}
  tags:
    type: array
    items:
      type: object
      properties:
        key: {type: string}
        weight: {type: integer, default: 1}
`))

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_InjectsNestedDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := confiddle.Load(strings.NewReader("server:\n  port: 9090\n"), nestedSchema)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"name":    "unnamed",
		"ratio":   int64(1),
		"weights": []any{1.5, int64(2)},
		"server": map[string]any{
			"host": "localhost",
			"port": int64(9090),
			"tls":  map[string]any{"enabled": false},
		},
	}, cfg)
}

func TestLoad_EmptyEqualsDefaultConfig(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "\n", "null\n", "{}\n"} {
		cfg, err := confiddle.Load(strings.NewReader(input), robotSchema)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, confiddle.DefaultConfig(robotSchema), cfg, "input %q", input)
	}
}

func TestLoad_IntegralFloatsAreIntegers(t *testing.T) {
	t.Parallel()

	fromYAML, err := confiddle.Load(strings.NewReader("speed: 1.0\n"), robotSchema)
	require.NoError(t, err)

	fromJSON, err := confiddle.Load(strings.NewReader(`{"speed": 1.0}`), robotSchema,
		confiddle.WithParser(jsonparser.NewParser()))
	require.NoError(t, err)

	assert.Equal(t, int64(1), fromYAML["speed"])
	assert.Equal(t, fromYAML, fromJSON)
}

func TestLoad_FullySpecifiedIsUnchanged(t *testing.T) {
	t.Parallel()

	cfg, err := confiddle.Load(strings.NewReader("speed: 3.5\nmovement: spiral\n"), robotSchema)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"speed": 3.5, "movement": "spiral"}, cfg)
}

func TestLoad_ArrayElementsAreNotDefaulted(t *testing.T) {
	t.Parallel()

	cfg, err := confiddle.Load(strings.NewReader("tags:\n  - key: a\n"), nestedSchema)
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"key": "a"}}, cfg["tags"])
}

func TestLoad_WithoutDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := confiddle.Load(strings.NewReader("name: x\n"), nestedSchema, confiddle.WithInjectDefaults(false))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "x"}, cfg)

	_, err = confiddle.Load(strings.NewReader("server: {}\n"), nestedSchema, confiddle.WithInjectDefaults(false))
	require.ErrorIs(t, err, schema.ErrValidation)

	verr, ok := schema.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "required", verr.Issues[0].Keyword)
}

func TestLoad_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		wantPath    string
		wantKeyword string
	}{
		{name: "enum", input: "movement: bounce\n", wantPath: "/movement", wantKeyword: "enum"},
		{name: "type", input: "speed: fast\n", wantPath: "/speed", wantKeyword: "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := confiddle.Load(strings.NewReader(tt.input), robotSchema)
			require.ErrorIs(t, err, schema.ErrValidation)
			assert.Nil(t, cfg)

			verr, ok := schema.AsValidationError(err)
			require.True(t, ok)
			require.Len(t, verr.Issues, 1)
			assert.Equal(t, tt.wantPath, verr.Issues[0].Path)
			assert.Equal(t, tt.wantKeyword, verr.Issues[0].Keyword)
		})
	}
}

func TestLoad_NumericRange(t *testing.T) {
	t.Parallel()

	_, err := confiddle.Load(strings.NewReader("server:\n  port: 70000\n"), nestedSchema)

	verr, ok := schema.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "/server/port", verr.Issues[0].Path)
	assert.Equal(t, "maximum", verr.Issues[0].Keyword)
}

func TestLoad_NonMappingDocument(t *testing.T) {
	t.Parallel()

	_, err := confiddle.Load(strings.NewReader("- a\n- b\n"), robotSchema)
	require.Error(t, err)
	assert.NotErrorIs(t, err, schema.ErrValidation)
}

func TestLoad_ReadErrorIsUnchanged(t *testing.T) {
	t.Parallel()

	readErr := errors.New("broken pipe")

	_, err := confiddle.Load(iotest.ErrReader(readErr), robotSchema)
	assert.Equal(t, readErr, err)
}

func TestLoad_WithPath(t *testing.T) {
	t.Parallel()

	input := "robot:\n  speed: 4\nother: true\n"

	cfg, err := confiddle.Load(strings.NewReader(input), robotSchema, confiddle.WithPath("robot"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"speed": int64(4), "movement": "random"}, cfg)
}

func TestLoad_WithParserAndLogger(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	cfg, err := confiddle.Load(strings.NewReader(`{"speed": 7}`), robotSchema,
		confiddle.WithParser(jsonparser.NewParser()),
		confiddle.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg["speed"])
	assert.Contains(t, logs.String(), "defaults applied")
	assert.Contains(t, logs.String(), "count=1")
}

func TestLoadFile_PicksParserByExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "yaml", file: "robot.yaml", content: "speed: 2\n"},
		{name: "yml", file: "robot.yml", content: "speed: 2\n"},
		{name: "json", file: "robot.json", content: `{"speed": 2}`},
		{name: "toml", file: "robot.toml", content: "speed = 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := confiddle.LoadFile(writeFile(t, tt.file, tt.content), robotSchema)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"speed": int64(2), "movement": "random"}, cfg)
		})
	}
}

func TestLoadFile_MissingFileErrorIsUnchanged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := confiddle.LoadFile(path, robotSchema)
	require.ErrorIs(t, err, fs.ErrNotExist)

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, path, pathErr.Path)
}

func TestValidate_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	input := map[string]any{"server": map[string]any{"port": 81}}

	cfg, err := confiddle.Validate(input, nestedSchema)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"server": map[string]any{"port": 81}}, input)
	assert.Equal(t, "localhost", cfg["server"].(map[string]any)["host"])
	assert.Equal(t, int64(81), cfg["server"].(map[string]any)["port"])
}

func TestValidate_TypedContainers(t *testing.T) {
	t.Parallel()

	cfg, err := confiddle.Validate(map[string]string{"movement": "raster"}, robotSchema)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"speed": int64(1), "movement": "raster"}, cfg)

	nested := map[string]any{"server": map[string]string{"host": "example.com"}}

	cfg, err = confiddle.Validate(nested, nestedSchema)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"host": "example.com",
		"port": int64(8080),
		"tls":  map[string]any{"enabled": false},
	}, cfg["server"])
}

func TestValidate_Path(t *testing.T) {
	t.Parallel()

	doc := map[string]any{"robots": map[string]any{"r1": map[string]any{"speed": 2}}}

	cfg, err := confiddle.Validate(doc, robotSchema, confiddle.WithPath("robots:r1"))
	require.NoError(t, err)
	assert.Equal(t, "random", cfg["movement"])

	_, err = confiddle.Validate(doc, robotSchema, confiddle.WithPath("robots:r2"))
	require.ErrorIs(t, err, confiddle.ErrPathNotFound)
}

func TestValidate_Idempotent(t *testing.T) {
	t.Parallel()

	once, err := confiddle.Validate(map[string]any{}, nestedSchema)
	require.NoError(t, err)

	twice, err := confiddle.Validate(once, nestedSchema)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestLoad_NilSchemaAcceptsAnyMapping(t *testing.T) {
	t.Parallel()

	cfg, err := confiddle.Load(strings.NewReader("a: 1\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": int64(1)}, cfg)
	assert.Empty(t, confiddle.DefaultConfig(nil))
}

func TestDumpDefaultConfig_RoundTrips(t *testing.T) {
	t.Parallel()

	for _, format := range []confiddle.Format{
		confiddle.FormatYAML,
		confiddle.FormatYAMLWithComments,
		confiddle.FormatJSON,
		confiddle.FormatTOML,
	} {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			require.NoError(t, confiddle.DumpDefaultConfig(&buf, nestedSchema, format))

			ext := map[confiddle.Format]string{
				confiddle.FormatYAML:             "yaml",
				confiddle.FormatYAMLWithComments: "yaml",
				confiddle.FormatJSON:             "json",
				confiddle.FormatTOML:             "toml",
			}[format]

			cfg, err := confiddle.LoadFile(writeFile(t, "out."+ext, buf.String()), nestedSchema, confiddle.WithInjectDefaults(false))
			require.NoError(t, err)
			assert.Equal(t, confiddle.DefaultConfig(nestedSchema), cfg)
		})
	}
}

func TestDumpDefaultConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "defaults.yaml")

	require.NoError(t, confiddle.DumpDefaultConfigFile(path, robotSchema, confiddle.FormatYAML))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "speed: 1\nmovement: random\n", string(data))
}

func TestDumpDefaultConfigFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := confiddle.DumpDefaultConfigFile(filepath.Join(dir, "missing", "out.yaml"), robotSchema, confiddle.FormatYAML)
	require.ErrorIs(t, err, fs.ErrNotExist)

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)

	target := filepath.Join(dir, "out.xml")
	err = confiddle.DumpDefaultConfigFile(target, robotSchema, "xml")
	require.Error(t, err)

	_, statErr := os.Stat(target)
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}

func TestDumpConfigFile_RemovesFileOnError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.yaml")

	err := confiddle.DumpConfigFile(path, map[string]any{"speed": 2, "hook": func() {}}, robotSchema, confiddle.FormatYAMLWithComments)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}

func TestDumpConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, confiddle.DumpConfigFile(path, map[string]any{"movement": "spiral"}, robotSchema, confiddle.FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"movement": "spiral"}`, string(data))
}

func TestDumpConfig_SchemaOrder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	doc := map[string]any{"movement": "raster", "speed": 2, "owner": "ops"}
	require.NoError(t, confiddle.DumpConfig(&buf, doc, robotSchema, confiddle.FormatYAML))
	assert.Equal(t, "speed: 2\nmovement: raster\nowner: ops\n", buf.String())
}

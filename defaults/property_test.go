package defaults_test

import (
	"testing"

	"github.com/0xalexb/confiddle/defaults"
	"github.com/0xalexb/confiddle/schema"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leafDefaults are the randomized defaults of fuzzedSchema.
type leafDefaults struct {
	Name    string
	Port    int64
	Enabled bool
	Tags    []string
	Level   string
	Size    int64
}

func fuzzedSchema(t *testing.T, l leafDefaults) *schema.Schema {
	t.Helper()

	tags := make([]any, len(l.Tags))
	for i, tag := range l.Tags {
		tags[i] = tag
	}

	sch, err := schema.FromMap(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":    map[string]any{"type": "string", "default": l.Name},
			"port":    map[string]any{"type": "integer", "default": l.Port},
			"enabled": map[string]any{"type": "boolean", "default": l.Enabled},
			"tags": map[string]any{
				"type":    "array",
				"items":   map[string]any{"type": "string"},
				"default": tags,
			},
			"logging": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"level": map[string]any{"type": "string", "default": l.Level},
					"pool": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"size": map[string]any{"type": "integer", "default": l.Size},
						},
					},
				},
			},
		},
	})
	require.NoError(t, err)

	return sch
}

func TestProperty_EmptyDocumentEqualsDefaultDocument(t *testing.T) {
	t.Parallel()

	f := fuzz.New().NilChance(0).NumElements(0, 4)

	for range 50 {
		var l leafDefaults

		f.Fuzz(&l)

		sch := fuzzedSchema(t, l)

		applied, _ := defaults.Apply(sch.Root(), map[string]any{})
		assert.Equal(t, defaults.Document(sch.Root()), applied)
		require.NoError(t, sch.Validate(applied))
	}
}

func TestProperty_DefaultingIsIdempotent(t *testing.T) {
	t.Parallel()

	f := fuzz.New().NilChance(0).NumElements(0, 4)

	for range 50 {
		var l leafDefaults

		f.Fuzz(&l)

		sch := fuzzedSchema(t, l)

		var partial struct {
			Name  string
			Level string
		}

		f.Fuzz(&partial)

		doc := map[string]any{
			"name":    partial.Name,
			"logging": map[string]any{"level": partial.Level},
		}

		once, _ := defaults.Apply(sch.Root(), doc)
		twice, inserted := defaults.Apply(sch.Root(), once)

		assert.Equal(t, once, twice)
		assert.Zero(t, inserted)
	}
}

func TestProperty_FullySpecifiedDocumentIsUnchanged(t *testing.T) {
	t.Parallel()

	f := fuzz.New().NilChance(0).NumElements(0, 4)

	for range 50 {
		var schemaLeaves, docLeaves leafDefaults

		f.Fuzz(&schemaLeaves)
		f.Fuzz(&docLeaves)

		sch := fuzzedSchema(t, schemaLeaves)

		tags := make([]any, len(docLeaves.Tags))
		for i, tag := range docLeaves.Tags {
			tags[i] = tag
		}

		doc := map[string]any{
			"name":    docLeaves.Name,
			"port":    docLeaves.Port,
			"enabled": docLeaves.Enabled,
			"tags":    tags,
			"logging": map[string]any{
				"level": docLeaves.Level,
				"pool":  map[string]any{"size": docLeaves.Size},
			},
		}

		out, inserted := defaults.Apply(sch.Root(), doc)

		assert.Equal(t, doc, out)
		assert.Zero(t, inserted)
	}
}

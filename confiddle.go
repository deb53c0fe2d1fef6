package confiddle

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/0xalexb/confiddle/config"
	filefetcher "github.com/0xalexb/confiddle/config/fetcher/file"
	"github.com/0xalexb/confiddle/config/fetcher/stream"
	jsonparser "github.com/0xalexb/confiddle/config/parser/json"
	tomlparser "github.com/0xalexb/confiddle/config/parser/toml"
	yamlparser "github.com/0xalexb/confiddle/config/parser/yaml"
	"github.com/0xalexb/confiddle/defaults"
	"github.com/0xalexb/confiddle/document"
	"github.com/0xalexb/confiddle/render"
	"github.com/0xalexb/confiddle/schema"
)

// Format names an output format of the dump functions.
type Format = render.Format

// Output formats.
const (
	FormatYAML             = render.FormatYAML
	FormatYAMLWithComments = render.FormatYAMLWithComments
	FormatJSON             = render.FormatJSON
	FormatTOML             = render.FormatTOML
)

// ErrPathNotFound is returned by Validate when the document has nothing at the WithPath path.
var ErrPathNotFound = errors.New("path not found")

// Load reads a document from r, injects the defaults of sch and validates it.
// A nil schema accepts any mapping. Read errors are returned unchanged.
func Load(r io.Reader, sch *schema.Schema, opts ...Option) (map[string]any, error) {
	options := newOptions(opts)

	fetcher, err := stream.NewFetcher(r)()
	if err != nil {
		return nil, err
	}

	parser := options.Parser
	if parser == nil {
		parser = yamlparser.NewParser()
	}

	return config.Load(parser, fetcher, pipeline(sch, options))
}

// LoadFile is Load for the file at path. Without WithParser the format is
// chosen by extension: .json, .toml, anything else is YAML. Errors opening or
// reading the file are returned unchanged.
func LoadFile(path string, sch *schema.Schema, opts ...Option) (map[string]any, error) {
	options := newOptions(opts)

	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, err
	}

	parser := options.Parser
	if parser == nil {
		parser = ParserFor(fetcher.Ext())
	}

	return config.Load(parser, fetcher, pipeline(sch, options))
}

// Validate injects the defaults of sch into a copy of doc and validates it.
// doc may be built from any Go maps and slices (map[string]string, []int, ...);
// it is normalized first and never modified.
func Validate(doc any, sch *schema.Schema, opts ...Option) (map[string]any, error) {
	options := newOptions(opts)

	sub, ok := document.Lookup(document.Normalize(doc), options.Path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, options.Path)
	}

	m, err := document.NormalizeMapping(sub)
	if err != nil {
		return nil, err
	}

	return config.Process(m, pipeline(sch, options))
}

// ParserFor returns the parser for a file extension given without the leading dot.
func ParserFor(ext string) config.Parser {
	switch ext {
	case "json":
		return jsonparser.NewParser()
	case "toml":
		return tomlparser.NewParser()
	default:
		return yamlparser.NewParser()
	}
}

func pipeline(sch *schema.Schema, options Options) config.Options {
	opts := config.Options{
		Path:   options.Path,
		Logger: options.Logger,
	}

	if sch == nil {
		return opts
	}

	opts.Validator = sch
	if options.InjectDefaults {
		opts.Defaulter = defaults.For(sch)
	}

	return opts
}

// DefaultConfig returns the default document of sch: every property that
// declares a default, at every depth. Properties without one are absent.
func DefaultConfig(sch *schema.Schema) map[string]any {
	if sch == nil {
		return map[string]any{}
	}

	return defaults.For(sch).Document()
}

// DumpDefaultConfig writes the default document of sch to w in the given format.
func DumpDefaultConfig(w io.Writer, sch *schema.Schema, format Format) error {
	return DumpConfig(w, DefaultConfig(sch), sch, format)
}

// DumpDefaultConfigFile writes the default document of sch to the file at
// path, creating or truncating it. Errors creating or writing the file are
// returned unchanged.
func DumpDefaultConfigFile(path string, sch *schema.Schema, format Format) error {
	return DumpConfigFile(path, DefaultConfig(sch), sch, format)
}

// DumpConfigFile writes doc to the file at path like DumpConfig, creating or
// truncating it. The file is removed when rendering or writing fails.
func DumpConfigFile(path string, doc any, sch *schema.Schema, format Format) error {
	_, err := render.ParseFormat(string(format))
	if err != nil {
		return err
	}

	f, err := os.Create(path) // #nosec G304 -- output path is caller provided
	if err != nil {
		return err
	}

	err = DumpConfig(f, doc, sch, format)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(path)

		return err
	}

	err = f.Close()
	if err != nil {
		_ = os.Remove(path)

		return err
	}

	return nil
}

// DumpConfig writes doc to w in the given format, ordering properties as sch
// declares them. Descriptions are only written in FormatYAMLWithComments.
func DumpConfig(w io.Writer, doc any, sch *schema.Schema, format Format) error {
	var root *schema.Node
	if sch != nil {
		root = sch.Root()
	}

	return render.Render(w, root, doc, render.DefaultOptions(format))
}

package config

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/0xalexb/confiddle/document"

	"github.com/goccy/go-yaml"
)

// ErrNotMapping is returned when the (navigated) document is not a mapping.
var ErrNotMapping = document.ErrNotMapping

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "api:permissions" navigates to config["api"]["permissions"]
//   - "database:connection:timeout" navigates three levels deep
//   - "" (empty path) means parse the entire document
//
// Load always passes a *any target; Parser implementations must support it
// and may support typed targets as well.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration documents.
type Validator interface {
	Validate(doc any) error
}

// Defaulter defines an interface for filling omitted values of a configuration document.
// Implementations must not modify doc and report how many values they inserted.
type Defaulter interface {
	ApplyDefaults(doc map[string]any) (result map[string]any, inserted int)
}

// Options configures Load and Process. Nil Validator or Defaulter skip the step.
type Options struct {
	Path      string
	Validator Validator
	Defaulter Defaulter
	Logger    *slog.Logger
}

// Load reads, parses, applies defaults and validates configuration data.
// Errors returned by the fetcher and the validator are returned unchanged.
func Load(parser Parser, fetcher DataFetcher, opts Options) (map[string]any, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, err
	}

	doc, err := Parse(parser, data, opts.Path)
	if err != nil {
		return nil, err
	}

	return Process(doc, opts)
}

// Parse decodes data with parser into a normalized mapping. Blank data is the
// empty mapping, as is an explicit null document.
func Parse(parser Parser, data []byte, path string) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var raw any

	err := parser.Parse(data, &raw, path)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	doc, err := document.NormalizeMapping(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	return doc, nil
}

// Process applies defaults to a copy of doc and validates the result.
func Process(doc map[string]any, opts Options) (map[string]any, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	result := document.CloneMapping(doc)

	if opts.Defaulter != nil {
		var inserted int

		result, inserted = opts.Defaulter.ApplyDefaults(result)
		if inserted > 0 {
			logger.Info("defaults applied", slog.String("path", opts.Path), slog.Int("count", inserted))
		}
	}

	if opts.Validator != nil {
		err := opts.Validator.Validate(result)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Provider returns a function that reads, parses, sets defaults, validates
// configuration data and binds the result into target.
func Provider[T any](target *T, path string, validator Validator, defaulter Defaulter) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		doc, err := Load(parser, dataSourcer, Options{
			Path:      path,
			Validator: validator,
			Defaulter: defaulter,
		})
		if err != nil {
			return nil, err
		}

		err = Bind(doc, target)
		if err != nil {
			return nil, err
		}

		return target, nil
	}
}

// Bind decodes a document into target. Struct fields are matched with yaml tags.
func Bind(doc map[string]any, target any) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("binding error: %w", err)
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("binding error: %w", err)
	}

	return nil
}

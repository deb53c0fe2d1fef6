package toml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/0xalexb/confiddle/document"

	"github.com/BurntSushi/toml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the TOML document.
var ErrPathNotFound = errors.New("path not found")

// ErrNotTable is returned when a typed target is requested for a path that does not address a table.
var ErrNotTable = errors.New("path does not address a table")

// Parser implements config.Parser interface for TOML data.
type Parser struct {
	strict bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict makes decoding into typed targets fail on keys the target does not declare.
func WithStrict() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

// NewParser creates a new TOML parser instance.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse decodes TOML data into target, navigating to path first when it is not empty.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		if ptr, isAny := target.(*any); isAny {
			table, err := decodeTable(data)
			if err != nil {
				return err
			}

			*ptr = table

			return nil
		}

		return p.decode(data, target)
	}

	table, err := decodeTable(data)
	if err != nil {
		return err
	}

	value, ok := document.Lookup(table, path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	if ptr, isAny := target.(*any); isAny {
		*ptr = value

		return nil
	}

	sub, isTable := value.(map[string]any)
	if !isTable {
		return fmt.Errorf("%w: %s", ErrNotTable, path)
	}

	var buf bytes.Buffer

	err = toml.NewEncoder(&buf).Encode(sub)
	if err != nil {
		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return p.decode(buf.Bytes(), target)
}

func decodeTable(data []byte) (map[string]any, error) {
	table := map[string]any{}

	_, err := toml.Decode(string(data), &table)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return table, nil
}

func (p *Parser) decode(data []byte, target any) error {
	meta, err := toml.Decode(string(data), target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	if p.strict {
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unmarshal error: unknown keys %v", undecoded)
		}
	}

	return nil
}

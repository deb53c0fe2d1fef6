package json

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/0xalexb/confiddle/document"

	"github.com/goccy/go-json"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrTrailingData is returned when the JSON value is followed by more data.
var ErrTrailingData = errors.New("unexpected data after JSON value")

// ErrPathNotFound is returned when the specified path is not found in the JSON document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser interface for JSON data.
type Parser struct {
	disallowUnknownFields bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict makes decoding into typed targets fail on unknown fields.
func WithStrict() Option {
	return func(p *Parser) {
		p.disallowUnknownFields = true
	}
}

// NewParser creates a new JSON parser instance.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse decodes JSON data into target, navigating to path first when it is not empty.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		return p.decode(data, target)
	}

	var whole any

	err := p.decode(data, &whole)
	if err != nil {
		return err
	}

	value, ok := document.Lookup(document.Normalize(whole), path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	if ptr, isAny := target.(*any); isAny {
		*ptr = value

		return nil
	}

	sub, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return p.decode(sub, target)
}

func (p *Parser) decode(data []byte, target any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if p.disallowUnknownFields {
		dec.DisallowUnknownFields()
	}

	err := dec.Decode(target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return fmt.Errorf("unmarshal error: %w", ErrTrailingData)
	}

	return nil
}

package render

import (
	"errors"
	"fmt"
	"strings"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	FormatYAML             Format = "yaml"
	FormatYAMLWithComments Format = "yaml-with-comments"
	FormatJSON             Format = "json"
	FormatTOML             Format = "toml"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatYAML, FormatYAMLWithComments, FormatJSON, FormatTOML}
}

// ParseFormat returns the format named s. Matching ignores case and surrounding space.
func ParseFormat(s string) (Format, error) {
	name := Format(strings.ToLower(strings.TrimSpace(s)))

	for _, f := range Formats() {
		if f == name {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}

// Set implements pflag.Value so a Format can be bound to a command line flag.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}

	*f = parsed

	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

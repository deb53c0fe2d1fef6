package confiddle

import (
	"log/slog"

	"github.com/0xalexb/confiddle/config"
)

// Options holds the settings of a load or validation.
type Options struct {
	InjectDefaults bool
	Path           string
	Parser         config.Parser
	Logger         *slog.Logger
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

func newOptions(opts []Option) Options {
	options := Options{InjectDefaults: true}

	for _, apply := range opts {
		apply(&options)
	}

	return options
}

// WithInjectDefaults controls whether schema defaults are filled in before
// validation. Defaults are injected unless disabled.
func WithInjectDefaults(inject bool) Option {
	return func(opts *Options) {
		opts.InjectDefaults = inject
	}
}

// WithPath restricts loading to the sub-document at a colon-separated path,
// e.g. "server:tls". The schema then describes that sub-document.
func WithPath(path string) Option {
	return func(opts *Options) {
		opts.Path = path
	}
}

// WithParser sets the parser for the document text. Load defaults to YAML;
// LoadFile picks the parser from the file extension.
func WithParser(parser config.Parser) Option {
	return func(opts *Options) {
		opts.Parser = parser
	}
}

// WithLogger sets the logger that reports injected defaults.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

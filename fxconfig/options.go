package fxconfig

import (
	"errors"

	"github.com/0xalexb/confiddle/schema"
)

var (
	// ErrEmptyName is returned when a module is created without a name.
	ErrEmptyName = errors.New("config module name cannot be empty")
	// ErrNoSchema is returned when a module has neither a schema nor a schema file.
	ErrNoSchema = errors.New("config module has no schema")
	// ErrNoSource is returned when a module has no configuration file.
	ErrNoSource = errors.New("config module has no configuration source")
)

// Config describes where a module finds its schema and document.
type Config struct {
	SchemaFile     string
	Schema         *schema.Schema
	ConfigFile     string
	Path           string
	InjectDefaults bool
}

// Option defines a function type for configuring a config module.
type Option func(*Config)

// WithSchemaFile reads the schema from a YAML or JSON file.
func WithSchemaFile(path string) Option {
	return func(cfg *Config) {
		cfg.SchemaFile = path
	}
}

// WithSchema uses an already parsed schema. It takes precedence over WithSchemaFile.
func WithSchema(sch *schema.Schema) Option {
	return func(cfg *Config) {
		cfg.Schema = sch
	}
}

// WithConfigFile sets the configuration file. Its extension selects the parser.
func WithConfigFile(path string) Option {
	return func(cfg *Config) {
		cfg.ConfigFile = path
	}
}

// WithPath loads only the sub-document at a colon-separated path.
func WithPath(path string) Option {
	return func(cfg *Config) {
		cfg.Path = path
	}
}

// WithoutDefaults disables default injection.
func WithoutDefaults() Option {
	return func(cfg *Config) {
		cfg.InjectDefaults = false
	}
}

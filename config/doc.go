// Package config provides the configuration loading pipeline and its extension points.
//
// The package uses an interface-based design with four extension points:
//   - Parser: deserializes raw data into a document, with path navigation support
//   - DataFetcher: retrieves raw config data (file, stream, etc.)
//   - Defaulter: fills values the document omits (see package defaults)
//   - Validator: validates the defaulted document (see package schema)
//
// Load runs fetch, parse, default and validate in that order and returns a
// normalized generic document (see package document). Defaults are applied
// before validation, so a required property that has a default is satisfied
// by it. A failing step aborts the whole load; no partially defaulted
// document is ever returned.
//
// # Path Navigation
//
// Options.Path targets a specific section within configuration files. Paths
// use colon (:) as the separator:
//
//	"api:permissions"           -> config["api"]["permissions"]
//	"database:connection"       -> config["database"]["connection"]
//	""                          -> entire document
//
// Parser implementations handle path navigation internally. For example, the
// YAML parser in config/parser/yaml uses goccy/go-yaml PathString to efficiently
// navigate to the target section before unmarshaling.
//
// # Typed Configuration
//
// Provider binds the loaded document into a struct using yaml tags:
//
//	type APIConfig struct {
//	    Timeout int    `yaml:"timeout"`
//	    BaseURL string `yaml:"base_url"`
//	}
//
//	sch, _ := schema.ParseFile("api.schema.yaml")
//	provider := config.Provider(&APIConfig{}, "services:api", sch, defaults.For(sch))
//	cfg, err := provider(yamlparser.NewParser(), fetcher)
package config

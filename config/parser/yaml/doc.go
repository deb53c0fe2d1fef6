// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support for path navigation. The parser converts colon-separated
// paths (e.g., "api:permissions") to YAML path format (e.g.,
// "$.api.permissions") internally.
//
// Usage:
//
//	parser := yaml.NewParser()
//	var doc any
//	err := parser.Parse(data, &doc, "api:permissions")
//
// Targets may be a *any (the generic document used by config.Load) or any
// typed value goccy/go-yaml can decode into. WithStrict rejects fields the
// typed target does not declare.
//
// Path Conversion:
//   - Empty path "" -> decode entire document
//   - Single key "key" -> "$.key"
//   - Nested path "api:permissions" -> "$.api.permissions"
package yaml

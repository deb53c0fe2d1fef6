// Package toml provides a TOML parser implementation for the config package,
// built on github.com/BurntSushi/toml.
//
// A TOML document is always a table, so the generic target receives a
// map[string]any. With a colon-separated path the addressed value is looked
// up first; typed targets then require the path to address a table.
package toml

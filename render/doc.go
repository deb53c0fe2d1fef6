// Package render serializes configuration documents in the order their
// schema declares.
//
// Four formats are supported:
//
//   - yaml: a plain block-style YAML document
//   - yaml-with-comments: the same document with every described property
//     preceded by its word-wrapped description, and the schema's top-level
//     description as a banner
//   - json: indented JSON
//   - toml: a TOML document
//
// Properties are written in schema order; keys the schema does not describe
// follow in lexical order. Sequences of numbers (or of sequences of numbers)
// are written in flow style. Comments are never written inside sequence
// elements, and removing every comment line from yaml-with-comments output
// yields a document equal to the plain yaml output.
package render

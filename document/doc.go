// Package document defines the in-memory shape of configuration documents.
//
// A document is a tree of map[string]any, []any and scalars. Parsers for the
// different text formats produce slightly different Go types for the same
// value (goccy/go-yaml yields uint64 for positive integers, JSON decoders
// yield json.Number, yaml.v3 yields int). Normalize folds all of them into a
// single canonical form so that documents coming from different sources can
// be compared, defaulted and validated uniformly:
//
//   - mappings of any Go map type become map[string]any (non-string keys are
//     formatted with %v)
//   - sequences of any Go slice or array type become []any, except []byte
//   - integral numbers become int64 (uint64 when they do not fit), including
//     floating point values such as 2.0
//   - other numbers become float64
//   - strings, booleans, nil and time.Time are kept as is
//
// # Paths
//
// Lookup navigates a document with the colon separated paths used across the
// module, for example "server:tls" addresses doc["server"]["tls"].
package document

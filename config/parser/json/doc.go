// Package json provides a JSON parser implementation for the config package.
//
// Decoding uses github.com/goccy/go-json with UseNumber, so integers keep
// their exact value until the document is normalized. Colon-separated paths
// ("api:permissions") select a nested object before decoding into the target.
package json

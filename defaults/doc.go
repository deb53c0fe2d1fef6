// Package defaults fills configuration documents with the defaults declared by their schema.
//
// The walk follows the schema and the document in lockstep. For every object
// property that is missing from the document:
//   - a declared "default" is inserted (as a deep copy);
//   - otherwise, when the property is an object whose own properties declare
//     defaults, a nested sub-document is synthesized from them;
//   - otherwise the property stays absent.
//
// Inserted mappings are walked as well, so nested defaults merge into a
// declared object default. Sequences are never entered: their length and
// elements belong to the caller.
//
// The input document is never modified; Apply works on a deep copy.
package defaults

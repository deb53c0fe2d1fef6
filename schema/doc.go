// Package schema loads configuration schemas and validates documents against them.
//
// Schemas follow the JSON Schema vocabulary. The keywords the rest of the
// module cares about are modelled by Node: type, properties, items, default,
// description, title, enum, required and local $ref. Every other keyword is
// kept verbatim and enforced by the validation engine
// (github.com/santhosh-tekuri/jsonschema/v6).
//
// Schemas are read with gopkg.in/yaml.v3 so that the order in which properties
// are written in the schema source is preserved; renderers rely on that order
// when they dump documents. JSON schema text is accepted as well since JSON is
// valid YAML.
//
// # Errors
//
// Two error types are returned:
//   - *InvalidSchemaError when the schema itself is malformed (for example
//     "items" on a node whose type is not "array"); errors.Is(err, ErrInvalidSchema)
//   - *ValidationError when a document violates the schema; it lists one Issue
//     per violated constraint with a JSON Pointer to the offending value;
//     errors.Is(err, ErrValidation)
//
// # Example
//
//	sch, err := schema.Parse([]byte(`
//	properties:
//	  speed:
//	    type: number
//	    default: 1
//	`))
//	if err != nil {
//	    return err
//	}
//	err = sch.Validate(map[string]any{"speed": "fast"})
package schema

// Package confiddle loads, validates and emits human-editable configuration
// documents described by a JSON-Schema style schema.
//
// Loading parses a YAML, JSON or TOML document, fills every omitted property
// that declares a default (recursively, synthesizing nested objects when
// needed) and validates the result:
//
//	sch, err := schema.ParseFile("robot.schema.yaml")
//	if err != nil {
//	    return err
//	}
//	cfg, err := confiddle.LoadFile("robot.yaml", sch)
//
// The schema alone is enough to produce a complete default document, optionally
// annotated with the descriptions the schema carries:
//
//	err = confiddle.DumpDefaultConfig(os.Stdout, sch, confiddle.FormatYAMLWithComments)
//
// Validation failures are reported as *schema.ValidationError, malformed
// schemas as *schema.InvalidSchemaError. Errors opening or reading files are
// returned unchanged.
package confiddle

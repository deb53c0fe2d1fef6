package schema

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/0xalexb/confiddle/document"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// resourceURL names the in-memory schema resource handed to the compiler.
const resourceURL = "confiddle-schema.json"

func compile(raw any) (*jsonschema.Schema, error) {
	doc, err := toJSONValue(raw)
	if err != nil {
		return nil, &InvalidSchemaError{Reason: "schema is not representable as JSON", Err: err}
	}

	compiler := jsonschema.NewCompiler()

	err = compiler.AddResource(resourceURL, doc)
	if err != nil {
		return nil, &InvalidSchemaError{Reason: "rejected by compiler", Err: err}
	}

	compiled, err := compiler.Compile(resourceURL)
	if err != nil {
		return nil, &InvalidSchemaError{Reason: "rejected by compiler", Err: err}
	}

	return compiled, nil
}

// Validate checks doc against the schema. It returns a *ValidationError
// listing every violated constraint, or nil.
func (s *Schema) Validate(doc any) error {
	inst, err := toJSONValue(document.Normalize(doc))
	if err != nil {
		return fmt.Errorf("preparing document for validation: %w", err)
	}

	err = s.compiled.Validate(inst)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("validating document: %w", err)
	}

	return newValidationError(verr)
}

// toJSONValue converts a document into the representation the validation
// engine expects (json.Number for numbers).
func toJSONValue(v any) (any, error) {
	data, err := document.EncodeJSON(v)
	if err != nil {
		return nil, err
	}

	return jsonschema.UnmarshalJSON(bytes.NewReader(data))
}

func newValidationError(verr *jsonschema.ValidationError) *ValidationError {
	printer := message.NewPrinter(language.English)

	var issues []Issue

	collectIssues(verr, printer, &issues)

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Path != issues[j].Path {
			return issues[i].Path < issues[j].Path
		}

		return issues[i].Keyword < issues[j].Keyword
	})

	return &ValidationError{Issues: issues}
}

// collectIssues flattens the cause tree into its leaves.
func collectIssues(verr *jsonschema.ValidationError, printer *message.Printer, out *[]Issue) {
	if len(verr.Causes) > 0 {
		for _, cause := range verr.Causes {
			collectIssues(cause, printer, out)
		}

		return
	}

	var keyword string
	if kp := verr.ErrorKind.KeywordPath(); len(kp) > 0 {
		keyword = kp[len(kp)-1]
	}

	*out = append(*out, Issue{
		Path:    pointer(verr.InstanceLocation),
		Keyword: keyword,
		Message: verr.ErrorKind.LocalizedString(printer),
	})
}

func pointer(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}

	escaped := make([]string, len(tokens))
	for i, token := range tokens {
		escaped[i] = escapePointer(token)
	}

	return "/" + strings.Join(escaped, "/")
}

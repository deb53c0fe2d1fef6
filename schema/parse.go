package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/0xalexb/confiddle/document"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Schema is a parsed and compiled schema. It is immutable and safe for concurrent use.
type Schema struct {
	root     *Node
	raw      any
	compiled *jsonschema.Schema
}

// Parse reads a schema from YAML or JSON text. Empty input is the empty schema,
// which accepts any document and declares no defaults.
func Parse(data []byte) (*Schema, error) {
	var root yaml.Node

	err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&root)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return FromMap(map[string]any{})
		}

		return nil, &InvalidSchemaError{Reason: "unreadable schema", Err: err}
	}

	if len(root.Content) == 0 {
		return FromMap(map[string]any{})
	}

	return fromYAML(root.Content[0])
}

// ParseFile reads a schema from the file at path. Errors opening or reading
// the file are returned unchanged.
func ParseFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- schema path is caller provided
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// FromMap builds a schema from an already decoded mapping. Go maps carry no
// order, so properties are ordered by name.
func FromMap(m map[string]any) (*Schema, error) {
	var node yaml.Node

	err := node.Encode(m)
	if err != nil {
		return nil, &InvalidSchemaError{Reason: "unencodable schema", Err: err}
	}

	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		return fromYAML(node.Content[0])
	}

	return fromYAML(&node)
}

// MustParse is Parse that panics on error. Intended for schemas embedded in programs.
func MustParse(data []byte) *Schema {
	s, err := Parse(data)
	if err != nil {
		panic(err)
	}

	return s
}

func fromYAML(content *yaml.Node) (*Schema, error) {
	err := checkDuplicateKeys(content, "")
	if err != nil {
		return nil, err
	}

	var raw any

	err = content.Decode(&raw)
	if err != nil {
		return nil, &InvalidSchemaError{Reason: "undecodable schema", Err: err}
	}

	b := &builder{nodes: make(map[string]*Node)}

	root, err := b.build(content, "")
	if err != nil {
		return nil, err
	}

	b.link()

	raw = document.Normalize(raw)

	compiled, err := compile(raw)
	if err != nil {
		return nil, err
	}

	return &Schema{root: root, raw: raw, compiled: compiled}, nil
}

// Root returns the root node of the schema.
func (s *Schema) Root() *Node {
	return s.root
}

// Description returns the top-level description of the schema.
func (s *Schema) Description() string {
	return s.root.Description
}

// Raw returns a copy of the schema as a normalized document.
func (s *Schema) Raw() any {
	return document.Clone(s.raw)
}

type builder struct {
	nodes map[string]*Node
}

func (b *builder) build(y *yaml.Node, ptr string) (*Node, error) {
	y = unalias(y)

	switch y.Kind {
	case yaml.ScalarNode:
		if y.Tag == "!!bool" {
			n := &Node{Pointer: ptr}
			b.nodes[ptr] = n

			return n, nil
		}

		return nil, invalidf(ptr, "schema must be a mapping or a boolean, got %q", y.Value)
	case yaml.MappingNode:
	default:
		return nil, invalidf(ptr, "schema must be a mapping or a boolean")
	}

	n := &Node{Pointer: ptr}
	b.nodes[ptr] = n

	var hasProperties, hasItems bool

	for i := 0; i+1 < len(y.Content); i += 2 {
		key := y.Content[i].Value
		value := unalias(y.Content[i+1])
		keyPtr := ptr + "/" + escapePointer(key)

		var err error

		switch key {
		case "type":
			n.Types, err = stringOrList(value, keyPtr)
		case "properties":
			hasProperties = true
			n.Properties, err = b.properties(value, keyPtr)
		case "items":
			hasItems = true

			// Tuple form (a list of schemas) is left to the validator.
			if value.Kind != yaml.SequenceNode {
				n.Items, err = b.build(value, keyPtr)
			}
		case "default":
			n.Default, err = decodeValue(value, keyPtr)
			n.HasDefault = true
		case "description":
			n.Description, err = stringValue(value, keyPtr)
		case "title":
			n.Title, err = stringValue(value, keyPtr)
		case "enum":
			var enum any

			enum, err = decodeValue(value, keyPtr)
			if list, ok := enum.([]any); ok {
				n.Enum = list
			}
		case "required":
			n.Required, err = stringList(value, keyPtr, "required")
		case "$ref":
			n.Ref, err = stringValue(value, keyPtr)
		case "$defs", "definitions":
			err = b.definitions(value, keyPtr)
		}

		if err != nil {
			return nil, err
		}
	}

	if hasProperties && len(n.Types) > 0 && !n.HasType("object") {
		return nil, invalidf(ptr, "\"properties\" declared on a node of type %s", strings.Join(n.Types, "|"))
	}

	if hasItems && len(n.Types) > 0 && !n.HasType("array") {
		return nil, invalidf(ptr, "\"items\" declared on a node of type %s", strings.Join(n.Types, "|"))
	}

	return n, nil
}

func (b *builder) properties(y *yaml.Node, ptr string) ([]Property, error) {
	if y.Kind != yaml.MappingNode {
		return nil, invalidf(ptr, "\"properties\" must be a mapping")
	}

	props := make([]Property, 0, len(y.Content)/2)

	for i := 0; i+1 < len(y.Content); i += 2 {
		name := y.Content[i].Value

		child, err := b.build(y.Content[i+1], ptr+"/"+escapePointer(name))
		if err != nil {
			return nil, err
		}

		props = append(props, Property{Name: name, Node: child})
	}

	return props, nil
}

func (b *builder) definitions(y *yaml.Node, ptr string) error {
	if y.Kind != yaml.MappingNode {
		return invalidf(ptr, "definitions must be a mapping")
	}

	for i := 0; i+1 < len(y.Content); i += 2 {
		_, err := b.build(y.Content[i+1], ptr+"/"+escapePointer(y.Content[i].Value))
		if err != nil {
			return err
		}
	}

	return nil
}

// link resolves local references. Unknown targets are left for the compiler to report.
func (b *builder) link() {
	for _, n := range b.nodes {
		if !strings.HasPrefix(n.Ref, "#") {
			continue
		}

		if target, ok := b.nodes[strings.TrimPrefix(n.Ref, "#")]; ok && target != n {
			n.target = target
		}
	}
}

func unalias(y *yaml.Node) *yaml.Node {
	for y.Kind == yaml.AliasNode && y.Alias != nil {
		y = y.Alias
	}

	return y
}

func stringValue(y *yaml.Node, ptr string) (string, error) {
	if y.Kind != yaml.ScalarNode {
		return "", invalidf(ptr, "expected a string")
	}

	return y.Value, nil
}

func stringOrList(y *yaml.Node, ptr string) ([]string, error) {
	switch y.Kind {
	case yaml.ScalarNode:
		return []string{y.Value}, nil
	case yaml.SequenceNode:
		return stringList(y, ptr, "type")
	default:
		return nil, invalidf(ptr, "\"type\" must be a string or a list of strings")
	}
}

func stringList(y *yaml.Node, ptr, key string) ([]string, error) {
	if y.Kind != yaml.SequenceNode {
		return nil, invalidf(ptr, "%q must be a list of strings", key)
	}

	out := make([]string, 0, len(y.Content))

	for _, item := range y.Content {
		item = unalias(item)
		if item.Kind != yaml.ScalarNode {
			return nil, invalidf(ptr, "%q entries must be strings", key)
		}

		out = append(out, item.Value)
	}

	return out, nil
}

func decodeValue(y *yaml.Node, ptr string) (any, error) {
	var v any

	err := y.Decode(&v)
	if err != nil {
		return nil, &InvalidSchemaError{Path: ptr, Reason: "undecodable value", Err: err}
	}

	return document.Normalize(v), nil
}

// checkDuplicateKeys rejects mappings that define the same key twice.
func checkDuplicateKeys(y *yaml.Node, ptr string) error {
	y = unalias(y)

	switch y.Kind {
	case yaml.MappingNode:
		seen := make(map[string]int, len(y.Content)/2)

		for i := 0; i+1 < len(y.Content); i += 2 {
			k := y.Content[i]
			if line, dup := seen[k.Value]; dup {
				return invalidf(ptr, "duplicate key %q at line %d (first at line %d)", k.Value, k.Line, line)
			}

			seen[k.Value] = k.Line

			err := checkDuplicateKeys(y.Content[i+1], ptr+"/"+escapePointer(k.Value))
			if err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		for i, item := range y.Content {
			err := checkDuplicateKeys(item, fmt.Sprintf("%s/%d", ptr, i))
			if err != nil {
				return err
			}
		}
	}

	return nil
}

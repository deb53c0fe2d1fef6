package schema

import (
	"slices"
	"strings"
)

// maxRefHops bounds $ref chains such as a -> b -> a.
const maxRefHops = 32

// Node is the part of a schema node the defaulting and rendering walks need.
type Node struct {
	// Types lists the declared types; empty when "type" is absent.
	Types []string
	// Properties keeps the declaration order of the schema source.
	Properties []Property
	Items      *Node

	Default    any
	HasDefault bool

	Title       string
	Description string
	Enum        []any
	Required    []string

	// Ref is the raw "$ref" value. Local references are resolved by Resolve.
	Ref string
	// Pointer locates the node inside the schema document.
	Pointer string

	target *Node
}

// Property is a named object property.
type Property struct {
	Name string
	Node *Node
}

// Resolve follows local $ref links and returns the node they point to.
// Nodes without a reference (or with an unresolvable one) resolve to themselves.
func (n *Node) Resolve() *Node {
	current := n

	for hops := 0; current != nil && current.target != nil && hops < maxRefHops; hops++ {
		current = current.target
	}

	return current
}

// HasType reports whether t is among the declared types.
func (n *Node) HasType(t string) bool {
	return slices.Contains(n.Types, t)
}

// IsObject reports whether the node describes a mapping with known properties.
func (n *Node) IsObject() bool {
	if len(n.Types) == 0 {
		return len(n.Properties) > 0
	}

	return n.HasType("object")
}

// IsArray reports whether the node describes a sequence.
func (n *Node) IsArray() bool {
	if len(n.Types) == 0 {
		return n.Items != nil
	}

	return n.HasType("array")
}

// IsNumeric reports whether the node only admits numbers.
func (n *Node) IsNumeric() bool {
	if len(n.Types) == 0 {
		return false
	}

	for _, t := range n.Types {
		if t != "number" && t != "integer" {
			return false
		}
	}

	return true
}

// Property returns the schema of the named property, or nil.
func (n *Node) Property(name string) *Node {
	for _, p := range n.Properties {
		if p.Name == name {
			return p.Node
		}
	}

	return nil
}

// IsRequired reports whether the named property is listed under "required".
func (n *Node) IsRequired(name string) bool {
	return slices.Contains(n.Required, name)
}

func escapePointer(token string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(token)
}

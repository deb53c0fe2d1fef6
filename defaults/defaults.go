package defaults

import (
	"github.com/0xalexb/confiddle/document"
	"github.com/0xalexb/confiddle/schema"
)

// Injector applies the defaults of a schema node to documents.
type Injector struct {
	root *schema.Node
}

// New returns an Injector for the given schema root.
func New(root *schema.Node) *Injector {
	return &Injector{root: root}
}

// For returns an Injector for the root of sch.
func For(sch *schema.Schema) *Injector {
	return New(sch.Root())
}

// ApplyDefaults returns a copy of doc with missing defaults inserted and the
// number of values that were inserted.
func (i *Injector) ApplyDefaults(doc map[string]any) (map[string]any, int) {
	return Apply(i.root, doc)
}

// Document returns the default document of the schema.
func (i *Injector) Document() map[string]any {
	return Document(i.root)
}

// Apply returns a copy of doc with the defaults of root inserted, and the
// number of inserted values. A nil doc is treated as empty. Nested typed
// containers such as map[string]string are normalized first.
func Apply(root *schema.Node, doc map[string]any) (map[string]any, int) {
	out, _ := document.Normalize(doc).(map[string]any)
	if root == nil {
		return out, 0
	}

	w := &walker{synthesizing: make(map[*schema.Node]bool)}
	w.object(root, out)

	return out, w.inserted
}

// Document returns the default document of root: the result of applying
// defaults to an empty document.
func Document(root *schema.Node) map[string]any {
	out, _ := Apply(root, nil)

	return out
}

type walker struct {
	inserted int
	// synthesizing holds the nodes whose defaults are being synthesized,
	// so recursive schemas terminate.
	synthesizing map[*schema.Node]bool
}

func (w *walker) object(node *schema.Node, doc map[string]any) {
	node = node.Resolve()

	for _, prop := range node.Properties {
		child := prop.Node.Resolve()

		value, present := doc[prop.Name]
		if !present {
			// Produced values are already walked.
			if value, ok := w.missing(child); ok {
				doc[prop.Name] = value
			}

			continue
		}

		if sub, isMapping := value.(map[string]any); isMapping && child.IsObject() {
			w.object(child, sub)
		}
	}
}

// missing produces the value of an absent property, if the schema provides one.
func (w *walker) missing(node *schema.Node) (any, bool) {
	if w.synthesizing[node] {
		return nil, false
	}

	w.synthesizing[node] = true
	defer delete(w.synthesizing, node)

	if node.HasDefault {
		w.inserted++

		value := document.Clone(node.Default)
		if sub, isMapping := value.(map[string]any); isMapping && node.IsObject() {
			w.object(node, sub)
		}

		return value, true
	}

	if !node.IsObject() {
		return nil, false
	}

	before := w.inserted
	sub := map[string]any{}

	w.object(node, sub)

	if w.inserted == before {
		return nil, false
	}

	return sub, true
}

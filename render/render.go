package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/0xalexb/confiddle/document"
	"github.com/0xalexb/confiddle/schema"
)

// ErrUnsupportedValue is returned for document values no format can represent,
// such as functions and channels.
var ErrUnsupportedValue = errors.New("unsupported value")

// DefaultWrapWidth is the column descriptions are wrapped at.
const DefaultWrapWidth = 80

const (
	defaultYAMLIndent = 2
	defaultJSONIndent = 4
	minWrapWidth      = 20
)

// Options configures Render.
type Options struct {
	Format Format
	// Indent is the indentation step. Zero selects 2 for YAML and 4 for JSON.
	Indent int
	// WrapWidth is the column comment text is wrapped at. Negative disables wrapping.
	WrapWidth int
}

// DefaultOptions returns the options used for format f.
func DefaultOptions(f Format) Options {
	return Options{Format: f, WrapWidth: DefaultWrapWidth}
}

// Render writes doc to w in the layout described by root. A nil root writes
// every mapping in lexical key order. Nothing is written to w when rendering
// fails.
func Render(w io.Writer, root *schema.Node, doc any, opts Options) error {
	var (
		buf bytes.Buffer
		err error
	)

	switch opts.Format {
	case FormatYAML, FormatYAMLWithComments:
		err = renderYAML(&buf, root, doc, opts)
	case FormatJSON:
		err = renderJSON(&buf, root, doc, opts)
	case FormatTOML:
		err = renderTOML(&buf, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(opts.Format))
	}

	if err != nil {
		return err
	}

	_, err = w.Write(buf.Bytes())

	return err
}

// encodable reports whether scalar v can be written by the encoders.
func encodable(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return false
	default:
		return true
	}
}

// orderedKeys returns the keys of m declared by node first, in declaration
// order, followed by the remaining keys in lexical order. The schema node of
// each key is returned alongside, nil for undeclared keys.
func orderedKeys(node *schema.Node, m map[string]any) ([]string, []*schema.Node) {
	keys := make([]string, 0, len(m))
	nodes := make([]*schema.Node, 0, len(m))
	seen := make(map[string]bool, len(m))

	if node != nil {
		for _, prop := range node.Resolve().Properties {
			if _, ok := m[prop.Name]; !ok {
				continue
			}

			seen[prop.Name] = true
			keys = append(keys, prop.Name)
			nodes = append(nodes, prop.Node)
		}
	}

	for _, k := range document.SortedKeys(m) {
		if seen[k] {
			continue
		}

		keys = append(keys, k)
		nodes = append(nodes, nil)
	}

	return keys, nodes
}

func itemsOf(node *schema.Node) *schema.Node {
	if node == nil {
		return nil
	}

	return node.Resolve().Items
}

// flowItems reports whether sequences described by node are written in flow style.
func flowItems(node *schema.Node) bool {
	items := itemsOf(node)
	if items == nil {
		return false
	}

	items = items.Resolve()
	if items.IsNumeric() {
		return true
	}

	inner := itemsOf(items)

	return items.HasType("array") && inner != nil && inner.Resolve().IsNumeric()
}

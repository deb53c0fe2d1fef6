package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/0xalexb/confiddle/schema"

	"github.com/goccy/go-json"
)

func renderJSON(w io.Writer, root *schema.Node, doc any, opts Options) error {
	indent := opts.Indent
	if indent <= 0 {
		indent = defaultJSONIndent
	}

	var compact bytes.Buffer

	err := writeJSON(&compact, root, doc)
	if err != nil {
		return err
	}

	var out bytes.Buffer

	err = json.Indent(&out, compact.Bytes(), "", strings.Repeat(" ", indent))
	if err != nil {
		return fmt.Errorf("indenting json: %w", err)
	}

	out.WriteByte('\n')

	_, err = w.Write(out.Bytes())

	return err
}

// writeJSON writes v as compact JSON with mappings in schema order.
func writeJSON(buf *bytes.Buffer, node *schema.Node, v any) error {
	switch t := v.(type) {
	case map[string]any:
		buf.WriteByte('{')

		keys, nodes := orderedKeys(node, t)
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}

			key, err := json.Marshal(k)
			if err != nil {
				return fmt.Errorf("encoding key %q: %w", k, err)
			}

			buf.Write(key)
			buf.WriteByte(':')

			err = writeJSON(buf, nodes[i], t[k])
			if err != nil {
				return err
			}
		}

		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')

		items := itemsOf(node)
		for i, e := range t {
			if i > 0 {
				buf.WriteByte(',')
			}

			err := writeJSON(buf, items, e)
			if err != nil {
				return err
			}
		}

		buf.WriteByte(']')
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding %T: %w", v, err)
		}

		buf.Write(data)
	}

	return nil
}

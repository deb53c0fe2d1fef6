package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/0xalexb/confiddle/schema"

	"github.com/mitchellh/go-wordwrap"
	"gopkg.in/yaml.v3"
)

type yamlBuilder struct {
	comments bool
	indent   int
	width    int
}

func renderYAML(w io.Writer, root *schema.Node, doc any, opts Options) error {
	b := &yamlBuilder{
		comments: opts.Format == FormatYAMLWithComments,
		indent:   opts.Indent,
		width:    opts.WrapWidth,
	}
	if b.indent <= 0 {
		b.indent = defaultYAMLIndent
	}

	node, err := b.value(root, doc, 0)
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	if b.comments && root != nil && root.Description != "" {
		buf.WriteString(b.comment(root.Description, 0) + "\n\n")
	}

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(b.indent)

	err = enc.Encode(node)
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	_, err = w.Write(buf.Bytes())

	return err
}

func (b *yamlBuilder) value(node *schema.Node, v any, depth int) (*yaml.Node, error) {
	switch t := v.(type) {
	case map[string]any:
		return b.mapping(node, t, depth)
	case []any:
		return b.sequence(node, t, depth)
	default:
		if !encodable(v) {
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
		}

		out := &yaml.Node{}

		err := out.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("encoding %T: %w", v, err)
		}

		return out, nil
	}
}

func (b *yamlBuilder) mapping(node *schema.Node, m map[string]any, depth int) (*yaml.Node, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	keys, nodes := orderedKeys(node, m)
	for i, k := range keys {
		key := &yaml.Node{}

		err := key.Encode(k)
		if err != nil {
			return nil, fmt.Errorf("encoding key %q: %w", k, err)
		}

		if b.comments {
			if desc := description(nodes[i]); desc != "" {
				key.HeadComment = b.comment(desc, depth)
			}
		}

		val, err := b.value(nodes[i], m[k], depth+1)
		if err != nil {
			return nil, err
		}

		out.Content = append(out.Content, key, val)
	}

	return out, nil
}

func (b *yamlBuilder) sequence(node *schema.Node, s []any, depth int) (*yaml.Node, error) {
	out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if flowItems(node) {
		out.Style = yaml.FlowStyle
	}

	plain := *b
	plain.comments = false
	items := itemsOf(node)

	for _, e := range s {
		val, err := plain.value(items, e, depth+1)
		if err != nil {
			return nil, err
		}

		out.Content = append(out.Content, val)
	}

	return out, nil
}

// comment formats text as YAML comment lines wrapped to fit at the given depth.
func (b *yamlBuilder) comment(text string, depth int) string {
	width := b.width
	if width > 0 {
		width = max(width-depth*b.indent-2, minWrapWidth)
	}

	var lines []string

	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			lines = append(lines, "#")

			continue
		}

		if width > 0 {
			line = wordwrap.WrapString(line, uint(width))
		}

		for _, wrapped := range strings.Split(line, "\n") {
			lines = append(lines, "# "+wrapped)
		}
	}

	return strings.Join(lines, "\n")
}

func description(node *schema.Node) string {
	if node == nil {
		return ""
	}

	if node.Description != "" {
		return node.Description
	}

	return node.Resolve().Description
}

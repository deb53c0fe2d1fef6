package cli

import (
	"bytes"
	"io"

	"github.com/0xalexb/confiddle"
	"github.com/0xalexb/confiddle/render"
	"github.com/0xalexb/confiddle/schema"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

// DiffOptions holds the flags of the diff command.
type DiffOptions struct {
	*RootOptions

	SchemaFile string
	File       string
	Path       string
	Context    int
}

// NewDiffOptions returns diff options sharing the root flags.
func NewDiffOptions(root *RootOptions) *DiffOptions {
	return &DiffOptions{RootOptions: root, Context: 3}
}

// NewDiffCmd returns the command that compares a configuration file with its defaults.
func NewDiffCmd(o *DiffOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show what validation adds to a configuration file",
		Long: `Prints a unified diff between the configuration as written and the
configuration after defaults are filled in. Both sides are laid out in schema
order, so only injected settings show up.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.OutOrStdout(), cmd.ErrOrStderr()) },
	}
	cmd.Flags().StringVarP(&o.SchemaFile, "schema", "s", "", "Schema file (YAML or JSON)")
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "Configuration file (YAML, JSON or TOML)")
	cmd.Flags().StringVar(&o.Path, "path", "", "Compare only the section at this colon separated path")
	cmd.Flags().IntVarP(&o.Context, "context", "U", o.Context, "Lines of context")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// Run writes a unified diff between the configuration as written and the
// configuration with defaults filled in.
func (o *DiffOptions) Run(stdout, stderr io.Writer) error {
	sch, err := schema.ParseFile(o.SchemaFile)
	if err != nil {
		return err
	}

	written, err := confiddle.LoadFile(o.File, nil, confiddle.WithPath(o.Path))
	if err != nil {
		return err
	}

	normalized, err := confiddle.Validate(written, sch, confiddle.WithLogger(o.Logger()))
	if err != nil {
		return reportIssues(stderr, o.File, err)
	}

	before, err := dump(written, sch)
	if err != nil {
		return err
	}

	after, err := dump(normalized, sch)
	if err != nil {
		return err
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: o.File,
		ToFile:   o.File + " (with defaults)",
		Context:  o.Context,
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(stdout, text)

	return err
}

func dump(doc map[string]any, sch *schema.Schema) (string, error) {
	var buf bytes.Buffer

	err := confiddle.DumpConfig(&buf, doc, sch, render.FormatYAML)

	return buf.String(), err
}

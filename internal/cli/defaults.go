package cli

import (
	"io"

	"github.com/0xalexb/confiddle"
	"github.com/0xalexb/confiddle/render"
	"github.com/0xalexb/confiddle/schema"
	"github.com/spf13/cobra"
)

// DefaultsOptions holds the flags of the defaults command.
type DefaultsOptions struct {
	*RootOptions

	SchemaFile string
	Format     render.Format
	Output     string
}

// NewDefaultsOptions returns defaults options sharing the root flags.
func NewDefaultsOptions(root *RootOptions) *DefaultsOptions {
	return &DefaultsOptions{RootOptions: root, Format: render.FormatYAMLWithComments}
}

// NewDefaultsCmd returns the command that writes the default configuration of a schema.
func NewDefaultsCmd(o *DefaultsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the default configuration declared by a schema",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.OutOrStdout()) },
	}
	cmd.Flags().StringVarP(&o.SchemaFile, "schema", "s", "", "Schema file (YAML or JSON)")
	cmd.Flags().Var(&o.Format, "format", "Output format (yaml, yaml-with-comments, json, toml)")
	cmd.Flags().StringVarP(&o.Output, "output", "o", "", "Write to this file instead of standard output")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

// Run writes the default configuration to stdout or to the output file.
func (o *DefaultsOptions) Run(stdout io.Writer) error {
	sch, err := schema.ParseFile(o.SchemaFile)
	if err != nil {
		return err
	}

	if o.Output == "" {
		return confiddle.DumpDefaultConfig(stdout, sch, o.Format)
	}

	err = confiddle.DumpDefaultConfigFile(o.Output, sch, o.Format)
	if err != nil {
		return err
	}

	o.Logger().Info("default configuration written", "file", o.Output, "format", o.Format.String())

	return nil
}

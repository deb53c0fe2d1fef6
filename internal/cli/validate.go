package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/0xalexb/confiddle"
	"github.com/0xalexb/confiddle/render"
	"github.com/0xalexb/confiddle/schema"
	"github.com/spf13/cobra"
)

// ErrInvalidDocument is returned when a configuration file does not match its schema.
var ErrInvalidDocument = errors.New("configuration is invalid")

// ValidateOptions holds the flags of the validate command.
type ValidateOptions struct {
	*RootOptions

	SchemaFile string
	File       string
	NoDefaults bool
	Path       string
	Format     render.Format
}

// NewValidateOptions returns validate options sharing the root flags.
func NewValidateOptions(root *RootOptions) *ValidateOptions {
	return &ValidateOptions{RootOptions: root, Format: render.FormatYAML}
}

// NewValidateCmd returns the command that validates configuration files against a schema.
func NewValidateCmd(o *ValidateOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file and print it with defaults filled in",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.OutOrStdout(), cmd.ErrOrStderr()) },
	}
	cmd.Flags().StringVarP(&o.SchemaFile, "schema", "s", "", "Schema file (YAML or JSON)")
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "Configuration file (YAML, JSON or TOML)")
	cmd.Flags().BoolVar(&o.NoDefaults, "no-defaults", false, "Validate without filling in defaults")
	cmd.Flags().StringVar(&o.Path, "path", "", "Validate only the section at this colon separated path")
	cmd.Flags().Var(&o.Format, "format", "Output format (yaml, yaml-with-comments, json, toml)")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// Run validates the file and writes the result to stdout. Validation issues
// are reported on stderr, one per line.
func (o *ValidateOptions) Run(stdout, stderr io.Writer) error {
	sch, err := schema.ParseFile(o.SchemaFile)
	if err != nil {
		return err
	}

	cfg, err := confiddle.LoadFile(o.File, sch,
		confiddle.WithInjectDefaults(!o.NoDefaults),
		confiddle.WithPath(o.Path),
		confiddle.WithLogger(o.Logger()),
	)
	if err != nil {
		return reportIssues(stderr, o.File, err)
	}

	return confiddle.DumpConfig(stdout, cfg, sch, o.Format)
}

// reportIssues writes one line per validation issue and replaces err with
// ErrInvalidDocument. Other errors are returned as they are.
func reportIssues(w io.Writer, file string, err error) error {
	verr, ok := schema.AsValidationError(err)
	if !ok {
		return err
	}

	for _, issue := range verr.Issues {
		fmt.Fprintf(w, "%s: %s\n", file, issue)
	}

	return fmt.Errorf("%s: %w", file, ErrInvalidDocument)
}

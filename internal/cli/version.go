package cli

import (
	"fmt"
	"io"

	"github.com/0xalexb/confiddle"
	"github.com/spf13/cobra"
)

// VersionOptions holds the flags of the version command.
type VersionOptions struct{}

// NewVersionOptions returns empty version options.
func NewVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

// NewVersionCmd returns the command that prints the build version.
func NewVersionCmd(o *VersionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.OutOrStdout()) },
	}

	return cmd
}

// Run prints the version to w.
func (o *VersionOptions) Run(w io.Writer) error {
	_, err := fmt.Fprintf(w, "confiddle version %s (compiled at %s)\n", confiddle.Version, confiddle.CompiledAt)

	return err
}

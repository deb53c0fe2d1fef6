package cli

import (
	"log/slog"

	"github.com/0xalexb/confiddle/logging"
	"github.com/spf13/cobra"
)

// RootOptions holds the flags shared by every command.
type RootOptions struct {
	LogLevel  string
	LogFormat string

	logger *slog.Logger
}

// NewRootOptions returns root options logging warnings as text.
func NewRootOptions() *RootOptions {
	return &RootOptions{LogLevel: "warn", LogFormat: logging.FormatText}
}

// NewDefaultCmd returns the root command with every subcommand attached.
func NewDefaultCmd() *cobra.Command {
	return NewCmd(NewRootOptions())
}

// NewCmd returns the root command configured by o, without subcommands.
func NewCmd(o *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confiddle",
		Short: "Validate configuration files against a schema and generate defaults",
		Long: `confiddle validates YAML, JSON and TOML configuration files against a
JSON-Schema style schema, filling omitted settings with the defaults the
schema declares. It can also write a complete default configuration,
annotated with the descriptions found in the schema.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return o.setup(cmd) },
	}

	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", o.LogFormat, "Log format (json, text)")

	cmd.AddCommand(NewValidateCmd(NewValidateOptions(o)))
	cmd.AddCommand(NewDefaultsCmd(NewDefaultsOptions(o)))
	cmd.AddCommand(NewDiffCmd(NewDiffOptions(o)))
	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	return cmd
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	_, err := logging.ParseLevel(o.LogLevel)
	if err != nil {
		return err
	}

	format, err := logging.ParseFormat(o.LogFormat)
	if err != nil {
		return err
	}

	o.logger = logging.NewLogger(logging.LoggerConfig{Level: o.LogLevel, Format: format}, cmd.ErrOrStderr())

	return nil
}

// Logger returns the logger configured by the persistent flags.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}

	return o.logger
}

// Package cli implements the imectl command tree.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"imecore/internal/config"
	"imecore/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Version is stamped at build time.
var Version = "dev"

// NewRootCommand creates the root command for imectl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "imectl",
		Short:   "imectl - input method core tool",
		Long:    "Drive and inspect the input method core: compose sequences, scripted sessions, the event journal and configuration.",
		Version: Version,
		// main reports errors once, with the exit code they carry.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default: platform config dir)")

	cmd.AddCommand(NewComposeCommand(opts))
	cmd.AddCommand(NewReplayCommand(opts))
	cmd.AddCommand(NewJournalCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewTransportsCommand(opts))

	return cmd
}

// formatter returns an OutputFormatter writing to the command's streams.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// logger returns a debug logger on stderr in verbose mode and a discarding
// one otherwise.
func (o *RootOptions) logger(cmd *cobra.Command) *logging.Logger {
	if !o.Verbose {
		return logging.Discard()
	}
	cfg := logging.DefaultConfig()
	cfg.Level = logging.LevelDebug
	cfg.Component = "imectl"
	return logging.NewWithWriter(cfg, cmd.ErrOrStderr())
}

// configPath resolves the --config flag, falling back to a config file in
// the working directory or the platform default.
func (o *RootOptions) configPath() string {
	if o.ConfigPath != "" {
		return o.ConfigPath
	}
	if path := config.FindConfigFile(); path != "" {
		return path
	}
	return config.ConfigPath()
}

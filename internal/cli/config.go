package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"imecore/internal/config"
)

// CheckEntry is one validation problem as printed.
type CheckEntry struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CheckResult is the output of config check.
type CheckResult struct {
	Path     string       `json:"path"`
	Valid    bool         `json:"valid"`
	Errors   []CheckEntry `json:"errors,omitempty"`
	Warnings []CheckEntry `json:"warnings,omitempty"`
}

func (r CheckResult) renderText(w io.Writer) {
	for _, e := range r.Errors {
		fmt.Fprintf(w, "error   %s: %s\n", e.Field, e.Message)
	}
	for _, e := range r.Warnings {
		fmt.Fprintf(w, "warning %s: %s\n", e.Field, e.Message)
	}
	if r.Valid {
		fmt.Fprintf(w, "%s: ok\n", r.Path)
	} else {
		fmt.Fprintf(w, "%s: invalid\n", r.Path)
	}
}

// rawText prints as-is in text mode.
type rawText string

func (t rawText) renderText(w io.Writer) { io.WriteString(w, string(t)) }

// NewConfigCommand creates the config command and its subcommands.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Check, show and initialise the configuration",
	}
	cmd.AddCommand(newConfigCheckCommand(rootOpts))
	cmd.AddCommand(newConfigShowCommand(rootOpts))
	cmd.AddCommand(newConfigSchemaCommand(rootOpts))
	cmd.AddCommand(newConfigInitCommand(rootOpts))
	return cmd
}

func newConfigCheckCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration file",
		Long: `Validate the configuration file after environment overrides.

Exit codes:
  0 - Valid (warnings allowed)
  1 - Invalid
  2 - Command error (unreadable or undecodable file)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath()
			cfg, err := config.Read(path)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read config", err)
			}
			problems := cfg.Check()
			res := CheckResult{Path: path, Valid: !problems.HasErrors()}
			for _, e := range problems.Errors() {
				res.Errors = append(res.Errors, CheckEntry{Field: e.Field, Message: e.Message})
			}
			for _, e := range problems.Warnings() {
				res.Warnings = append(res.Warnings, CheckEntry{Field: e.Field, Message: e.Message})
			}
			if err := opts.formatter(cmd).Success(res); err != nil {
				return err
			}
			if !res.Valid {
				return NewExitError(ExitFailure, "configuration is invalid")
			}
			return nil
		},
	}
}

func newConfigShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Print the effective configuration",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load config", err)
			}
			if opts.Format == "json" {
				return opts.formatter(cmd).Success(cfg.Clone())
			}
			var buf bytes.Buffer
			if err := toml.NewEncoder(&buf).Encode(cfg.Clone()); err != nil {
				return WrapExitError(ExitCommandError, "failed to encode config", err)
			}
			return opts.formatter(cmd).Success(rawText(buf.String()))
		},
	}
}

func newConfigSchemaCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "schema",
		Short:         "Print the JSON schema for JSON and YAML config files",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(config.Schema())
			return err
		},
	}
}

func newConfigInitCommand(opts *RootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:           "init",
		Short:         "Write a default configuration file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.ConfigPath
			if path == "" {
				path = config.ConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return NewExitError(ExitCommandError, fmt.Sprintf("%s exists (use --force to overwrite)", path))
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return WrapExitError(ExitCommandError, "failed to write config", err)
			}
			return opts.formatter(cmd).Success(rawText(fmt.Sprintf("Wrote %s\n", path)))
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

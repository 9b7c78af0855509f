package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"imecore/internal/config"
	"imecore/internal/ime"
	"imecore/internal/service"
)

// ComposeOptions holds flags for the compose command.
type ComposeOptions struct {
	*RootOptions
	File    string
	Builtin bool
}

// ComposeStep is the engine's answer to one key.
type ComposeStep struct {
	Key     string `json:"key"`
	Status  string `json:"status"`
	Text    string `json:"text,omitempty"`
	Pending string `json:"pending,omitempty"`
}

// ComposeResult is the outcome of feeding a key sequence.
type ComposeResult struct {
	Table   string        `json:"table"`
	Entries int           `json:"entries"`
	Steps   []ComposeStep `json:"steps"`
	Output  string        `json:"output"`
}

func (r ComposeResult) renderText(w io.Writer) {
	fmt.Fprintf(w, "table: %s (%d sequences)\n", r.Table, r.Entries)
	for _, s := range r.Steps {
		line := fmt.Sprintf("  %-16s %-10s", s.Key, s.Status)
		switch {
		case s.Text != "":
			line += fmt.Sprintf(" %q", s.Text)
		case s.Pending != "":
			line += fmt.Sprintf(" [%s]", s.Pending)
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	fmt.Fprintf(w, "output: %q\n", r.Output)
}

// NewComposeCommand creates the compose command.
func NewComposeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ComposeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compose KEYSYM...",
		Short: "Feed key symbols through the compose engine",
		Long: `Feed X11 key symbol names through a compose engine and report what each
key does to the sequence.

The table comes from the configuration unless --file or --builtin is given.

Examples:
  imectl compose dead_acute e
  imectl compose --builtin Multi_key a e
  imectl compose --file ~/.XCompose --format json dead_grave a`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(opts, cmd, args)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "compose file to load")
	cmd.Flags().BoolVar(&opts.Builtin, "builtin", false, "use the built-in table")
	cmd.MarkFlagsMutuallyExclusive("file", "builtin")

	return cmd
}

func runCompose(opts *ComposeOptions, cmd *cobra.Command, args []string) error {
	syms := make([]ime.KeySymbol, len(args))
	for i, name := range args {
		sym, err := ime.ParseKeySymbol(name)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid key symbol", err)
		}
		syms[i] = sym
	}

	table, err := opts.composeTable(cmd)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load compose table", err)
	}

	return opts.formatter(cmd).Success(feedCompose(table, args, syms))
}

func (opts *ComposeOptions) composeTable(cmd *cobra.Command) (*ime.ComposeTable, error) {
	log := opts.logger(cmd)
	switch {
	case opts.Builtin:
		return ime.BuiltinComposeTable(), nil
	case opts.File != "":
		return ime.LoadComposeTable(ime.ComposeOptions{File: opts.File, Logger: log.Logger})
	}
	cfg, err := config.Load(opts.configPath())
	if err != nil {
		return nil, err
	}
	return service.LoadComposeTable(cfg.Compose, log)
}

func feedCompose(table *ime.ComposeTable, names []string, syms []ime.KeySymbol) ComposeResult {
	res := ComposeResult{Table: table.Source(), Entries: table.Len()}
	eng := ime.NewComposeEngine(table)
	var out strings.Builder
	for i, sym := range syms {
		step := ComposeStep{Key: names[i]}
		if eng.Feed(sym) == ime.FeedIgnored {
			step.Status = "ignored"
			res.Steps = append(res.Steps, step)
			continue
		}
		step.Status = eng.Status().String()
		switch eng.Status() {
		case ime.ComposeComposed:
			step.Text, _ = eng.Committed()
		case ime.ComposeComposing:
			step.Pending = eng.Placeholder()
		case ime.ComposeNothing:
			if r := sym.Rune(); r != 0 && unicode.IsPrint(r) {
				step.Text = string(r)
			}
		}
		out.WriteString(step.Text)
		res.Steps = append(res.Steps, step)
	}
	res.Output = out.String()
	return res
}

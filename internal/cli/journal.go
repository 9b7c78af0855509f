package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"imecore/internal/config"
	"imecore/internal/journal"
)

// JournalOptions holds flags shared by the journal subcommands.
type JournalOptions struct {
	*RootOptions
	Database string
}

// SessionSummary is one journal session as printed.
type SessionSummary struct {
	ID        string `json:"id"`
	Surface   uint64 `json:"surface"`
	Transport string `json:"transport"`
	Form      string `json:"form"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at,omitempty"`
	Batches   int    `json:"batches"`
}

// SessionList is the output of journal list.
type SessionList struct {
	Sessions []SessionSummary `json:"sessions"`
}

func (l SessionList) renderText(w io.Writer) {
	if len(l.Sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded")
		return
	}
	for _, s := range l.Sessions {
		state := "open"
		if s.EndedAt != "" {
			state = "ended " + s.EndedAt
		}
		fmt.Fprintf(w, "%s  surface %d  %s/%s  %d batches  started %s  %s\n",
			s.ID, s.Surface, s.Transport, s.Form, s.Batches, s.StartedAt, state)
	}
}

// BatchSummary is one recorded batch as printed.
type BatchSummary struct {
	Seq    int      `json:"seq"`
	At     string   `json:"at"`
	Events []string `json:"events"`
}

// SessionDetail is the output of journal show.
type SessionDetail struct {
	Session SessionSummary `json:"session"`
	Batches []BatchSummary `json:"batches"`
}

func (d SessionDetail) renderText(w io.Writer) {
	SessionList{Sessions: []SessionSummary{d.Session}}.renderText(w)
	for _, b := range d.Batches {
		fmt.Fprintf(w, "%4d %s  %s\n", b.Seq, b.At, strings.Join(b.Events, " "))
	}
}

// PruneResult is the output of journal prune.
type PruneResult struct {
	Cutoff  string `json:"cutoff"`
	Removed int64  `json:"removed"`
}

func (p PruneResult) renderText(w io.Writer) {
	fmt.Fprintf(w, "Removed %d session(s) ended before %s\n", p.Removed, p.Cutoff)
}

// NewJournalCommand creates the journal command and its subcommands.
func NewJournalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &JournalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect the recorded event journal",
		Long: `Inspect the SQLite journal of delivered IME event batches.

The database defaults to journal.path from the configuration.

Examples:
  imectl journal list
  imectl journal show 3f6c0a9e-...
  imectl journal prune --older-than 720h --db ./journal.db`,
	}
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to the journal database")

	cmd.AddCommand(newJournalListCommand(opts))
	cmd.AddCommand(newJournalShowCommand(opts))
	cmd.AddCommand(newJournalPruneCommand(opts))
	return cmd
}

func newJournalListCommand(opts *JournalOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List sessions, newest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer j.Close()

			sessions, err := j.Sessions(limit)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to list sessions", err)
			}
			out := SessionList{Sessions: make([]SessionSummary, 0, len(sessions))}
			for _, s := range sessions {
				out.Sessions = append(out.Sessions, summarize(s))
			}
			return opts.formatter(cmd).Success(out)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of sessions (0 for all)")
	return cmd
}

func newJournalShowCommand(opts *JournalOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show SESSION",
		Short:         "Show the batches of one session",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer j.Close()

			s, err := j.Session(args[0])
			if errors.Is(err, journal.ErrSessionNotFound) {
				return WrapExitError(ExitFailure, "no such session", err)
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read session", err)
			}
			batches, err := j.Batches(s.ID)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read batches", err)
			}
			out := SessionDetail{Session: summarize(s), Batches: make([]BatchSummary, 0, len(batches))}
			for _, b := range batches {
				bs := BatchSummary{Seq: b.Seq, At: b.At.Format(time.RFC3339Nano)}
				for _, ev := range b.Events {
					bs.Events = append(bs.Events, fmt.Sprint(ev))
				}
				out.Batches = append(out.Batches, bs)
			}
			return opts.formatter(cmd).Success(out)
		},
	}
}

func newJournalPruneCommand(opts *JournalOptions) *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:           "prune",
		Short:         "Delete ended sessions older than a cutoff",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan < 0 {
				return NewExitError(ExitCommandError, "--older-than must not be negative")
			}
			j, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer j.Close()

			cutoff := time.Now().Add(-olderThan)
			n, err := j.Prune(cutoff)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to prune journal", err)
			}
			return opts.formatter(cmd).Success(PruneResult{Cutoff: cutoff.Format(time.RFC3339), Removed: n})
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "age of the sessions to delete")
	return cmd
}

func (opts *JournalOptions) open(cmd *cobra.Command) (*journal.Journal, error) {
	path := opts.Database
	if path == "" {
		cfg, err := config.Load(opts.configPath())
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load config", err)
		}
		path = cfg.Journal.Path
	}
	j, err := journal.Open(path, journal.Options{Inspect: true, Logger: opts.logger(cmd).Logger})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open journal", err)
	}
	opts.formatter(cmd).VerboseLog("journal: %s", path)
	return j, nil
}

func summarize(s journal.Session) SessionSummary {
	out := SessionSummary{
		ID:        s.ID,
		Surface:   uint64(s.Surface),
		Transport: s.Transport,
		Form:      s.Form,
		StartedAt: s.StartedAt.Format(time.RFC3339),
		Batches:   s.Batches,
	}
	if !s.Open() {
		out.EndedAt = s.EndedAt.Format(time.RFC3339)
	}
	return out
}

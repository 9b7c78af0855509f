package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"imecore/internal/ime"
	"imecore/internal/service"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Watch      bool
	PruneAfter time.Duration
	Listen     string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the IME core and drive one surface from stdin",
		Long: `Start the IME core with the configured transport, journal and logging, and
drive surface 1 from standard input, one command per line:

  enable [capability...]   open an IME session
  disable                  close it
  key NAME                 press and release a key (NAME may be given bare)
  stats                    print key and event counters
  quit                     stop

Delivered event batches and typed text are printed as they happen. The
command stops on quit, end of input, SIGINT or SIGTERM.

With --listen, Prometheus metrics are served on /metrics and health checks
on /healthz and /readyz.

Examples:
  imectl run
  printf 'enable\ndead_acute\ne\n' | imectl run --config ./config.toml
  imectl run --listen 127.0.0.1:9464`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runService(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "reload the configuration file when it changes")
	cmd.Flags().DurationVar(&opts.PruneAfter, "prune-after", 0, "hourly delete journal sessions older than this (0 disables)")
	cmd.Flags().StringVar(&opts.Listen, "listen", "", "serve metrics and health checks on this address")

	return cmd
}

// lockedWriter serializes output from event delivery and the input loop.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) printf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format, args...)
}

func runService(opts *RunOptions, cmd *cobra.Command) error {
	out := &lockedWriter{w: cmd.OutOrStdout()}
	sink := ime.EventSinkFunc(func(id ime.SurfaceID, events []ime.Event) {
		parts := make([]string, len(events))
		for i, ev := range events {
			parts[i] = fmt.Sprint(ev)
		}
		out.printf("surface %d: %s\n", id, strings.Join(parts, " "))
	})

	svcOpts := service.Options{ConfigPath: opts.configPath(), Sink: sink, Watch: opts.Watch, Version: Version}
	if opts.Verbose {
		svcOpts.Logger = opts.logger(cmd)
	}
	svc, err := service.New(svcOpts)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to start", err)
	}
	defer svc.Close()
	if opts.Listen != "" {
		stop, addr, err := serveDiagnostics(svc, opts.Listen)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to listen", err)
		}
		defer stop()
		out.printf("serving metrics on http://%s/metrics\n", addr)
	}
	out.printf("transport %s ready\n", svc.Manager().TransportName())

	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	var prune <-chan time.Time
	if opts.PruneAfter > 0 && svc.Journal() != nil {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		prune = ticker.C
	}

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigChan:
			return nil
		case <-prune:
			if n, err := svc.Journal().Prune(time.Now().Add(-opts.PruneAfter)); err != nil {
				svc.Logger().Warn("journal prune failed", "error", err)
			} else if n > 0 {
				svc.Logger().Info("journal pruned", "sessions", n)
			}
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			quit, err := runLine(svc, out, line)
			if err != nil {
				out.printf("error: %v\n", err)
			}
			if quit {
				return nil
			}
		}
	}
}

// serveDiagnostics serves metrics and health on addr until stop is called.
func serveDiagnostics(svc *service.Service, addr string) (stop func(), bound string, err error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, "", err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", svc.Metrics().Registry().HTTPHandler())
	svc.Health().Mount(mux)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			svc.Logger().Error("diagnostics server failed", "error", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}, ln.Addr().String(), nil
}

const consoleSurface ime.SurfaceID = 1

func runLine(svc *service.Service, out *lockedWriter, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}
	m := svc.Manager()
	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "stats":
		snap := svc.Metrics().Registry().Snapshot()
		names := make([]string, 0, len(snap))
		for name := range snap {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			out.printf("%s %d\n", name, snap[name])
		}
		return false, nil
	case "enable":
		caps := ime.NewCapabilities()
		for _, name := range fields[1:] {
			with, ok := capabilityNames[name]
			if !ok {
				return false, fmt.Errorf("unknown capability %q", name)
			}
			caps = with(caps)
		}
		// Data for negotiated capabilities arrives with later updates.
		req, _ := ime.NewEnableRequest(caps, ime.RequestData{})
		return false, m.Enable(consoleSurface, req)
	case "disable":
		m.Disable(consoleSurface)
		return false, nil
	case "key":
		if len(fields) != 2 {
			return false, fmt.Errorf("key needs one symbol name")
		}
		fields = fields[1:]
	}
	if len(fields) != 1 {
		return false, fmt.Errorf("unknown command %q", line)
	}
	sym, err := ime.ParseKeySymbol(fields[0])
	if err != nil {
		return false, err
	}
	in := ime.KeyInput{Symbol: sym}
	res := svc.FeedKey(consoleSurface, in, true)
	svc.FeedKey(consoleSurface, in, false)
	switch {
	case res == nil:
	case res.Consumed:
		out.printf("key %s consumed\n", fields[0])
	case res.Text != "":
		out.printf("key %s typed %q\n", fields[0], res.Text)
	default:
		out.printf("key %s %s\n", fields[0], res.Logical)
	}
	return false, nil
}

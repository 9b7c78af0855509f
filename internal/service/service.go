// Package service assembles a running IME core from configuration: the
// logger, the compose table, the transport, the optional journal, metrics,
// health checks and the Manager that ties them together. With watching enabled it applies
// configuration edits that can change at runtime.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"imecore/internal/config"
	"imecore/internal/health"
	"imecore/internal/ime"
	"imecore/internal/journal"
	"imecore/internal/logging"
	"imecore/internal/metrics"
)

// Options configures New.
type Options struct {
	// ConfigPath is the configuration file. Empty means the default path.
	ConfigPath string

	// Sink receives event batches after they are journaled.
	Sink ime.EventSink

	// Logger overrides the logger built from the configuration.
	Logger *logging.Logger

	// Metrics is the registry the core's metrics are registered in. Nil
	// means a private one.
	Metrics *metrics.Registry

	// Watch reloads the configuration file when it changes.
	Watch bool

	// Version is recorded in crash reports.
	Version string
}

// Service is an assembled IME core.
type Service struct {
	loader  *config.Loader
	log     *logging.Logger
	ownLog  bool
	table   *ime.ComposeTable
	journal *journal.Journal
	manager *ime.Manager
	crash   *logging.CrashHandler
	metrics *metrics.IME
	health  *health.Checker

	mu   sync.Mutex
	cfg  *config.Config
	stop chan struct{}
	once sync.Once
}

// New loads the configuration and starts the core.
func New(opts Options) (*Service, error) {
	loader := config.NewLoader(opts.ConfigPath)
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	s := &Service{
		loader:  loader,
		cfg:     cfg,
		log:     opts.Logger,
		stop:    make(chan struct{}),
		metrics: metrics.NewIME(opts.Metrics),
		health:  health.NewChecker(),
	}
	if s.log == nil {
		lc, err := LogConfig(cfg.Logging)
		if err != nil {
			return nil, err
		}
		if s.log, err = logging.New(lc); err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
		s.ownLog = true
	}
	s.crash = logging.NewCrashHandler(logging.DefaultCrashDir(), opts.Version, s.log.Logger)

	s.table, err = LoadComposeTable(cfg.Compose, s.log)
	if err != nil {
		s.log.Warn("compose table unavailable, dead keys disabled", "error", err)
	}

	form, err := ime.ParseEventForm(cfg.Events.Form)
	if err != nil {
		s.closeLog()
		return nil, err
	}

	sink := s.metrics.Sink(opts.Sink)
	if cfg.Journal.Enabled {
		s.journal, err = journal.Open(cfg.Journal.Path, journal.Options{
			Transport: cfg.Transport.Kind,
			Form:      form,
			Logger:    s.log.Logger,
		})
		if err != nil {
			s.closeLog()
			return nil, fmt.Errorf("open journal: %w", err)
		}
		sink = s.journal.Tee(sink)
	}

	factory, err := ime.SelectTransport(cfg.Transport.Kind, ime.TransportConfig{
		IBusAddress:  cfg.Transport.IBusAddress,
		ClientName:   cfg.Transport.ClientName,
		ComposeTable: s.table,
		Logger:       s.log.WithComponent("transport").Logger,
	})
	if err != nil {
		s.Close()
		return nil, err
	}

	s.manager = ime.NewManager(ime.ManagerConfig{
		ComposeTable: s.table,
		Transport:    factory,
		Form:         form,
		Logger:       s.log.Logger,
	}, sink)
	if s.journal != nil {
		s.journal.SetLabels(s.manager.TransportName(), form)
	}
	s.registerChecks(cfg.Transport.Kind)
	s.health.SetReady(true)
	s.log.Info("ime core started",
		"transport", s.manager.TransportName(),
		"form", form.String(),
		"compose_table", tableSource(s.table),
		"journal", cfg.Journal.Enabled)

	if opts.Watch {
		loader.OnChange(s.apply)
		if err := loader.Watch(); err != nil {
			s.log.Warn("config watch unavailable", "path", loader.Path(), "error", err)
		} else {
			s.crash.Go("config errors", s.drainConfigErrors)
		}
	}
	return s, nil
}

func (s *Service) registerChecks(kind string) {
	s.health.RegisterFunc("transport", false, func(context.Context) health.CheckResult {
		active := s.manager.TransportName()
		if active == ime.TransportNone && kind != ime.TransportNone {
			return health.Degraded("running without an input method")
		}
		return health.Healthy(active)
	})
	s.health.RegisterFunc("compose", false, func(context.Context) health.CheckResult {
		if s.table == nil {
			return health.Degraded("no compose table, dead keys disabled")
		}
		return health.Healthy(s.table.Source())
	})
	if s.journal != nil {
		s.health.RegisterFunc("journal", true, func(ctx context.Context) health.CheckResult {
			if err := s.journal.Ping(ctx); err != nil {
				return health.Unhealthy("journal unreachable", err)
			}
			return health.Healthy("open")
		})
	}
}

func tableSource(t *ime.ComposeTable) string {
	if t == nil {
		return "none"
	}
	return t.Source()
}

// LoadComposeTable shares one table per process when it is derived from
// the environment, and loads a private one for explicit files or locales.
func LoadComposeTable(c config.ComposeConfig, log *logging.Logger) (*ime.ComposeTable, error) {
	opts := ime.ComposeOptions{
		File:            c.File,
		Locale:          c.Locale,
		XLocaleDir:      c.XLocaleDir,
		BuiltinFallback: c.BuiltinFallback,
		Logger:          log.WithComponent("compose").Logger,
	}
	if c.File == "" && c.Locale == "" {
		return ime.SharedComposeTable(opts)
	}
	return ime.LoadComposeTable(opts)
}

// LogConfig converts the logging section to a logging.Config.
func LogConfig(c config.LoggingConfig) (*logging.Config, error) {
	level, err := logging.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}
	lc := logging.DefaultConfig()
	lc.Level = level
	lc.Format = format
	lc.Output = c.Output
	lc.FilePath = c.FilePath
	lc.MaxSize = int64(c.MaxSizeMB)
	lc.MaxBackups = c.MaxBackups
	lc.MaxAge = c.MaxAgeDays
	lc.Compress = c.Compress
	return lc, nil
}

// apply handles a reloaded configuration. Level and event form change in
// place; everything else needs a restart.
func (s *Service) apply(old, cfg *config.Config) {
	defer func() {
		s.mu.Lock()
		s.cfg = cfg
		s.mu.Unlock()
	}()

	if old == nil {
		return
	}
	if old.Logging.Level != cfg.Logging.Level {
		if level, err := logging.ParseLevel(cfg.Logging.Level); err == nil {
			s.log.SetLevel(level)
			s.log.Info("log level changed", "level", cfg.Logging.Level)
		}
	}
	if old.Events.Form != cfg.Events.Form {
		if form, err := ime.ParseEventForm(cfg.Events.Form); err == nil {
			s.manager.SetEventForm(form)
			if s.journal != nil {
				s.journal.SetLabels(s.manager.TransportName(), form)
			}
			s.log.Info("event form changed", "form", form.String())
		}
	}
	if old.Transport != cfg.Transport || old.Compose != cfg.Compose || old.Journal != cfg.Journal ||
		old.Logging.Output != cfg.Logging.Output || old.Logging.FilePath != cfg.Logging.FilePath {
		s.log.Warn("configuration change needs a restart to take effect")
	}
}

func (s *Service) drainConfigErrors() {
	for {
		select {
		case <-s.stop:
			return
		case err := <-s.loader.Errors():
			s.log.Error("config reload failed, keeping previous configuration", "error", err)
		}
	}
}

// Manager returns the running Manager.
func (s *Service) Manager() *ime.Manager { return s.manager }

// FeedKey feeds a key to the Manager and counts the result.
func (s *Service) FeedKey(id ime.SurfaceID, in ime.KeyInput, pressed bool) *ime.KeyEventResult {
	res := s.manager.FeedKey(id, in, pressed)
	s.metrics.ObserveKey(res)
	return res
}

// Metrics returns the core's metrics.
func (s *Service) Metrics() *metrics.IME { return s.metrics }

// Health returns the health checker.
func (s *Service) Health() *health.Checker { return s.health }

// Journal returns the journal, nil when disabled.
func (s *Service) Journal() *journal.Journal { return s.journal }

// Logger returns the service logger.
func (s *Service) Logger() *logging.Logger { return s.log }

// ComposeTable returns the loaded compose table, nil when unavailable.
func (s *Service) ComposeTable() *ime.ComposeTable { return s.table }

// Config returns the configuration currently in effect.
func (s *Service) Config() *config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// DestroySurface tears a surface down and ends its journal session.
func (s *Service) DestroySurface(id ime.SurfaceID) {
	s.manager.DestroySurface(id)
	if s.journal != nil {
		if err := s.journal.EndSurface(id); err != nil {
			s.log.Warn("end journal session", "surface", uint64(id), "error", err)
		}
	}
}

// Close stops watching, shuts the core down and closes the journal.
func (s *Service) Close() error {
	var errs []error
	s.once.Do(func() {
		close(s.stop)
		s.health.SetReady(false)
		if err := s.loader.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close config watcher: %w", err))
		}
		if s.manager != nil {
			if err := s.manager.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close transport: %w", err))
			}
		}
		if s.journal != nil {
			if err := s.journal.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close journal: %w", err))
			}
		}
		s.closeLog()
	})
	return errors.Join(errs...)
}

func (s *Service) closeLog() {
	if s.ownLog {
		s.log.Close()
	}
}

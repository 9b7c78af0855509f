// Package health runs component checks for the IME core and serves
// liveness and readiness endpoints.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"
)

// Status represents the health status of a component.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
	StatusUnknown   Status = "unknown"
)

// CheckResult is the outcome of one check.
type CheckResult struct {
	Status      Status        `json:"status"`
	Message     string        `json:"message,omitempty"`
	LastChecked time.Time     `json:"last_checked"`
	Duration    time.Duration `json:"duration_ns"`
	Error       string        `json:"error,omitempty"`
}

// Healthy returns a healthy result with a message.
func Healthy(msg string) CheckResult { return CheckResult{Status: StatusHealthy, Message: msg} }

// Degraded returns a degraded result with a message.
func Degraded(msg string) CheckResult { return CheckResult{Status: StatusDegraded, Message: msg} }

// Unhealthy returns an unhealthy result for err.
func Unhealthy(msg string, err error) CheckResult {
	r := CheckResult{Status: StatusUnhealthy, Message: msg}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// Check performs one health check.
type Check func(ctx context.Context) CheckResult

// Component is a named check. A failing critical component makes the
// whole process unhealthy; others only degrade it.
type Component struct {
	Name     string
	Critical bool
	Check    Check
	Timeout  time.Duration
}

// DefaultTimeout bounds a check that sets none.
const DefaultTimeout = 2 * time.Second

// Checker runs registered components.
type Checker struct {
	mu         sync.RWMutex
	components map[string]*Component
	started    time.Time
	ready      bool
}

// NewChecker creates an empty Checker, not yet ready.
func NewChecker() *Checker {
	return &Checker{
		components: make(map[string]*Component),
		started:    time.Now(),
	}
}

// Register adds or replaces a component.
func (c *Checker) Register(comp Component) {
	if comp.Timeout <= 0 {
		comp.Timeout = DefaultTimeout
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.components[comp.Name] = &comp
}

// RegisterFunc registers check under name with the default timeout.
func (c *Checker) RegisterFunc(name string, critical bool, check Check) {
	c.Register(Component{Name: name, Critical: critical, Check: check})
}

// SetReady marks the process as ready to serve surfaces.
func (c *Checker) SetReady(ready bool) {
	c.mu.Lock()
	c.ready = ready
	c.mu.Unlock()
}

// Ready reports the readiness flag.
func (c *Checker) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// Check runs every component concurrently and returns their results.
func (c *Checker) Check(ctx context.Context) map[string]CheckResult {
	c.mu.RLock()
	comps := make([]*Component, 0, len(c.components))
	for _, comp := range c.components {
		comps = append(comps, comp)
	}
	c.mu.RUnlock()

	results := make(map[string]CheckResult, len(comps))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, comp := range comps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := run(ctx, comp)
			mu.Lock()
			results[comp.Name] = res
			mu.Unlock()
		}()
	}
	wg.Wait()
	return results
}

// run executes one check under its timeout, turning a panic into an
// unhealthy result. A check that overruns is abandoned.
func run(ctx context.Context, comp *Component) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, comp.Timeout)
	defer cancel()

	start := time.Now()
	done := make(chan CheckResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- Unhealthy("check panicked", fmt.Errorf("%v", r))
			}
		}()
		done <- comp.Check(ctx)
	}()

	var res CheckResult
	select {
	case res = <-done:
	case <-ctx.Done():
		res = Unhealthy("check timed out", ctx.Err())
	}
	res.LastChecked = start
	res.Duration = time.Since(start)
	return res
}

// Overall folds results into one status.
func (c *Checker) Overall(results map[string]CheckResult) Status {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status := StatusHealthy
	for name, res := range results {
		switch res.Status {
		case StatusHealthy:
		case StatusUnhealthy:
			if comp, ok := c.components[name]; ok && comp.Critical {
				return StatusUnhealthy
			}
			status = StatusDegraded
		default:
			status = StatusDegraded
		}
	}
	return status
}

// Report is the readiness response body.
type Report struct {
	Status     Status                 `json:"status"`
	Ready      bool                   `json:"ready"`
	Uptime     string                 `json:"uptime"`
	Components map[string]CheckResult `json:"components"`
}

// Report runs every check and summarizes them.
func (c *Checker) Report(ctx context.Context) Report {
	results := c.Check(ctx)
	return Report{
		Status:     c.Overall(results),
		Ready:      c.Ready(),
		Uptime:     time.Since(c.started).Round(time.Second).String(),
		Components: results,
	}
}

// Names lists registered components in order.
func (c *Checker) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.components))
	for name := range c.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LivenessHandler answers 200 while the process is running.
func (c *Checker) LivenessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
	})
}

// ReadinessHandler answers 200 when ready and not unhealthy, 503
// otherwise, with the full report as the body.
func (c *Checker) ReadinessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rep := c.Report(r.Context())
		code := http.StatusOK
		if !rep.Ready || rep.Status == StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, rep)
	})
}

// Mount mounts /healthz and /readyz on mux.
func (c *Checker) Mount(mux *http.ServeMux) {
	mux.Handle("/healthz", c.LivenessHandler())
	mux.Handle("/readyz", c.ReadinessHandler())
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckerOverall(t *testing.T) {
	tests := []struct {
		name     string
		critical bool
		result   CheckResult
		want     Status
	}{
		{"healthy", true, Healthy("ok"), StatusHealthy},
		{"degraded", true, Degraded("fallback"), StatusDegraded},
		{"optional failure", false, Unhealthy("down", errors.New("boom")), StatusDegraded},
		{"critical failure", true, Unhealthy("down", nil), StatusUnhealthy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChecker()
			c.RegisterFunc("a", tt.critical, func(context.Context) CheckResult { return tt.result })
			c.RegisterFunc("b", false, func(context.Context) CheckResult { return Healthy("") })

			results := c.Check(context.Background())
			require.Len(t, results, 2)
			assert.Equal(t, tt.want, c.Overall(results))
		})
	}
}

func TestCheckPanicAndTimeout(t *testing.T) {
	c := NewChecker()
	c.RegisterFunc("panics", false, func(context.Context) CheckResult { panic("bad") })
	c.Register(Component{
		Name:    "slow",
		Timeout: 10 * time.Millisecond,
		Check: func(ctx context.Context) CheckResult {
			<-ctx.Done()
			time.Sleep(50 * time.Millisecond)
			return Healthy("late")
		},
	})

	results := c.Check(context.Background())
	assert.Equal(t, StatusUnhealthy, results["panics"].Status)
	assert.Equal(t, "bad", results["panics"].Error)
	assert.Equal(t, StatusUnhealthy, results["slow"].Status)
	assert.Equal(t, "check timed out", results["slow"].Message)
	assert.Equal(t, []string{"panics", "slow"}, c.Names())
}

func TestReadinessHandler(t *testing.T) {
	c := NewChecker()
	c.RegisterFunc("journal", true, func(context.Context) CheckResult { return Healthy("open") })
	mux := http.NewServeMux()
	c.Mount(mux)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	assert.Equal(t, http.StatusOK, get("/healthz").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get("/readyz").Code, "not ready yet")

	c.SetReady(true)
	rec := get("/readyz")
	require.Equal(t, http.StatusOK, rec.Code)
	var rep Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.True(t, rep.Ready)
	assert.Equal(t, StatusHealthy, rep.Status)
	assert.Equal(t, "open", rep.Components["journal"].Message)

	c.RegisterFunc("journal", true, func(context.Context) CheckResult {
		return Unhealthy("closed", errors.New("sql: database is closed"))
	})
	assert.Equal(t, http.StatusServiceUnavailable, get("/readyz").Code)
}

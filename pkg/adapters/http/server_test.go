package http_test

import (
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/gridironlabs/gridiron/pkg/adapters/http"
	"github.com/gridironlabs/gridiron/pkg/domain"
)

type stubSource struct {
	caps domain.TrackerCapabilities
}

func (s stubSource) Statistics() domain.GameStatistics {
	return domain.GameStatistics{TotalPlays: 42}
}

func (s stubSource) AuditTrail() domain.AuditSnapshot {
	return domain.AuditSnapshot{
		GameID:  "game-1",
		Entries: []domain.AuditEntry{{Seq: 1, Kind: domain.AuditEvent, Summary: "kickoff"}},
	}
}

func (s stubSource) PerformanceReport() domain.PerformanceReport {
	return domain.PerformanceReport{PlaysObserved: 42}
}

func (s stubSource) TrackerCapabilities() domain.TrackerCapabilities {
	return s.caps
}

func get(t *testing.T, srv *httptest.Server, path string) (*stdhttp.Response, []byte) {
	t.Helper()
	resp, err := stdhttp.Get(srv.URL + path)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, body
}

func TestServerEndpoints(t *testing.T) {
	src := stubSource{caps: domain.TrackerCapabilities{Statistics: true, Audit: true, Performance: true}}

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_plays_total", Help: "test"})
	registry.MustRegister(counter)
	counter.Inc()

	srv := httptest.NewServer(httpadapter.NewHandler(src, registry, nil))
	defer srv.Close()

	t.Run("healthz", func(t *testing.T) {
		resp, body := get(t, srv, "/healthz")
		assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		assert.Equal(t, "ok", string(body))
	})

	t.Run("stats", func(t *testing.T) {
		resp, body := get(t, srv, "/stats")
		assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var stats domain.GameStatistics
		require.NoError(t, json.Unmarshal(body, &stats))
		assert.Equal(t, 42, stats.TotalPlays)
	})

	t.Run("audit", func(t *testing.T) {
		resp, body := get(t, srv, "/audit")
		assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)

		var snap domain.AuditSnapshot
		require.NoError(t, json.Unmarshal(body, &snap))
		assert.Equal(t, "game-1", snap.GameID)
		require.Len(t, snap.Entries, 1)
	})

	t.Run("perf", func(t *testing.T) {
		resp, body := get(t, srv, "/perf")
		assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)

		var report domain.PerformanceReport
		require.NoError(t, json.Unmarshal(body, &report))
		assert.Equal(t, 42, report.PlaysObserved)
	})

	t.Run("capabilities", func(t *testing.T) {
		resp, body := get(t, srv, "/capabilities")
		assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)

		var caps domain.TrackerCapabilities
		require.NoError(t, json.Unmarshal(body, &caps))
		assert.True(t, caps.Audit)
	})

	t.Run("metrics", func(t *testing.T) {
		resp, body := get(t, srv, "/metrics")
		assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "test_plays_total 1")
	})
}

func TestServerWithoutCapabilities(t *testing.T) {
	src := stubSource{caps: domain.TrackerCapabilities{Statistics: true}}
	srv := httptest.NewServer(httpadapter.NewHandler(src, nil, nil))
	defer srv.Close()

	t.Run("perf is 404 without the capability", func(t *testing.T) {
		resp, _ := get(t, srv, "/perf")
		assert.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
	})

	t.Run("metrics is 404 without a registry", func(t *testing.T) {
		resp, _ := get(t, srv, "/metrics")
		assert.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
	})
}

// Package metrics exposes reconciliation counters in Prometheus format.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"setup-link/internal/pkg/logging"
	"setup-link/internal/types"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the reconciliation collectors on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	Ticks    *prometheus.CounterVec
	HookRuns *prometheus.CounterVec
	LinkUp   prometheus.Gauge
}

// NewMetrics creates and registers the collectors. Every result label is pre-created so
// series exist from the first scrape.
func NewMetrics(target string) *Metrics {
	labels := prometheus.Labels{"link": target}
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "setup_link_ticks_total",
			Help:        "Reconciliation ticks by transition taken",
			ConstLabels: labels,
		}, []string{"result"}),
		HookRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "setup_link_hook_runs_total",
			Help:        "Up-hook invocations by hook and outcome",
			ConstLabels: labels,
		}, []string{"hook", "outcome"}),
		LinkUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "setup_link_up",
			Help:        "1 while the target link is administratively up under its target name",
			ConstLabels: labels,
		}),
	}
	m.Registry.MustRegister(m.Ticks, m.HookRuns, m.LinkUp)
	for _, r := range types.AllResults {
		m.Ticks.WithLabelValues(string(r))
	}
	return m
}

// ObserveTick records the result of one tick.
func (m *Metrics) ObserveTick(result types.TickResult) {
	m.Ticks.WithLabelValues(string(result)).Inc()
	if result == types.ResultSteady {
		m.LinkUp.Set(1)
	} else {
		m.LinkUp.Set(0)
	}
}

// ObserveHook records one hook invocation.
func (m *Metrics) ObserveHook(hook string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.HookRuns.WithLabelValues(hook, outcome).Inc()
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	logger := logging.WithComponent("metrics").WithField("listen", addr)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Serving metrics")
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server failed: %w", err)
	}
	return nil
}

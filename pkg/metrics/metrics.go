// Package metrics exposes render-loop counters through Prometheus.
// A TUI cannot print its own numbers to stdout, so profiling a
// session means scraping the optional HTTP endpoint instead.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/odvcencio/tessera/pkg/errors"
)

var (
	metricFramesPainted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tessera",
		Name:      "frames_painted_total",
		Help:      "Frames handed to the compositor.",
	})
	metricFullPaints = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tessera",
		Name:      "full_paints_total",
		Help:      "Frames that repainted every cell.",
	})
	metricCellsChanged = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tessera",
		Name:      "cells_changed_total",
		Help:      "Cells that differed from the previous frame.",
	})
	metricRunsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tessera",
		Name:      "runs_emitted_total",
		Help:      "Repaint runs produced by the compositor.",
	})
	metricBytesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tessera",
		Name:      "terminal_bytes_written_total",
		Help:      "Bytes of escape sequences flushed to the terminal.",
	})
	metricFrameDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "tessera",
		Name:      "frame_duration_seconds",
		Help:      "Wall time from layout to flushed frame.",
		Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.0166, 0.0333, 0.05, 0.1},
	})
)

// RecordFrame updates the paint counters for one rendered frame.
func RecordFrame(full bool, changedCells, runs int, duration time.Duration) {
	metricFramesPainted.Inc()
	if full {
		metricFullPaints.Inc()
	}
	metricCellsChanged.Add(float64(changedCells))
	metricRunsEmitted.Add(float64(runs))
	metricFrameDuration.Observe(duration.Seconds())
}

// RecordBytesWritten accounts terminal output flushed by the writer.
func RecordBytesWritten(n int) {
	if n > 0 {
		metricBytesWritten.Add(float64(n))
	}
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve exposes /metrics on addr until ctx is canceled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "metrics server failed").
			WithContext("addr", addr)
	}
	return nil
}

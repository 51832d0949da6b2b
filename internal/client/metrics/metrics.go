// Package metrics instruments the storefront client with Prometheus
// collectors: dispatched actions, catalog fetches and the cart size.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/state"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Metrics owns a private registry so tests and multiple apps do not collide.
type Metrics struct {
	registry *prometheus.Registry

	dispatches    *prometheus.CounterVec
	fetches       *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	cartItems     prometheus.Gauge
	catalogItems  prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "dispatches_total",
				Help:      "Total number of dispatched actions.",
			},
			[]string{"kind"},
		),
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "fetches_total",
				Help:      "Catalog loads by outcome.",
			},
			[]string{"result"},
		),
		fetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "fetch_duration_seconds",
				Help:      "Duration of catalog fetches.",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~5s
			},
		),
		cartItems: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "cart",
				Name:      "items",
				Help:      "Number of entries in the cart.",
			},
		),
		catalogItems: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "items",
				Help:      "Number of products in the catalog state.",
			},
		),
	}

	m.registry.MustRegister(m.dispatches, m.fetches, m.fetchDuration, m.cartItems, m.catalogItems)
	return m
}

// Gatherer exposes the private registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Fetch outcomes recorded by ObserveFetch.
const (
	FetchRemote = "remote"
	FetchCache  = "cache"
	FetchFailed = "failed"
)

// ObserveFetch records one catalog load.
func (m *Metrics) ObserveFetch(result string, d time.Duration) {
	m.fetches.WithLabelValues(result).Inc()
	m.fetchDuration.Observe(d.Seconds())
}

// Instrument wraps next so every dispatched action is counted by kind.
func (m *Metrics) Instrument(next state.Dispatcher) state.Dispatcher {
	return &instrumented{next: next, m: m}
}

type instrumented struct {
	next state.Dispatcher
	m    *Metrics
}

// Dispatch counts action under its kind; a nil action is counted as
// "unknown" and still forwarded.
func (i *instrumented) Dispatch(action state.Action) state.Action {
	kind := "unknown"
	if action != nil {
		kind = action.Kind().String()
	}
	i.m.dispatches.WithLabelValues(kind).Inc()
	return i.next.Dispatch(action)
}

// Subscriber returns a store subscriber that keeps the size gauges in sync
// with the state read through g.
func (m *Metrics) Subscriber(g state.Getter) func() {
	return func() {
		s := g.GetState()
		m.cartItems.Set(float64(state.CartCount(s)))
		m.catalogItems.Set(float64(len(s.Products.Items)))
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string, logger logging.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info(ctx, "metrics endpoint listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

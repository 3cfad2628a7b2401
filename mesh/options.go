// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh
//
// options.go - functional options for New.
//
// Contract:
//   • Options panic on invalid arguments (programmer error at construction time).
//   • Defaults: discard logger, global OpenTelemetry tracer, capacity 1 per pool.

package mesh

import (
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvmesh/pool"
)

// tracerName is the instrumentation scope of every span the package emits.
const tracerName = "github.com/katalvlaran/lvmesh/mesh"

// Option configures a Mesh at construction.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	tracer   trace.Tracer
	capacity int
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:   otel.Tracer(tracerName),
		capacity: pool.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes lifecycle records (lock, unlock, merges, winding retries)
// to l. Records carry the mesh id under the "mesh" key. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("mesh: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithTracer replaces the tracer obtained from the global provider. Panics on nil.
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic("mesh: WithTracer(nil)")
	}
	return func(c *config) { c.tracer = t }
}

// WithInitialCapacity pre-sizes every element pool to n slots. Panics if n < 1.
func WithInitialCapacity(n int) Option {
	if n < 1 {
		panic("mesh: WithInitialCapacity must be ≥ 1")
	}
	return func(c *config) { c.capacity = n }
}

// SPDX-License-Identifier: MIT
// Package: lvmesh/mesh

package mesh

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// startSpan opens a span named "mesh.<op>" tagged with the mesh id.
func (m *Mesh) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return m.cfg.tracer.Start(ctx, "mesh."+op,
		trace.WithAttributes(attribute.String("mesh.id", m.id.String())))
}

// endSpan records the element counts and, on failure, the error.
func (m *Mesh) endSpan(span trace.Span, err error) {
	span.SetAttributes(
		attribute.Int("mesh.vertices", m.vertexPool.Len()),
		attribute.Int("mesh.halfedges", m.halfedgePool.Len()),
		attribute.Int("mesh.edges", m.edgePool.Len()),
		attribute.Int("mesh.faces", m.facePool.Len()),
		attribute.Bool("mesh.locked", m.locked),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Package observability bundles logging, metrics, and tracing for registry
// operations so each service reports the same way.
package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"registrar/internal/platform/metrics"
	"registrar/pkg/attrs"
	dErrors "registrar/pkg/domain-errors"
)

// Recorder reports registry operations. A Recorder with a nil logger or nil
// metrics skips that sink.
type Recorder struct {
	registry string
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

func NewRecorder(registry string, logger *slog.Logger, m *metrics.Metrics) *Recorder {
	return &Recorder{
		registry: registry,
		logger:   logger,
		metrics:  m,
		tracer:   otel.Tracer("registrar/" + registry),
	}
}

// Start opens a span named "<registry>.<operation>".
func (r *Recorder) Start(ctx context.Context, operation string, attrList ...any) (context.Context, trace.Span) {
	return r.tracer.Start(ctx, r.registry+"."+operation,
		trace.WithAttributes(attrs.SpanAttributes(attrList)...))
}

func (r *Recorder) Added(ctx context.Context, span trace.Span, recordID string) {
	r.metrics.IncrementAdded(r.registry)
	r.succeeded(ctx, span, r.registry+"_added", "record_id", recordID)
}

func (r *Recorder) Deleted(ctx context.Context, span trace.Span, recordID string) {
	r.metrics.IncrementDeleted(r.registry)
	r.succeeded(ctx, span, r.registry+"_deleted", "record_id", recordID)
}

func (r *Recorder) Updated(ctx context.Context, span trace.Span, recordID, field string) {
	r.metrics.IncrementUpdated(r.registry, field)
	r.succeeded(ctx, span, r.registry+"_updated", "record_id", recordID, "field", field)
}

// Failed records a rejected operation and returns err unchanged.
func (r *Recorder) Failed(ctx context.Context, span trace.Span, operation string, err error) error {
	code := string(dErrors.CodeOf(err))
	if code == "" {
		code = string(dErrors.CodeInternal)
	}
	r.metrics.IncrementFailed(r.registry, operation, code)

	span.RecordError(err)
	span.SetStatus(codes.Error, code)

	if r.logger != nil {
		r.logger.DebugContext(ctx, "operation rejected",
			"registry", r.registry,
			"operation", operation,
			"code", code,
			"field", dErrors.FieldOf(err),
			"error", err.Error(),
		)
	}
	return err
}

func (r *Recorder) succeeded(ctx context.Context, span trace.Span, event string, attrList ...any) {
	span.SetAttributes(attrs.SpanAttributes(attrList)...)
	span.SetStatus(codes.Ok, "")

	if r.logger == nil {
		return
	}
	args := append(attrList, "registry", r.registry, "event", event)
	r.logger.InfoContext(ctx, event, args...)
}

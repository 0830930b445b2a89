package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	usecaseTracer   = otel.Tracer("court-vision/internal/usecase")
	usecaseNoopSpan = trace.SpanFromContext(context.Background())
)

// startUsecaseSpan only opens child spans; background work without a
// traced caller gets a no-op span.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	name = strings.TrimSpace(name)
	if name == "" || !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name,
		trace.WithAttributes(attribute.String("usecase.operation", strings.TrimPrefix(name, "usecase."))),
	)
}

package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var (
	apiTracer = otel.Tracer("court-vision/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

// startSpan opens a child span for handler methods only. Requests that were
// not traced, such as health probes, get a no-op span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	handler, ok := handlerName(name)
	if !ok || !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attribute.String("http.handler", handler)))
}

func handlerName(span string) (string, bool) {
	handler, ok := strings.CutPrefix(span, handlerSpanPrefix)
	if !ok || handler == "" {
		return "", false
	}
	return handler, true
}

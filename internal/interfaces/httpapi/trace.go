package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const apiInstrumentation = "github.com/riskibarqy/swiss-tournament/internal/interfaces/httpapi"

// Handlers and the admin gate get their own spans. Response writers and the
// other middleware run inside the otelhttp server span.
var tracedSpanPrefixes = []string{
	"httpapi.Handler.",
	"httpapi.RequireAdminToken",
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !isTracedSpan(name) {
		return ctx, noop.Span{}
	}

	return parent.TracerProvider().
		Tracer(apiInstrumentation).
		Start(ctx, name, trace.WithAttributes(attrs...))
}

func isTracedSpan(name string) bool {
	for _, prefix := range tracedSpanPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// pathIDAttribute names a route parameter the way the usecase spans name the
// same entity, so handler and service spans can be joined on it.
func pathIDAttribute(name string, id int64) attribute.KeyValue {
	switch name {
	case "tournamentID":
		return attribute.Int64("tournament.id", id)
	case "playerID":
		return attribute.Int64("player.id", id)
	default:
		return attribute.Int64("http.path."+name, id)
	}
}

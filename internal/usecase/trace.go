package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	usecaseInstrumentation = "github.com/riskibarqy/swiss-tournament/internal/usecase"
	usecaseSpanPrefix      = "usecase."
)

// startUsecaseSpan opens a child of the request span, using the provider that
// created the parent. Service calls made outside a traced request get a
// no-op span so callers can always defer End.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !strings.HasPrefix(name, usecaseSpanPrefix) {
		return ctx, noop.Span{}
	}

	return parent.TracerProvider().
		Tracer(usecaseInstrumentation).
		Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal), trace.WithAttributes(attrs...))
}

func tournamentAttr(id int64) attribute.KeyValue {
	return attribute.Int64("tournament.id", id)
}

func playerAttr(id int64) attribute.KeyValue {
	return attribute.Int64("player.id", id)
}

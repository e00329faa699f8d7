package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var (
	apiTracer = otel.Tracer("football-career/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

// Path values copied onto handler spans so traces can be searched by career.
var spanPathValues = map[string]attribute.Key{
	"careerID": "career.id",
	"playerID": "player.id",
	"offerID":  "offer.id",
}

// startSpan opens a child span for handler names only. Requests filtered out
// of tracing carry no parent and get a no-op span.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func startHandlerSpan(r *http.Request, handler string) (context.Context, trace.Span) {
	return startSpan(r.Context(), handlerSpanPrefix+handler, pathAttributes(r)...)
}

func pathAttributes(r *http.Request) []attribute.KeyValue {
	var out []attribute.KeyValue
	for name, key := range spanPathValues {
		if v := strings.TrimSpace(r.PathValue(name)); v != "" {
			out = append(out, key.String(v))
		}
	}
	return out
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix)
}

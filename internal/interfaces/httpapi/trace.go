package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("ladder/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// spanPathParams maps route wildcards to the span attributes that carry them.
var spanPathParams = []struct {
	param string
	key   attribute.Key
}{
	{param: "slug", key: "ladder.club_slug"},
	{param: "clubID", key: "ladder.club_id"},
	{param: "playerID", key: "ladder.player_id"},
	{param: "matchID", key: "ladder.match_id"},
}

// startSpan opens a child span for handler names only. Middleware and
// helpers, or requests the tracing filter skipped, get a no-op span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

// startHandlerSpan is startSpan tagged with the club, player or match the
// route addresses.
func startHandlerSpan(r *http.Request, name string) (context.Context, trace.Span) {
	ctx, span := startSpan(r.Context(), name)
	if !span.IsRecording() {
		return ctx, span
	}
	span.SetAttributes(handlerSpanAttributes(r)...)
	return ctx, span
}

func handlerSpanAttributes(r *http.Request) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	for _, p := range spanPathParams {
		if v := strings.TrimSpace(r.PathValue(p.param)); v != "" {
			attrs = append(attrs, p.key.String(v))
		}
	}
	if clubID := strings.TrimSpace(r.URL.Query().Get("club_id")); clubID != "" && r.PathValue("clubID") == "" {
		attrs = append(attrs, attribute.String("ladder.club_id", clubID))
	}
	return attrs
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

package httppresentation

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/peemtanapat/retail-backoffice/internal/observability"
	"github.com/peemtanapat/retail-backoffice/internal/observability/logctx"
)

const headerRequestID = "X-Request-ID"

// Observability combines:
// - W3C Trace Context extraction and a server span per request
// - request-scoped logger injection (dynamic fields only)
// - X-Request-ID generation + echo
// - HTTP metrics (counter + histogram) with low-cardinality route labels
// - a single access log line after the handler completes
func Observability(base observability.Logger, tel observability.Telemetry) gin.HandlerFunc {
	if base == nil {
		base = tel.Logger()
	}
	prop := otel.GetTextMapPropagator() // W3C by default
	tracer := otel.Tracer("retail-backoffice.http")

	return func(c *gin.Context) {
		r := c.Request
		ctx := prop.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

		rid := r.Header.Get(headerRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(headerRequestID, rid)

		// FullPath is the route template, so metric labels stay bounded.
		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}

		ctx, span := tracer.Start(ctx,
			r.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", route),
				attribute.String("http.target", r.URL.Path),
				attribute.String("http.user_agent", r.UserAgent()),
			),
		)
		defer span.End()

		fields := []observability.Field{observability.F("request_id", rid)}
		if sc := span.SpanContext(); sc.IsValid() {
			fields = append(fields,
				observability.F("trace_id", sc.TraceID().String()),
				observability.F("span_id", sc.SpanID().String()),
			)
		}
		reqLogger := base.With(fields...)
		ctx = logctx.With(ctx, reqLogger)
		c.Request = r.WithContext(ctx)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		statusLabel := strconv.Itoa(status)

		if tel != nil {
			if ctr := tel.Counter(observability.MetricHTTPRequests); ctr != nil {
				ctr.Add(1,
					observability.L("method", r.Method),
					observability.L("route", route),
					observability.L("status", statusLabel),
				)
			}
			if hist := tel.Histogram(observability.MetricHTTPRequestDuration); hist != nil {
				hist.Observe(time.Since(start).Seconds(),
					observability.L("method", r.Method),
					observability.L("route", route),
					observability.L("status", statusLabel),
				)
			}
		}

		reqLogger.Info("http_access",
			observability.F("method", r.Method),
			observability.F("route", route),
			observability.F("path", r.URL.Path),
			observability.F("status", status),
			observability.F("latency_ms", time.Since(start).Milliseconds()),
		)
	}
}

// Package middleware provides observability middleware for the story
// gallery.
//
// This package includes:
//   - Prometheus metrics for HTTP requests and live sessions
//   - OpenTelemetry tracing for HTTP requests and live events
//
// # Prometheus Metrics
//
// Metrics are labelled by chi route pattern, never by raw path:
//   - vangoui_http_requests_total{route,method,code}
//   - vangoui_http_request_duration_seconds{route}
//   - vangoui_live_sessions: connected live sessions
//   - vangoui_live_events_total{event,status}
//   - vangoui_live_event_duration_seconds{event}
//   - vangoui_live_pushes_total: frames pushed to clients
//   - vangoui_render_cache_total{result}
//
//	reg := prometheus.NewRegistry()
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	r := chi.NewRouter()
//	r.Use(m.Handler)
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//
// # OpenTelemetry
//
// OpenTelemetry uses the global tracer provider. Without one installed the
// spans are no-ops:
//
//	otel.SetTracerProvider(tp)
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// Live events are traced with StartEventSpan and EndEventSpan.
package middleware

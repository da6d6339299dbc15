// Package middleware decorates forge hosts with observability.
//
// Each decorator wraps a forge.TreeHost and returns another one. Nodes
// created through a decorated host are wrapped too, so attachments are
// observed as well as creations. Use forge.Unwrap to reach the node created
// by the innermost host.
//
//	host := middleware.Logging(
//	    middleware.Prometheus(vdom.NewDocument(), middleware.WithRegistry(reg)),
//	    slog.Default(),
//	)
//
// # Prometheus Metrics
//
// Prometheus records:
//   - forge_elements_created_total{tag}: successful creations
//   - forge_element_errors_total{tag}: rejected creations
//   - forge_children_appended_total{status}: attachments
//   - forge_create_duration_seconds: creation latency
//
// # OpenTelemetry
//
// Tracing starts one span per creation and per attachment under the span
// carried by the context passed to it.
package middleware

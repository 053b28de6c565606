// Package metrics provides observability primitives for the qkd-go
// reconciliation library.
//
// # Overview
//
// The package offers:
//   - A Collector aggregating codec, sifting, and session counters
//   - Prometheus-compatible metrics export
//   - Distributed tracing support (OpenTelemetry-compatible interface)
//   - Structured logging with levels
//
// # Metrics Collection
//
// The Collector type aggregates counters from codecs and sessions:
//
//	collector := metrics.NewCollector(metrics.Labels{
//		"instance": "node-1",
//	})
//
//	codec := keycodec.New(linearcode.Hamming74(),
//		keycodec.WithCollector(collector))
//
//	snap := collector.Snapshot()
//
// # Prometheus Export
//
// Export metrics in Prometheus text format:
//
//	exporter := metrics.NewPrometheusExporter(collector, "qkd_recon")
//	http.Handle("/metrics", exporter.Handler())
//
// # Tracing
//
// The Tracer interface decouples span creation from the backend:
//
//	// In-memory tracer for testing
//	tracer := metrics.NewSimpleTracer()
//	metrics.SetTracer(tracer)
//
//	// OpenTelemetry adapter (uses the global provider);
//	// build with -tags otel to enable it.
//	metrics.SetTracer(metrics.NewOTelTracer("qkd-go"))
//
//	ctx, end := metrics.StartSpan(ctx, metrics.SpanDecodeKey)
//	defer end(nil) // or end(err) on error
//
// # Structured Logging
//
// The Logger provides leveled structured logging in text or JSON:
//
//	logger := metrics.NewLogger(
//		metrics.WithLevel(metrics.LevelInfo),
//		metrics.WithFormat(metrics.FormatJSON),
//	)
//
//	logger.Info("key decoded", metrics.Fields{
//		"blocks":    report.Blocks,
//		"corrected": report.CorrectedBits,
//	})
//
//	sessionLog := logger.Named("session").With(metrics.Fields{"id": id})
//	sessionLog.Debug("sifting bases")
package metrics

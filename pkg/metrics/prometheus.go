package metrics

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"sort"
	"strings"
)

// PrometheusExporter exports collector state in Prometheus text format.
type PrometheusExporter struct {
	collector *Collector
	namespace string
}

// NewPrometheusExporter creates a Prometheus exporter for the given
// collector. The namespace is prepended to all metric names (e.g.
// "qkd_recon").
func NewPrometheusExporter(c *Collector, namespace string) *PrometheusExporter {
	return &PrometheusExporter{
		collector: c,
		namespace: namespace,
	}
}

// Handler returns an http.Handler that serves Prometheus metrics.
func (e *PrometheusExporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		e.WriteMetrics(w)
	})
}

// WriteMetrics writes all metrics in Prometheus text format to the writer.
func (e *PrometheusExporter) WriteMetrics(w io.Writer) {
	snap := e.collector.Snapshot()
	labels := e.formatLabels(snap.Labels)

	counters := []struct {
		name  string
		help  string
		value uint64
	}{
		{"keys_encoded_total", "Total keys encoded", snap.KeysEncoded},
		{"keys_decoded_total", "Total keys decoded", snap.KeysDecoded},
		{"blocks_encoded_total", "Total codeword blocks produced", snap.BlocksEncoded},
		{"blocks_decoded_total", "Total codeword blocks decoded", snap.BlocksDecoded},
		{"bits_corrected_total", "Total bit flips applied during decoding", snap.BitsCorrected},
		{"search_blocks_total", "Total blocks resolved via bounded search", snap.SearchBlocks},
		{"uncorrectable_blocks_total", "Total blocks passed through uncorrected", snap.UncorrectableBlocks},
		{"errors_located_total", "Total flipped positions reported by locate", snap.ErrorsLocated},
		{"bits_sifted_total", "Total bits kept by basis reconciliation", snap.BitsSifted},
		{"bits_discarded_total", "Total bits discarded by basis reconciliation", snap.BitsDiscarded},
		{"sessions_started_total", "Total reconciliation sessions started", snap.SessionsStarted},
		{"sessions_failed_total", "Total reconciliation sessions that failed", snap.SessionsFailed},
		{"verify_passed_total", "Total key confirmations that matched", snap.VerifyPassed},
		{"verify_failed_total", "Total key confirmations that mismatched", snap.VerifyFailed},
	}
	for _, m := range counters {
		e.writeHelp(w, m.name, m.help)
		e.writeType(w, m.name, "counter")
		e.writeMetric(w, m.name, labels, float64(m.value))
	}

	e.writeHelp(w, "uptime_seconds", "Time since the collector was created")
	e.writeType(w, "uptime_seconds", "gauge")
	e.writeMetric(w, "uptime_seconds", labels, snap.Uptime.Seconds())

	e.writeHistogram(w, "encode_duration_microseconds", "Key encode duration in microseconds", labels, snap.EncodeLatency)
	e.writeHistogram(w, "decode_duration_microseconds", "Key decode duration in microseconds", labels, snap.DecodeLatency)
}

func (e *PrometheusExporter) writeHelp(w io.Writer, name, help string) {
	fmt.Fprintf(w, "# HELP %s_%s %s\n", e.namespace, name, help)
}

func (e *PrometheusExporter) writeType(w io.Writer, name, typ string) {
	fmt.Fprintf(w, "# TYPE %s_%s %s\n", e.namespace, name, typ)
}

func (e *PrometheusExporter) writeMetric(w io.Writer, name, labels string, value float64) {
	if labels != "" {
		fmt.Fprintf(w, "%s_%s{%s} %g\n", e.namespace, name, labels, value)
	} else {
		fmt.Fprintf(w, "%s_%s %g\n", e.namespace, name, value)
	}
}

func (e *PrometheusExporter) writeHistogram(w io.Writer, name, help, labels string, h HistogramSummary) {
	e.writeHelp(w, name, help)
	e.writeType(w, name, "histogram")

	fullName := e.namespace + "_" + name

	for _, b := range h.Buckets {
		le := fmt.Sprintf("%g", b.UpperBound)
		if math.IsInf(b.UpperBound, 1) {
			le = "+Inf"
		}
		if labels != "" {
			fmt.Fprintf(w, "%s_bucket{%s,le=\"%s\"} %d\n", fullName, labels, le, b.Count)
		} else {
			fmt.Fprintf(w, "%s_bucket{le=\"%s\"} %d\n", fullName, le, b.Count)
		}
	}

	if labels != "" {
		fmt.Fprintf(w, "%s_sum{%s} %g\n", fullName, labels, h.Sum)
		fmt.Fprintf(w, "%s_count{%s} %d\n", fullName, labels, h.Count)
	} else {
		fmt.Fprintf(w, "%s_sum %g\n", fullName, h.Sum)
		fmt.Fprintf(w, "%s_count %d\n", fullName, h.Count)
	}
}

// formatLabels converts Labels to Prometheus label format with sorted keys.
func (e *PrometheusExporter) formatLabels(labels Labels) string {
	if len(labels) == 0 {
		return ""
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=\"%s\"", k, escapePromValue(labels[k])))
	}

	return strings.Join(parts, ",")
}

// escapePromValue escapes a string for use as a Prometheus label value.
func escapePromValue(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

// ServePrometheus starts an HTTP server serving Prometheus metrics.
// Convenience for simple deployments.
func ServePrometheus(addr string, c *Collector, namespace string) error {
	exp := NewPrometheusExporter(c, namespace)
	http.Handle("/metrics", exp.Handler())
	return http.ListenAndServe(addr, nil)
}

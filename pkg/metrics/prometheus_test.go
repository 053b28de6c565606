package metrics

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestPrometheusExport(t *testing.T) {
	c := NewCollector(Labels{"instance": "test"})
	c.KeyEncoded(2, 10*time.Microsecond)
	c.KeyDecoded(2, 1, 0, 0, 20*time.Microsecond)
	c.Sifted(8, 4)
	c.SessionStarted()
	c.VerifyResult(true)

	exp := NewPrometheusExporter(c, "qkd_recon")

	var buf bytes.Buffer
	exp.WriteMetrics(&buf)
	output := buf.String()

	checks := []string{
		`qkd_recon_keys_encoded_total{instance="test"} 1`,
		`qkd_recon_keys_decoded_total{instance="test"} 1`,
		`qkd_recon_blocks_encoded_total{instance="test"} 2`,
		`qkd_recon_bits_corrected_total{instance="test"} 1`,
		`qkd_recon_bits_sifted_total{instance="test"} 8`,
		`qkd_recon_bits_discarded_total{instance="test"} 4`,
		`qkd_recon_sessions_started_total{instance="test"} 1`,
		`qkd_recon_verify_passed_total{instance="test"} 1`,
		"# TYPE qkd_recon_keys_encoded_total counter",
		"# TYPE qkd_recon_uptime_seconds gauge",
		"# TYPE qkd_recon_encode_duration_microseconds histogram",
		`qkd_recon_encode_duration_microseconds_bucket{instance="test",le="+Inf"} 1`,
		`qkd_recon_decode_duration_microseconds_count{instance="test"} 1`,
	}
	for _, want := range checks {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestPrometheusExportNoLabels(t *testing.T) {
	c := NewCollector(nil)
	c.KeyEncoded(1, time.Microsecond)

	exp := NewPrometheusExporter(c, "qkd")

	var buf bytes.Buffer
	exp.WriteMetrics(&buf)
	output := buf.String()

	if !strings.Contains(output, "qkd_keys_encoded_total 1") {
		t.Error("expected unlabeled metric line")
	}
	if strings.Contains(output, "qkd_keys_encoded_total{") {
		t.Error("expected no label braces without labels")
	}
}

func TestPrometheusHandler(t *testing.T) {
	c := NewCollector(Labels{"node": "a"})
	exp := NewPrometheusExporter(c, "qkd")

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	exp.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	ct := rec.Header().Get("Content-Type")
	if !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "qkd_uptime_seconds") {
		t.Error("expected uptime metric in response body")
	}
}

func TestPrometheusLabelEscaping(t *testing.T) {
	c := NewCollector(Labels{"path": `a\b"c`})
	exp := NewPrometheusExporter(c, "qkd")

	var buf bytes.Buffer
	exp.WriteMetrics(&buf)

	if !strings.Contains(buf.String(), `path="a\\b\"c"`) {
		t.Error("expected escaped label value")
	}
}

func TestPrometheusLabelOrdering(t *testing.T) {
	c := NewCollector(Labels{"zone": "z", "app": "a"})
	exp := NewPrometheusExporter(c, "qkd")

	var buf bytes.Buffer
	exp.WriteMetrics(&buf)

	if !strings.Contains(buf.String(), `{app="a",zone="z"}`) {
		t.Error("expected labels sorted by key")
	}
}

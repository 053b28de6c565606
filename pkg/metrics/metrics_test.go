package metrics

import (
	"testing"
	"time"
)

func TestNewCollector(t *testing.T) {
	labels := Labels{"instance": "test"}
	c := NewCollector(labels)

	if c == nil {
		t.Fatal("expected non-nil collector")
	}

	snap := c.Snapshot()
	if snap.Labels["instance"] != "test" {
		t.Errorf("expected label instance=test, got %v", snap.Labels)
	}
}

func TestCollectorCodecMetrics(t *testing.T) {
	c := NewCollector(nil)

	c.KeyEncoded(3, 10*time.Microsecond)
	c.KeyEncoded(2, 5*time.Microsecond)
	c.KeyDecoded(3, 2, 1, 0, 20*time.Microsecond)
	c.ErrorsLocated(2)

	snap := c.Snapshot()
	if snap.KeysEncoded != 2 {
		t.Errorf("expected 2 keys encoded, got %d", snap.KeysEncoded)
	}
	if snap.BlocksEncoded != 5 {
		t.Errorf("expected 5 blocks encoded, got %d", snap.BlocksEncoded)
	}
	if snap.KeysDecoded != 1 {
		t.Errorf("expected 1 key decoded, got %d", snap.KeysDecoded)
	}
	if snap.BlocksDecoded != 3 {
		t.Errorf("expected 3 blocks decoded, got %d", snap.BlocksDecoded)
	}
	if snap.BitsCorrected != 2 {
		t.Errorf("expected 2 bits corrected, got %d", snap.BitsCorrected)
	}
	if snap.SearchBlocks != 1 {
		t.Errorf("expected 1 search block, got %d", snap.SearchBlocks)
	}
	if snap.ErrorsLocated != 2 {
		t.Errorf("expected 2 errors located, got %d", snap.ErrorsLocated)
	}
}

func TestCollectorSiftingMetrics(t *testing.T) {
	c := NewCollector(nil)

	c.Sifted(10, 6)
	c.Sifted(4, 4)

	snap := c.Snapshot()
	if snap.BitsSifted != 14 {
		t.Errorf("expected 14 bits sifted, got %d", snap.BitsSifted)
	}
	if snap.BitsDiscarded != 10 {
		t.Errorf("expected 10 bits discarded, got %d", snap.BitsDiscarded)
	}
}

func TestCollectorSessionMetrics(t *testing.T) {
	c := NewCollector(nil)

	c.SessionStarted()
	c.SessionStarted()
	c.SessionFailed()
	c.VerifyResult(true)
	c.VerifyResult(false)

	snap := c.Snapshot()
	if snap.SessionsStarted != 2 {
		t.Errorf("expected 2 sessions started, got %d", snap.SessionsStarted)
	}
	if snap.SessionsFailed != 1 {
		t.Errorf("expected 1 session failed, got %d", snap.SessionsFailed)
	}
	if snap.VerifyPassed != 1 || snap.VerifyFailed != 1 {
		t.Errorf("expected 1/1 verify passed/failed, got %d/%d", snap.VerifyPassed, snap.VerifyFailed)
	}
}

func TestCollectorLatencyMetrics(t *testing.T) {
	c := NewCollector(nil)

	c.KeyEncoded(1, 10*time.Microsecond)
	c.KeyEncoded(1, 20*time.Microsecond)
	c.KeyDecoded(1, 0, 0, 0, 15*time.Microsecond)

	snap := c.Snapshot()
	if snap.EncodeLatency.Count != 2 {
		t.Errorf("expected 2 encode latency observations, got %d", snap.EncodeLatency.Count)
	}
	if snap.EncodeLatency.Mean != 15 {
		t.Errorf("expected mean encode latency 15us, got %.2f", snap.EncodeLatency.Mean)
	}
	if snap.DecodeLatency.Count != 1 {
		t.Errorf("expected 1 decode latency observation, got %d", snap.DecodeLatency.Count)
	}
}

func TestCollectorReset(t *testing.T) {
	c := NewCollector(nil)

	c.SessionStarted()
	c.KeyEncoded(2, time.Microsecond)
	c.Sifted(3, 1)

	snap := c.Snapshot()
	if snap.SessionsStarted != 1 || snap.BlocksEncoded != 2 {
		t.Fatal("metrics not recorded")
	}

	c.Reset()

	snap = c.Snapshot()
	if snap.SessionsStarted != 0 {
		t.Errorf("expected 0 sessions after reset, got %d", snap.SessionsStarted)
	}
	if snap.BlocksEncoded != 0 {
		t.Errorf("expected 0 blocks encoded after reset, got %d", snap.BlocksEncoded)
	}
	if snap.BitsSifted != 0 {
		t.Errorf("expected 0 bits sifted after reset, got %d", snap.BitsSifted)
	}
	if snap.EncodeLatency.Count != 0 {
		t.Errorf("expected empty encode histogram after reset, got %d", snap.EncodeLatency.Count)
	}
}

func TestCollectorUptime(t *testing.T) {
	c := NewCollector(nil)
	time.Sleep(10 * time.Millisecond)

	snap := c.Snapshot()
	if snap.Uptime < 10*time.Millisecond {
		t.Errorf("expected uptime >= 10ms, got %v", snap.Uptime)
	}
}

func TestGlobalCollector(t *testing.T) {
	g := Global()
	if g == nil {
		t.Fatal("expected non-nil global collector")
	}

	g2 := Global()
	if g != g2 {
		t.Error("expected same global collector instance")
	}
}

func TestCollectorConcurrency(t *testing.T) {
	c := NewCollector(nil)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				c.KeyEncoded(1, time.Microsecond)
				c.KeyDecoded(1, 1, 0, 0, time.Microsecond)
				c.Sifted(1, 1)
			}
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	snap := c.Snapshot()
	if snap.KeysEncoded != 1000 {
		t.Errorf("expected 1000 keys encoded, got %d", snap.KeysEncoded)
	}
	if snap.BitsCorrected != 1000 {
		t.Errorf("expected 1000 bits corrected, got %d", snap.BitsCorrected)
	}
	if snap.BitsSifted != 1000 {
		t.Errorf("expected 1000 bits sifted, got %d", snap.BitsSifted)
	}
}

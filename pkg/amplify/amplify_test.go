package amplify_test

import (
	"testing"

	"github.com/sara-star-quant/qkd-go/pkg/amplify"
	"github.com/sara-star-quant/qkd-go/pkg/bits"
)

func TestSchemeNames(t *testing.T) {
	if (amplify.ThreeBitDualXOR{}).Name() == (amplify.AdjacentXOR{}).Name() {
		t.Error("schemes must have distinct names")
	}
}

func TestAdjacentRoundtrip(t *testing.T) {
	scheme := amplify.AdjacentXOR{}
	src := bits.NewSource([]byte("adjacent"))

	for _, keyLen := range []int{2, 3, 5, 16, 100} {
		key := src.Bits(keyLen)

		compressed, status := scheme.Compress(key)
		if status != amplify.StatusApplied {
			t.Fatalf("len=%d: status %v, want applied", keyLen, status)
		}
		if len(compressed) != scheme.CompressedLen(keyLen) {
			t.Fatalf("len=%d: compressed to %d, want %d", keyLen, len(compressed), keyLen-1)
		}

		recovered := scheme.Recover(compressed, key[0])
		if !recovered.Equal(key) {
			t.Errorf("len=%d: recovered %v, want %v", keyLen, recovered, key)
		}
	}
}

func TestAdjacentWrongSeed(t *testing.T) {
	scheme := amplify.AdjacentXOR{}
	key, _ := bits.Parse("10110")

	compressed, _ := scheme.Compress(key)
	recovered := scheme.Recover(compressed, key[0]^1)

	// A flipped seed inverts every recovered bit.
	for i := range key {
		if recovered[i] == key[i] {
			t.Errorf("bit %d should differ under the complementary seed", i)
		}
	}
}

func TestThreeBitCompressedLength(t *testing.T) {
	scheme := amplify.ThreeBitDualXOR{}

	tests := []struct {
		inputLen int
		wantLen  int
	}{
		{3, 2},
		{4, 2}, // trailing bit dropped
		{5, 2},
		{6, 4},
		{9, 6},
		{10, 6},
	}

	src := bits.NewSource([]byte("threebit-len"))
	for _, tt := range tests {
		key := src.Bits(tt.inputLen)
		compressed, status := scheme.Compress(key)
		if status != amplify.StatusApplied {
			t.Fatalf("len=%d: status %v, want applied", tt.inputLen, status)
		}
		if len(compressed) != tt.wantLen {
			t.Errorf("len=%d: compressed to %d, want %d", tt.inputLen, len(compressed), tt.wantLen)
		}
		if scheme.CompressedLen(tt.inputLen) != tt.wantLen {
			t.Errorf("CompressedLen(%d) = %d, want %d", tt.inputLen, scheme.CompressedLen(tt.inputLen), tt.wantLen)
		}
	}
}

func TestThreeBitPairContent(t *testing.T) {
	scheme := amplify.ThreeBitDualXOR{}
	key, _ := bits.Parse("101110")

	compressed, _ := scheme.Compress(key)
	// Window (1,0,1) → (1⊕0, 0⊕1) = (1,1); window (1,1,0) → (0,1).
	want, _ := bits.Parse("1101")
	if !compressed.Equal(want) {
		t.Errorf("compressed = %v, want %v", compressed, want)
	}
}

func TestThreeBitRecoverReproducesPairs(t *testing.T) {
	scheme := amplify.ThreeBitDualXOR{}
	src := bits.NewSource([]byte("threebit-recover"))

	for _, keyLen := range []int{3, 6, 9, 30} {
		key := src.Bits(keyLen)
		compressed, _ := scheme.Compress(key)

		// Whatever the seed, adjacent XORs of the recovered sequence must
		// reproduce the stored pair stream: that is the recurrence's
		// invariant.
		for _, seed := range []uint8{0, 1} {
			recovered := scheme.Recover(compressed, seed)
			if len(recovered) != 1+len(compressed) {
				t.Fatalf("recovered length = %d, want %d", len(recovered), 1+len(compressed))
			}
			for i := 0; i+1 < len(recovered); i++ {
				if recovered[i]^recovered[i+1] != compressed[i] {
					t.Errorf("len=%d seed=%d: pair %d not reproduced", keyLen, seed, i)
				}
			}
		}

		// A seed equal to the first window's x reproduces the first (y, z)
		// pair exactly: y = x ⊕ (x⊕y), z = y ⊕ (y⊕z).
		recovered := scheme.Recover(compressed, key[0])
		if recovered[1] != key[1] || recovered[2] != key[2] {
			t.Errorf("len=%d: first window recovered (%d,%d), want (%d,%d)",
				keyLen, recovered[1], recovered[2], key[1], key[2])
		}
	}
}

func TestThreeBitRecoverEmpty(t *testing.T) {
	scheme := amplify.ThreeBitDualXOR{}
	if got := scheme.Recover(bits.Bits{}, 1); len(got) != 0 {
		t.Errorf("Recover(empty) = %v, want empty", got)
	}
}

func TestUnderLengthPassthrough(t *testing.T) {
	tests := []struct {
		scheme amplify.Scheme
		keyLen int
	}{
		{amplify.ThreeBitDualXOR{}, 0},
		{amplify.ThreeBitDualXOR{}, 1},
		{amplify.ThreeBitDualXOR{}, 2},
		{amplify.AdjacentXOR{}, 0},
		{amplify.AdjacentXOR{}, 1},
	}

	for _, tt := range tests {
		key := bits.NewSource([]byte("short")).Bits(tt.keyLen)
		out, status := tt.scheme.Compress(key)
		if status != amplify.StatusPassthrough {
			t.Errorf("%s len=%d: status %v, want passthrough", tt.scheme.Name(), tt.keyLen, status)
		}
		if !out.Equal(key) {
			t.Errorf("%s len=%d: passthrough altered the key", tt.scheme.Name(), tt.keyLen)
		}
	}
}

func TestStatusString(t *testing.T) {
	if amplify.StatusApplied.String() != "applied" {
		t.Errorf("StatusApplied.String() = %q", amplify.StatusApplied.String())
	}
	if amplify.StatusPassthrough.String() != "passthrough" {
		t.Errorf("StatusPassthrough.String() = %q", amplify.StatusPassthrough.String())
	}
	if amplify.Status(42).String() != "unknown" {
		t.Errorf("unknown status String() = %q", amplify.Status(42).String())
	}
}

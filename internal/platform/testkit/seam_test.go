package testkit

import (
	"sync"
	"testing"
	"time"
)

var (
	foldFn    = func(s string) string { return s }
	seamLimit = 50
)

func TestSwapRestoresFunction(t *testing.T) {
	// the swap lives in a subtest so its Cleanup fires before the
	// restoration check below
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &foldFn, func(string) string { return "tsentsak" })
		if got := foldFn("anything"); got != "tsentsak" {
			t.Fatalf("swap not in effect, got %q", got)
		}
	})

	if got := foldFn("shuar"); got != "shuar" {
		t.Fatalf("original not restored, got %q", got)
	}
}

func TestSwapRestoresValue(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &seamLimit, 7)
		if seamLimit != 7 {
			t.Fatalf("swap failed, got %d", seamLimit)
		}
	})
	if seamLimit != 50 {
		t.Fatalf("original not restored, got %d", seamLimit)
	}
}

func TestSerialPreventsInterleaving(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var seq []string
	record := func(s string) {
		mu.Lock()
		seq = append(seq, s)
		mu.Unlock()
	}

	for _, name := range []string{"A", "B"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			Serial(t)
			record(name + "-start")
			time.Sleep(50 * time.Millisecond)
			record(name + "-end")
		})
	}

	t.Cleanup(func() {
		mu.Lock()
		defer mu.Unlock()
		if len(seq) != 4 {
			t.Fatalf("sequence length %d, seq=%v", len(seq), seq)
		}
		// whichever subtest started first must finish before the other starts
		first := seq[0][:1]
		if seq[1] != first+"-end" {
			t.Fatalf("interleaved execution: %v", seq)
		}
	})
}

package pcm

import (
	"sync"
	"testing"

	"github.com/tphakala/go-audio-pcm/internal/testutil"
)

// TestConcurrentCallsDeterministic verifies that concurrent calls sharing a
// read-only input produce identical results with no coordination. Both
// functions are pure, so every goroutine must see the same output.
func TestConcurrentCallsDeterministic(t *testing.T) {
	const workers = 16

	samples := testutil.SineInt16(14000, 441, 44100, 4096)
	wantRMS := RMS(samples)
	wantFloats := Float32(samples)

	var wg sync.WaitGroup
	rmsResults := make([]float64, workers)
	floatResults := make([][]float32, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			rmsResults[worker] = RMS(samples)

			dst := make([]float32, len(samples))
			if err := ToFloat32(dst, samples); err != nil {
				t.Errorf("worker %d: ToFloat32 failed: %v", worker, err)
				return
			}
			floatResults[worker] = dst
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		if rmsResults[w] != wantRMS {
			t.Errorf("worker %d: RMS = %v, want %v", w, rmsResults[w], wantRMS)
		}
		for i := range wantFloats {
			if floatResults[w][i] != wantFloats[i] {
				t.Errorf("worker %d: sample %d = %v, want %v", w, i, floatResults[w][i], wantFloats[i])
				break // Don't flood with errors
			}
		}
	}
}

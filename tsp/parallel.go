package tsp

import (
	"math/rand"

	"github.com/sourcegraph/conc/pool"
)

// forEachSlot runs fn(slot, streams[slot]) for every slot in [lo, hi).
//
// With workers <= 1 the slots run inline, in order. Otherwise they are spread
// over a bounded goroutine pool; Wait is the barrier: forEachSlot returns only
// after every slot finished, so callers may mutate shared state (pheromone,
// population buffers) right after it. Each slot owns its stream and its output
// buffers, so results are identical for any worker count.
func forEachSlot(lo, hi, workers int, streams []*rand.Rand, fn func(slot int, rng *rand.Rand)) {
	if hi <= lo {
		return
	}

	var slot int
	if workers <= 1 || hi-lo == 1 {
		for slot = lo; slot < hi; slot++ {
			fn(slot, streams[slot])
		}
		return
	}

	p := pool.New().WithMaxGoroutines(workers)
	for slot = lo; slot < hi; slot++ {
		s := slot
		p.Go(func() {
			fn(s, streams[s])
		})
	}
	p.Wait()
}

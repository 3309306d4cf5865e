package tsp

// Termination is the stopping predicate shared by the iterative engines:
//
//	iteration >= MaxIterations  OR  best < Target
//
// Engines evaluate it once per completed iteration, never mid-iteration.
// A zero Target never fires (lengths are non-negative), so the iteration cap
// alone bounds the run whatever the other parameters are.
type Termination struct {
	MaxIterations int
	Target        float64
}

// Done reports whether the run should stop after `iteration` completed
// iterations with best length `best`.
//
// Complexity: O(1).
func (t Termination) Done(iteration int, best float64) bool {
	return iteration >= t.MaxIterations || best < t.Target
}

// reason tells which condition fired; call only after Done returned true.
func (t Termination) reason(best float64) StopReason {
	if best < t.Target {
		return StopTarget
	}

	return StopMaxIterations
}

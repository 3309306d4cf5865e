package tsp

// SolveNN builds a tour greedily: from StartVertex, repeatedly move
// to the closest unvisited point (ties to the lowest index). It is the
// baseline the metaheuristics are compared against and ignores the iteration
// and seed settings.
//
// Complexity: O(n²) time, O(n) space.
func SolveNN(dist *DistanceMatrix, opts Options) (Result, error) {
	opts.Algo = NearestNeighbor
	if err := validateRun(dist, opts); err != nil {
		return Result{}, err
	}

	n := dist.n
	if n == 1 {
		return Result{Algo: NearestNeighbor, Tour: []int{0}, Stopped: StopTrivial}, nil
	}

	tour := make([]int, n)
	visited := make([]bool, n)
	cur := opts.StartVertex
	tour[0] = cur
	visited[cur] = true

	var (
		i, j, next int
		best       float64
	)
	for i = 1; i < n; i++ {
		next = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if next == -1 || dist.rows[cur][j] < best {
				next = j
				best = dist.rows[cur][j]
			}
		}
		tour[i] = next
		visited[next] = true
		cur = next
	}

	return Result{
		Algo:    NearestNeighbor,
		Tour:    tour,
		Length:  round1e9(tourLength(dist.rows, tour)),
		Stopped: StopConstructed,
	}, nil
}

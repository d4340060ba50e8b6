package searcher

const (
	DefaultSimulations       = 10000
	DefaultPlayoutCap        = 100
	DefaultGreedyProbability = 0.8
)

// Use playout results to estimate the chance of winning
const (
	Win  = 1.0
	Loss = 0.0
)

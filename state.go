package lloyd

// State is the phase of a fit.
type State uint8

const (
	// Initializing picks the starting centroids.
	Initializing State = iota
	// Assigning alternates assignment and update passes.
	Assigning
	// Converged means a pass reproduced the previous labels.
	Converged
	// IterationLimitReached means the pass budget ran out first.
	IterationLimitReached
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Assigning:
		return "assigning"
	case Converged:
		return "converged"
	case IterationLimitReached:
		return "iteration_limit_reached"
	default:
		return "unknown"
	}
}

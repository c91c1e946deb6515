package domain

// LoopState defines the lifecycle of the interaction loop.
type LoopState string

const (
	StateRunning    LoopState = "running"    // Reading and answering lines
	StateTerminated LoopState = "terminated" // Sink state, no transitions out
)

// Terminal reports whether no further turns can happen in this state.
func (s LoopState) Terminal() bool {
	return s == StateTerminated
}

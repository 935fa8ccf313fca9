package kernel

// TransitionPolicy decides whether a status machine lets an entity leave a terminal state.
// Adjacency between states is never enforced; any enumerated state may follow any other.
type TransitionPolicy int

const (
	// FreeTransition accepts every transition, including out of delivered, cancelled or completed.
	FreeTransition TransitionPolicy = iota

	// BlockTerminalTransition rejects transitions once a terminal state was reached.
	BlockTerminalTransition
)

// AllowsLeaving reports whether an entity currently in a state with the given
// terminal flag may move to another state.
func (p TransitionPolicy) AllowsLeaving(terminal bool) bool {
	return !terminal || p == FreeTransition
}

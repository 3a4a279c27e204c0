package game

// State is a step of the turn state machine.
type State int

const (
	AwaitingSelection State = iota
	AwaitingDestination
	PromotionPending
	GameOver
)

// String returns the string representation of a state.
func (s State) String() string {
	names := []string{"AwaitingSelection", "AwaitingDestination", "PromotionPending", "GameOver"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

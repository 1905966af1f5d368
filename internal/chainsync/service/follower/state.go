package follower

// State is the lifecycle stage of a follow session.
type State string

const (
	StateIdle       State = "idle"
	StateConnecting State = "connecting"
	StateStreaming  State = "streaming"
	StateClosed     State = "closed"
	StateFailed     State = "failed"
)

// Terminal reports whether no further transitions can happen.
func (s State) Terminal() bool {
	return s == StateClosed || s == StateFailed
}

// UndoPolicy decides what the tip becomes after an Undo action.
type UndoPolicy int

const (
	// UndoAdoptCarried makes the block carried by the Undo the new tip.
	UndoAdoptCarried UndoPolicy = iota
	// UndoRevertToPrevious treats the carried block as the removed head
	// and restores the tip that preceded it.
	UndoRevertToPrevious
)

func (p UndoPolicy) String() string {
	switch p {
	case UndoAdoptCarried:
		return "adopt"
	case UndoRevertToPrevious:
		return "revert"
	default:
		return "unknown"
	}
}

// ParseUndoPolicy accepts "adopt" or "revert".
func ParseUndoPolicy(s string) (UndoPolicy, bool) {
	switch s {
	case "adopt", "":
		return UndoAdoptCarried, true
	case "revert":
		return UndoRevertToPrevious, true
	default:
		return UndoAdoptCarried, false
	}
}

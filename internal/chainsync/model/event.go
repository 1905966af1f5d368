package model

// EventKind is the kind of a follow notification.
type EventKind string

const (
	EventApplied EventKind = "applied"
	EventUndone  EventKind = "undone"
	EventReset   EventKind = "reset"
)

// Event is one processed follow action.
// Record is set for Applied and Undone, Ref for Reset.
// Tip is the follow state after the action, nil when unknown.
type Event struct {
	Kind   EventKind
	Index  uint64
	Record *BlockRecord
	Ref    *BlockRef
	Tip    *BlockRef
}

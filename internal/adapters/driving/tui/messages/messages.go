// Package messages defines Bubbletea message types for the review TUI.
package messages

// Decision is the operator's verdict on a reviewed extraction.
type Decision int

const (
	// DecisionPending means the review is still open.
	DecisionPending Decision = iota
	// DecisionAccepted means the extraction should be saved.
	DecisionAccepted
	// DecisionRejected means the extraction should be discarded.
	DecisionRejected
)

// String returns the string representation of the decision.
func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionAccepted:
		return "accepted"
	case DecisionRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// FieldNameEdited is sent when the operator applies a new field name.
type FieldNameEdited struct {
	Name string
}

// Decided is sent when the operator accepts or rejects the extraction.
type Decided struct {
	Decision Decision
}

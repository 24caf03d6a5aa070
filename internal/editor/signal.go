package editor

// SignalKind classifies the outcome of an edit attempt.
type SignalKind int

// Outcomes. SignalNone means the pick was ignored entirely (no state
// change, no message).
const (
	SignalNone SignalKind = iota
	SignalApplied
	SignalRejected
	SignalHint
)

// Signal is the user-facing result of an edit attempt. Rejections and
// hints carry advisory text; neither ever accompanies a state change.
type Signal struct {
	Kind    SignalKind
	Message string
}

// Applied returns the success signal.
func Applied() Signal {
	return Signal{Kind: SignalApplied}
}

// Rejected returns a rejection signal with the given reason.
func Rejected(msg string) Signal {
	return Signal{Kind: SignalRejected, Message: msg}
}

// Hint returns a mode-mismatch guidance signal.
func Hint(msg string) Signal {
	return Signal{Kind: SignalHint, Message: msg}
}

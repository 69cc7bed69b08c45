package tui

// ============================================================================
// Gateway Result Messages
// ============================================================================

// InsightMsg carries the follow-up text for a selected focus group.
type InsightMsg struct {
	Text string
}

// FeedbackMsg carries the viability feedback and an optional size
// warning. Warning is empty when the niche size was sufficient.
type FeedbackMsg struct {
	Feedback string
	Warning  string
}

// OfferingsMsg carries the generated offerings text.
type OfferingsMsg struct {
	Text string
}

// ============================================================================
// Export Messages
// ============================================================================

// ExportDoneMsg reports a successfully written plan file.
type ExportDoneMsg struct {
	Path string
}

// ExportErrorMsg reports a failed plan export.
type ExportErrorMsg struct {
	Err error
}

// ============================================================================
// Control Messages
// ============================================================================

// CtrlCResetMsg clears the pending Ctrl+C confirmation after its
// timeout elapses.
type CtrlCResetMsg struct{}

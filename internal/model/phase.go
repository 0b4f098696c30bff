package model

// Phase represents the state of the current classification attempt
type Phase string

const (
	// PhaseIdle means no prediction is running or displayed
	PhaseIdle Phase = "Idle"

	// PhasePredicting means a prediction request is in flight
	PhasePredicting Phase = "Predicting"

	// PhaseResultMain means the base category and glyph are displayed
	PhaseResultMain Phase = "ResultMain"

	// PhaseResultBreed means the breed and confidence are displayed as well
	PhaseResultBreed Phase = "ResultBreed"

	// PhaseError means the last prediction attempt failed
	PhaseError Phase = "Error"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsBusy returns true while a prediction request is in flight
func (p Phase) IsBusy() bool {
	return p == PhasePredicting
}

// HasResult returns true if a successful prediction is currently displayed
func (p Phase) HasResult() bool {
	return p == PhaseResultMain || p == PhaseResultBreed
}

// FeedbackState represents the feedback panel lifecycle. Feedback overlays the
// result phases: it unlocks when the main category is shown and survives the
// breed reveal.
type FeedbackState string

const (
	// FeedbackHidden means no prediction exists, so feedback is unavailable
	FeedbackHidden FeedbackState = "Hidden"

	// FeedbackAvailable means the feedback toggle is shown, panel collapsed
	FeedbackAvailable FeedbackState = "Available"

	// FeedbackOpen means the correction panel is expanded
	FeedbackOpen FeedbackState = "Open"

	// FeedbackSending means a feedback request is in flight
	FeedbackSending FeedbackState = "Sending"

	// FeedbackSubmitted means feedback was accepted; the submit action is
	// held disabled for a cooldown before returning to Available
	FeedbackSubmitted FeedbackState = "Submitted"
)

// String returns the string representation of FeedbackState
func (fs FeedbackState) String() string {
	return string(fs)
}

// CanSubmit returns true if the submit action may fire a request
func (fs FeedbackState) CanSubmit() bool {
	return fs == FeedbackOpen
}

// PanelVisible returns true if the correction panel should be expanded
func (fs FeedbackState) PanelVisible() bool {
	return fs == FeedbackOpen || fs == FeedbackSending
}

package session

// Package session implements the prediction lifecycle: the request/response
// choreography for one classification attempt, the staged reveal of category
// and breed, and the optional feedback submission tied to the same image.

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/backend"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/classify"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/model"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/notify"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/timing"
	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/upload"
)

// Display strings for the in-panel error state
const (
	ErrorGlyph          = "❌"
	ErrorCategory       = "Error"
	ErrorBreedText      = "Failed to analyze image"
	ErrorConfidenceText = "Please try again"
)

// Snapshot is the renderable state of the session at one instant. The UI
// renders snapshots verbatim and owns no sequencing logic of its own.
type Snapshot struct {
	Phase    model.Phase
	Feedback model.FeedbackState

	Glyph      string
	Category   string
	Breed      string
	Confidence string

	ShowBreed    bool
	CanPredict   bool
	CanCopyBreed bool
}

// Session owns the current prediction attempt. Predict and SubmitFeedback
// block until the backend call resolves; callers run them on their own
// goroutine and receive state through the update callback.
type Session struct {
	api     backend.API
	uploads *upload.Controller
	notes   *notify.Queue
	sched   timing.Scheduler

	mu       sync.Mutex
	phase    model.Phase
	feedback model.FeedbackState
	result   *model.PredictionResult
	onUpdate func(Snapshot)
}

// New creates an idle session
func New(api backend.API, uploads *upload.Controller, notes *notify.Queue, sched timing.Scheduler) *Session {
	return &Session{
		api:      api,
		uploads:  uploads,
		notes:    notes,
		sched:    sched,
		phase:    model.PhaseIdle,
		feedback: model.FeedbackHidden,
	}
}

// SetUpdateCallback sets the callback invoked with a snapshot after every
// state change
func (s *Session) SetUpdateCallback(cb func(Snapshot)) {
	s.mu.Lock()
	s.onUpdate = cb
	s.mu.Unlock()
}

// Snapshot returns the current renderable state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Reset discards the current result and feedback eligibility. Called when
// the staged image is removed or replaced.
func (s *Session) Reset() {
	s.mu.Lock()
	s.result = nil
	s.phase = model.PhaseIdle
	s.feedback = model.FeedbackHidden
	s.mu.Unlock()
	s.emit()
}

// Predict sends the staged image for classification and drives the staged
// reveal. Blocks until the request resolves; at most one call may be in
// flight, later calls during Predicting are ignored.
func (s *Session) Predict(ctx context.Context) {
	s.mu.Lock()
	if s.phase == model.PhasePredicting {
		s.mu.Unlock()
		return
	}
	img := s.uploads.Current()
	if img == nil {
		s.mu.Unlock()
		s.notes.Error("Please upload an image first")
		return
	}
	s.phase = model.PhasePredicting
	s.feedback = model.FeedbackHidden
	s.result = nil
	s.mu.Unlock()
	s.emit()

	result, err := s.api.Predict(ctx, img)

	s.mu.Lock()
	current := s.uploads.Current()
	if current == nil || current.ID != img.ID {
		// The image was removed or replaced while the request was in
		// flight; discard the stale outcome.
		if s.phase == model.PhasePredicting {
			s.phase = model.PhaseIdle
		}
		s.mu.Unlock()
		s.emit()
		return
	}

	if err != nil {
		s.phase = model.PhaseError
		s.feedback = model.FeedbackHidden
		s.mu.Unlock()
		s.emit()
		log.Printf("Prediction failed: %v", err)
		s.notes.Error(predictFailureText(err))
		return
	}

	s.result = result
	s.phase = model.PhaseResultMain
	s.feedback = model.FeedbackAvailable
	resultID := result.ID
	s.mu.Unlock()
	s.emit()

	s.notes.Success("Analysis completed successfully")

	s.sched.AfterFunc(timing.BreedRevealDelay, func() {
		s.revealBreed(resultID)
	})
}

// revealBreed promotes the display to the breed phase once the reveal delay
// elapses, unless the scheduling result has been superseded or carries no
// breed candidates.
func (s *Session) revealBreed(resultID string) {
	s.mu.Lock()
	if s.result == nil || s.result.ID != resultID || len(s.result.Breeds) == 0 {
		s.mu.Unlock()
		return
	}
	if s.phase != model.PhaseResultMain {
		s.mu.Unlock()
		return
	}
	s.phase = model.PhaseResultBreed
	s.mu.Unlock()
	s.emit()
}

// ToggleFeedback expands or collapses the correction panel. Inert unless a
// result has made feedback available.
func (s *Session) ToggleFeedback() {
	s.mu.Lock()
	switch s.feedback {
	case model.FeedbackAvailable:
		s.feedback = model.FeedbackOpen
	case model.FeedbackOpen:
		s.feedback = model.FeedbackAvailable
	default:
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.emit()
}

// SubmitFeedback sends the user's correction. Performs no network call
// unless a result exists, the corrected label is non-empty, and the image
// that produced the result is still staged. Blocks until resolved.
func (s *Session) SubmitFeedback(ctx context.Context, corrected model.ClassName) {
	s.mu.Lock()
	if s.feedback == model.FeedbackSending {
		s.mu.Unlock()
		return
	}

	img := s.uploads.Current()
	switch {
	case corrected == "":
		s.mu.Unlock()
		s.notes.Error("Please select a correct class")
		return
	case s.result == nil:
		s.mu.Unlock()
		s.notes.Error("No prediction to correct")
		return
	case img == nil || img.ID != s.result.ImageID:
		s.mu.Unlock()
		s.notes.Error("No image to submit feedback for")
		return
	}

	fb := model.FeedbackSubmission{
		Image:     img,
		Predicted: s.result.Predicted,
		Corrected: corrected,
	}
	s.feedback = model.FeedbackSending
	s.mu.Unlock()
	s.emit()

	message, err := s.api.SubmitFeedback(ctx, fb)

	s.mu.Lock()
	if err != nil {
		// Submit is re-enabled immediately; the panel stays open.
		s.feedback = model.FeedbackOpen
		s.mu.Unlock()
		s.emit()
		log.Printf("Feedback submission failed: %v", err)
		s.notes.Error("Error submitting feedback. Please try again.")
		return
	}

	s.feedback = model.FeedbackSubmitted
	s.mu.Unlock()
	s.emit()
	s.notes.Success(message)

	s.sched.AfterFunc(timing.FeedbackCooldown, func() {
		s.endFeedbackCooldown()
	})
}

// endFeedbackCooldown re-enables the submit action after an accepted
// correction, for a possible subsequent correction. The state check guards
// against a newer prediction or a reset having superseded the submission.
func (s *Session) endFeedbackCooldown() {
	s.mu.Lock()
	if s.feedback != model.FeedbackSubmitted {
		s.mu.Unlock()
		return
	}
	s.feedback = model.FeedbackAvailable
	s.mu.Unlock()
	s.emit()
}

// CurrentBreed returns the breed name available for copying, or ""
func (s *Session) CurrentBreed() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != model.PhaseResultBreed || s.result == nil {
		return ""
	}
	return s.result.FirstBreed()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		Phase:    s.phase,
		Feedback: s.feedback,
	}
	snap.CanPredict = s.uploads.Current() != nil && s.phase != model.PhasePredicting

	switch s.phase {
	case model.PhaseError:
		snap.Glyph = ErrorGlyph
		snap.Category = ErrorCategory
		snap.Breed = ErrorBreedText
		snap.Confidence = ErrorConfidenceText
		snap.ShowBreed = true
	case model.PhaseResultMain, model.PhaseResultBreed:
		snap.Category, snap.Glyph = classify.Resolve(s.result.Predicted)
		if s.phase == model.PhaseResultBreed {
			snap.Breed = s.result.FirstBreed()
			snap.Confidence = "Confidence: " + s.result.ConfidencePercent() + "%"
			snap.ShowBreed = true
			snap.CanCopyBreed = true
		}
	}
	return snap
}

func (s *Session) emit() {
	s.mu.Lock()
	cb := s.onUpdate
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if cb != nil {
		cb(snap)
	}
}

// predictFailureText derives the notification text for a failed prediction:
// payload-reported errors use the backend's message, HTTP failures use the
// status-derived message, and anything else falls back to the generic text.
func predictFailureText(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}
	return "Failed to analyze image. Please try again."
}

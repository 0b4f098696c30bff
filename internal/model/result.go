package model

import (
	"fmt"
	"strings"
)

// ClassName is an animal class identifier as known to the backend. It may
// contain underscores standing in for spaces (e.g. "Golden_Retriever").
type ClassName string

// String returns the raw class name
func (c ClassName) String() string {
	return string(c)
}

// Display returns the class name with separator characters rendered as spaces
func (c ClassName) Display() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

// PredictionResult is the outcome of one successful classification request.
// It is immutable; a new prediction supersedes it entirely.
type PredictionResult struct {
	ID         string // unique per response, used for staleness checks
	ImageID    string // StagedImage.ID that produced this result
	Predicted  ClassName
	Confidence float64  // 0.0 to 1.0
	Breeds     []string // ordered breed candidates, possibly empty
}

// FirstBreed returns the top breed candidate, or "" if none exist
func (r *PredictionResult) FirstBreed() string {
	if len(r.Breeds) == 0 {
		return ""
	}
	return r.Breeds[0]
}

// ConfidencePercent returns the confidence formatted with one decimal place,
// multiplied by 100 (e.g. 0.93 -> "93.0")
func (r *PredictionResult) ConfidencePercent() string {
	return fmt.Sprintf("%.1f", r.Confidence*100)
}

// FeedbackSubmission carries one user correction to the backend. Constructed
// only when a result exists; sent once, never retried automatically.
type FeedbackSubmission struct {
	Image     *StagedImage
	Predicted ClassName
	Corrected ClassName
}

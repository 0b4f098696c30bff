package backend

import (
	"context"

	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/model"
)

// API defines the interface to the classification backend.
type API interface {
	// Classes fetches the list of valid animal classes
	Classes(ctx context.Context) ([]model.ClassName, error)

	// Predict sends the staged image for classification
	Predict(ctx context.Context, img *model.StagedImage) (*model.PredictionResult, error)

	// SubmitFeedback sends one user correction and returns the
	// server-supplied acknowledgment message
	SubmitFeedback(ctx context.Context, fb model.FeedbackSubmission) (string, error)

	// Health probes backend availability
	Health(ctx context.Context) (*HealthStatus, error)
}

// HealthStatus is the backend's health report
type HealthStatus struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	NumClasses  int    `json:"num_classes"`
}

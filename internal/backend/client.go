package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/model"
)

// UnknownPrediction is sent as the predicted label when none is available
const UnknownPrediction = "Unknown"

// Client talks to the classification backend over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client for the given base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type classesResponse struct {
	Classes []string `json:"classes"`
}

type predictResponse struct {
	Prediction string   `json:"prediction"`
	Confidence float64  `json:"confidence"`
	Breeds     []string `json:"breeds"`
	Error      string   `json:"error"`
}

type feedbackResponse struct {
	Message string `json:"message"`
}

// Classes fetches the class catalog from GET /classes
func (c *Client) Classes(ctx context.Context) ([]model.ClassName, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/classes", nil)
	if err != nil {
		return nil, fmt.Errorf("build classes request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch classes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Endpoint: "/classes", Code: resp.StatusCode}
	}

	var payload classesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode classes response: %w", err)
	}

	classes := make([]model.ClassName, 0, len(payload.Classes))
	for _, name := range payload.Classes {
		classes = append(classes, model.ClassName(name))
	}
	return classes, nil
}

// Predict sends the staged image to POST /predict as multipart field "file"
func (c *Client) Predict(ctx context.Context, img *model.StagedImage) (*model.PredictionResult, error) {
	body, contentType, err := encodeMultipart(img, nil)
	if err != nil {
		return nil, fmt.Errorf("encode predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", body)
	if err != nil {
		return nil, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Endpoint: "/predict", Code: resp.StatusCode}
	}

	var payload predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode predict response: %w", err)
	}
	if payload.Error != "" {
		return nil, &APIError{Message: payload.Error}
	}

	return &model.PredictionResult{
		ID:         uuid.NewString(),
		ImageID:    img.ID,
		Predicted:  model.ClassName(payload.Prediction),
		Confidence: payload.Confidence,
		Breeds:     payload.Breeds,
	}, nil
}

// SubmitFeedback sends one correction to POST /feedback as multipart fields
// file, predicted and actual. Returns the server-supplied message.
func (c *Client) SubmitFeedback(ctx context.Context, fb model.FeedbackSubmission) (string, error) {
	predicted := string(fb.Predicted)
	if predicted == "" {
		predicted = UnknownPrediction
	}

	fields := map[string]string{
		"predicted": predicted,
		"actual":    string(fb.Corrected),
	}

	body, contentType, err := encodeMultipart(fb.Image, fields)
	if err != nil {
		return "", fmt.Errorf("encode feedback request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/feedback", body)
	if err != nil {
		return "", fmt.Errorf("build feedback request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("feedback: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Endpoint: "/feedback", Code: resp.StatusCode}
	}

	var payload feedbackResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode feedback response: %w", err)
	}
	return payload.Message, nil
}

// Health probes GET /health
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("health: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Endpoint: "/health", Code: resp.StatusCode}
	}

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("decode health response: %w", err)
	}
	return &status, nil
}

// encodeMultipart builds a multipart body with the image under field "file"
// plus any extra form fields
func encodeMultipart(img *model.StagedImage, fields map[string]string) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", img.Name)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(img.Data); err != nil {
		return nil, "", err
	}

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}

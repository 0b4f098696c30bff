package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/saif123-tech/ANIMAL-CLASSIFIER/internal/model"
)

func testImage() *model.StagedImage {
	return &model.StagedImage{
		ID:       "img-1",
		Name:     "photo.jpg",
		MIMEType: "image/jpeg",
		Data:     []byte("jpeg-bytes"),
		Size:     10,
	}
}

func TestClient_Classes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/classes" || r.Method != http.MethodGet {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"classes":["Golden_Retriever","Siamese_Cat","Bald_Eagle"]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	classes, err := client.Classes(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(classes) != 3 {
		t.Fatalf("Expected 3 classes, got %d", len(classes))
	}
	if classes[0] != "Golden_Retriever" {
		t.Errorf("Expected first class Golden_Retriever, got %s", classes[0])
	}
}

func TestClient_Classes_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Classes(context.Background())

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", statusErr.Code)
	}
}

func TestClient_Classes_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	if _, err := client.Classes(context.Background()); err == nil {
		t.Error("Expected error for malformed JSON, got nil")
	}
}

func TestClient_Predict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" || r.Method != http.MethodPost {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("Failed to parse multipart form: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("Expected file field: %v", err)
		}
		defer file.Close()
		if header.Filename != "photo.jpg" {
			t.Errorf("Expected filename photo.jpg, got %s", header.Filename)
		}

		w.Write([]byte(`{"prediction":"Golden_Retriever","confidence":0.93,"breeds":["Golden Retriever"]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	result, err := client.Predict(context.Background(), testImage())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Predicted != "Golden_Retriever" {
		t.Errorf("Expected prediction Golden_Retriever, got %s", result.Predicted)
	}
	if result.Confidence != 0.93 {
		t.Errorf("Expected confidence 0.93, got %v", result.Confidence)
	}
	if len(result.Breeds) != 1 || result.Breeds[0] != "Golden Retriever" {
		t.Errorf("Unexpected breeds: %v", result.Breeds)
	}
	if result.ImageID != "img-1" {
		t.Errorf("Result should reference the staged image, got %s", result.ImageID)
	}
	if result.ID == "" {
		t.Error("Result should carry a generated identity")
	}
}

func TestClient_Predict_PayloadError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"Model not available. Please check deployment."}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Predict(context.Background(), testImage())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.Message != "Model not available. Please check deployment." {
		t.Errorf("Unexpected message: %q", apiErr.Message)
	}
}

func TestClient_Predict_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Predict(context.Background(), testImage())

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", statusErr.Code)
	}
}

func TestClient_SubmitFeedback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/feedback" || r.Method != http.MethodPost {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("Failed to parse multipart form: %v", err)
		}
		if got := r.FormValue("predicted"); got != "Golden_Retriever" {
			t.Errorf("Expected predicted=Golden_Retriever, got %q", got)
		}
		if got := r.FormValue("actual"); got != "Cat" {
			t.Errorf("Expected actual=Cat, got %q", got)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("Expected file field: %v", err)
		}

		w.Write([]byte(`{"message":"✅ Feedback received and logged."}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	msg, err := client.SubmitFeedback(context.Background(), model.FeedbackSubmission{
		Image:     testImage(),
		Predicted: "Golden_Retriever",
		Corrected: "Cat",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if msg != "✅ Feedback received and logged." {
		t.Errorf("Unexpected message: %q", msg)
	}
}

func TestClient_SubmitFeedback_UnknownFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("Failed to parse multipart form: %v", err)
		}
		if got := r.FormValue("predicted"); got != UnknownPrediction {
			t.Errorf("Expected predicted=Unknown, got %q", got)
		}
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.SubmitFeedback(context.Background(), model.FeedbackSubmission{
		Image:     testImage(),
		Corrected: "Cat",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"status":"healthy","model_loaded":true,"num_classes":31}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	status, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if status.Status != "healthy" || !status.ModelLoaded || status.NumClasses != 31 {
		t.Errorf("Unexpected health status: %+v", status)
	}
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/classes" {
			t.Errorf("Expected /classes, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"classes":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", 5*time.Second)
	if _, err := client.Classes(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

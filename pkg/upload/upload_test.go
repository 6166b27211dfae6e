package upload

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/robtaylor/excalidraw-diagrams/pkg/errors"
	"github.com/robtaylor/excalidraw-diagrams/pkg/excalidraw"
)

func TestUpload(t *testing.T) {
	var gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		var doc map[string]any
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if doc["type"] != "excalidraw" {
			http.Error(w, "not a document", http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"url": "https://share.example/abc"}`))
	}))
	defer srv.Close()

	d := excalidraw.New(excalidraw.WithDeterministicSources())
	d.MustBox(100, 100, "Frontend", excalidraw.BoxOptions{})

	client := NewClient(srv.URL)
	body, err := client.Upload(context.Background(), d)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("content type = %q, want application/json", gotContentType)
	}
	var resp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.URL != "https://share.example/abc" {
		t.Errorf("url = %q", resp.URL)
	}
}

func TestUploadRetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "try again", http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetryMax(2), WithTimeout(5*time.Second))
	if _, err := client.Push(context.Background(), []byte(`{}`)); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestUploadClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetryMax(2))
	_, err := client.Push(context.Background(), []byte(`{}`))
	if err == nil {
		t.Fatal("Push to a rejecting endpoint should fail")
	}
	if !errors.Is(err, errors.ErrCodeUploadFailed) {
		t.Errorf("error code = %v, want UPLOAD_FAILED", errors.GetCode(err))
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1 (4xx is terminal)", got)
	}
}

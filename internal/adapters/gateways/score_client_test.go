package gateways

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payconsig/internal/core/domain"
)

func TestScoreClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"score": 650}`))
	}))
	defer server.Close()

	client := NewScoreClient(server.URL, 5*time.Second)

	score, err := client.Fetch(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 650 {
		t.Errorf("expected score 650, got %d", score)
	}
}

func TestScoreClient_Fetch_PassesScoreThroughVerbatim(t *testing.T) {
	// out-of-range values are not rejected by the client
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"score": -42}`))
	}))
	defer server.Close()

	client := NewScoreClient(server.URL, 5*time.Second)

	score, err := client.Fetch(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != -42 {
		t.Errorf("expected score -42, got %d", score)
	}
}

func TestScoreClient_Fetch_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewScoreClient(server.URL, 5*time.Second)

	if _, err := client.Fetch(context.Background(), "emp-1"); !errors.Is(err, domain.ErrScoreUnavailable) {
		t.Errorf("expected ErrScoreUnavailable, got %v", err)
	}
}

func TestScoreClient_Fetch_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewScoreClient(server.URL, 5*time.Second)

	if _, err := client.Fetch(context.Background(), "emp-1"); !errors.Is(err, domain.ErrScoreUnavailable) {
		t.Errorf("expected ErrScoreUnavailable, got %v", err)
	}
}

func TestScoreClient_Fetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"score": 650}`))
	}))
	defer server.Close()

	client := NewScoreClient(server.URL, 50*time.Millisecond)

	if _, err := client.Fetch(context.Background(), "emp-1"); !errors.Is(err, domain.ErrScoreUnavailable) {
		t.Errorf("expected ErrScoreUnavailable, got %v", err)
	}
}

func TestScoreClient_Fetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed on purpose

	client := NewScoreClient(server.URL, time.Second)

	if _, err := client.Fetch(context.Background(), "emp-1"); !errors.Is(err, domain.ErrScoreUnavailable) {
		t.Errorf("expected ErrScoreUnavailable, got %v", err)
	}
}

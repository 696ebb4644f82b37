package gateways

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payconsig/internal/core/domain"
)

func TestPaymentClient_Check_Approved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "approved"}`))
	}))
	defer server.Close()

	client := NewPaymentClient(server.URL, 5*time.Second)

	status, err := client.Check(context.Background(), "loan-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != domain.PaymentStatusApproved {
		t.Errorf("expected status %q, got %q", domain.PaymentStatusApproved, status)
	}
}

func TestPaymentClient_Check_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "rejected"}`))
	}))
	defer server.Close()

	client := NewPaymentClient(server.URL, 5*time.Second)

	status, err := client.Check(context.Background(), "loan-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status == domain.PaymentStatusApproved {
		t.Error("expected a non-approved status")
	}
}

func TestPaymentClient_Check_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewPaymentClient(server.URL, 5*time.Second)

	if _, err := client.Check(context.Background(), "loan-1"); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestPaymentClient_Check_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"status": "approved"}`))
	}))
	defer server.Close()

	client := NewPaymentClient(server.URL, 50*time.Millisecond)

	if _, err := client.Check(context.Background(), "loan-1"); err == nil {
		t.Error("expected timeout error")
	}
}

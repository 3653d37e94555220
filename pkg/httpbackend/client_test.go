package httpbackend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-confirmform/pkg/httpbackend"
)

func TestConfirmCode(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"confirmed": true}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	client, err := httpbackend.New(server.URL, httpbackend.WithHeader("Authorization", "Bearer token"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	confirmed, err := client.ConfirmCode(context.Background(), "casey@example.com", "123456")
	if err != nil {
		t.Fatalf("ConfirmCode: %v", err)
	}
	if !confirmed {
		t.Fatalf("expected confirmed")
	}
	if gotPath != "/auth/confirm" {
		t.Fatalf("path mismatch: %q", gotPath)
	}
	if gotAuth != "Bearer token" {
		t.Fatalf("header not forwarded: %q", gotAuth)
	}
	if gotBody["identifier"] != "casey@example.com" || gotBody["code"] != "123456" {
		t.Fatalf("body mismatch: %#v", gotBody)
	}
}

func TestConfirmCode_Unconfirmed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(`{"confirmed": false}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	client, err := httpbackend.New(server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	confirmed, err := client.ConfirmCode(context.Background(), "casey", "000000")
	if err != nil {
		t.Fatalf("ConfirmCode: %v", err)
	}
	if confirmed {
		t.Fatalf("expected unconfirmed result")
	}
}

func TestConfirmCode_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := httpbackend.New(server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	confirmed, err := client.ConfirmCode(context.Background(), "casey", "123456")
	if err != nil {
		t.Fatalf("ConfirmCode: %v", err)
	}
	if !confirmed {
		t.Fatalf("empty 2xx body should count as confirmed")
	}
}

func TestConfirmCode_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		if _, err := w.Write([]byte(`{"error": "code expired"}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	client, err := httpbackend.New(server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.ConfirmCode(context.Background(), "casey", "123456")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "code expired") {
		t.Fatalf("service error message lost: %v", err)
	}
}

func TestResendCode(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client, err := httpbackend.New(server.URL, httpbackend.WithResendPath("/v2/resend"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := client.ResendCode(context.Background(), "casey"); err != nil {
		t.Fatalf("ResendCode: %v", err)
	}
	if gotPath != "/v2/resend" {
		t.Fatalf("path mismatch: %q", gotPath)
	}
}

func TestNew_EmptyBaseURL(t *testing.T) {
	if _, err := httpbackend.New("  "); err == nil {
		t.Fatalf("expected error for empty base URL")
	}
}

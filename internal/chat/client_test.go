package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// doerFunc adapts a function to the Doer interface
type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

func TestSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/chat" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Message != "how are rates?" {
			t.Errorf("message = %q", req.Message)
		}
		json.NewEncoder(w).Encode(map[string]string{"response": "**Rates**\n\nSteady."})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	got, err := client.Send(context.Background(), "how are rates?")
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if got != "**Rates**\n\nSteady." {
		t.Errorf("Send() = %q", got)
	}
}

func TestSendBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "No message provided"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Send(context.Background(), "")
	if err == nil {
		t.Fatal("expected an error for a 400 response")
	}
	var cerr *ClientError
	if !errors.As(err, &cerr) {
		t.Fatalf("error type = %T, want *ClientError", err)
	}
	if cerr.Kind != ErrKindStatus {
		t.Errorf("kind = %v, want ErrKindStatus", cerr.Kind)
	}
	if cerr.Message != "No message provided" {
		t.Errorf("message = %q, want backend error text", cerr.Message)
	}
}

func TestSendConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the port refuses connections

	client := NewClient(srv.URL)
	_, err := client.Send(context.Background(), "hello")
	var cerr *ClientError
	if !errors.As(err, &cerr) || cerr.Kind != ErrKindConnection {
		t.Fatalf("expected a connection ClientError, got %v", err)
	}
}

func TestSendDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Send(context.Background(), "hello")
	var cerr *ClientError
	if !errors.As(err, &cerr) || cerr.Kind != ErrKindDecode {
		t.Fatalf("expected a decode ClientError, got %v", err)
	}
}

func TestSendTimeout(t *testing.T) {
	client := NewClient("http://backend.test").WithDoer(doerFunc(func(req *http.Request) (*http.Response, error) {
		// The real http.Client reports a blown deadline wrapped this way.
		return nil, &url.Error{Op: "Post", URL: req.URL.String(), Err: context.DeadlineExceeded}
	}))

	_, err := client.Send(context.Background(), "hello")
	var cerr *ClientError
	if !errors.As(err, &cerr) || cerr.Kind != ErrKindTimeout {
		t.Fatalf("expected a timeout ClientError, got %v", err)
	}
}

func TestCheckHealthTimeout(t *testing.T) {
	client := NewClient("http://backend.test").WithDoer(doerFunc(func(req *http.Request) (*http.Response, error) {
		return nil, &url.Error{Op: "Get", URL: req.URL.String(), Err: context.DeadlineExceeded}
	}))

	err := client.CheckHealth(context.Background())
	var cerr *ClientError
	if !errors.As(err, &cerr) || cerr.Kind != ErrKindTimeout {
		t.Fatalf("expected a timeout ClientError, got %v", err)
	}
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"healthy", http.StatusOK, false},
		{"server error", http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/" {
					t.Errorf("health probe hit %s, want /", r.URL.Path)
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := NewClient(srv.URL).CheckHealth(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckHealth() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

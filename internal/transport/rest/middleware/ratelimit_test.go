package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 3)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(clientID string) int {
		req := httptest.NewRequest("GET", "/v1/usage", nil)
		req.Header.Set("X-Client-ID", clientID)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		if code := send("client-a"); code != http.StatusOK {
			t.Fatalf("request %d within burst got %d", i, code)
		}
	}
	if code := send("client-a"); code != http.StatusTooManyRequests {
		t.Fatalf("request over burst got %d, want 429", code)
	}

	// Budgets are per client
	if code := send("client-b"); code != http.StatusOK {
		t.Fatalf("other client got %d, want 200", code)
	}
}

func TestClientID(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		remoteAddr string
		want       string
	}{
		{"header wins", "web-abc123", "10.0.0.1:5000", "web-abc123"},
		{"remote ip", "", "10.0.0.1:5000", "10.0.0.1"},
		{"bare addr", "", "10.0.0.2", "10.0.0.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.header != "" {
				req.Header.Set("X-Client-ID", tt.header)
			}
			if got := ClientID(req); got != tt.want {
				t.Errorf("ClientID = %q, want %q", got, tt.want)
			}
		})
	}
}

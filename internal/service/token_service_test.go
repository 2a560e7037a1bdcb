package service

import (
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.GenerateSessionToken("s_12345678")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	claims, err := svc.ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("ValidateSessionToken: %v", err)
	}
	if claims.SessionID != "s_12345678" {
		t.Errorf("session id = %q, want s_12345678", claims.SessionID)
	}
}

func TestTokenValidationRejects(t *testing.T) {
	svc := NewTokenService("test-secret")
	other := NewTokenService("other-secret")

	valid, err := other.GenerateSessionToken("s_abc")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"wrong secret", valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.ValidateSessionToken(tt.token); err == nil {
				t.Error("expected validation to fail")
			}
		})
	}
}

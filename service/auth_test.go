package service

import (
	"net/http"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
)

func signedToken(t *testing.T, secret string, expires time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": "deploy-tool",
		"exp": expires.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func requestWithToken(token string) *http.Request {
	r, _ := http.NewRequest(http.MethodPost, "/cache", nil)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

func TestAuthService_Enabled(t *testing.T) {
	if NewAuthService("").Enabled() {
		t.Error("empty secret should disable auth")
	}
	if !NewAuthService("s3cret").Enabled() {
		t.Error("non-empty secret should enable auth")
	}
}

func TestAuthService_TokenValid(t *testing.T) {
	auth := NewAuthService("s3cret")

	tests := []struct {
		name  string
		token string
		valid bool
	}{
		{
			name:  "valid token",
			token: signedToken(t, "s3cret", time.Now().Add(time.Hour)),
			valid: true,
		},
		{
			name:  "expired token",
			token: signedToken(t, "s3cret", time.Now().Add(-time.Hour)),
			valid: false,
		},
		{
			name:  "wrong secret",
			token: signedToken(t, "other", time.Now().Add(time.Hour)),
			valid: false,
		},
		{
			name:  "missing token",
			token: "",
			valid: false,
		},
		{
			name:  "garbage token",
			token: "not.a.jwt",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.TokenValid(requestWithToken(tt.token))
			if tt.valid && err != nil {
				t.Errorf("expected valid token, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected token validation to fail")
			}
		})
	}
}

func TestAuthService_ExtractToken(t *testing.T) {
	auth := NewAuthService("s3cret")

	r := requestWithToken("abc123")
	if got := auth.ExtractToken(r); got != "abc123" {
		t.Errorf("got %q expected %q", got, "abc123")
	}

	bare, _ := http.NewRequest(http.MethodGet, "/", nil)
	bare.Header.Set("Authorization", "abc123")
	if got := auth.ExtractToken(bare); got != "abc123" {
		t.Errorf("got %q expected %q", got, "abc123")
	}
}

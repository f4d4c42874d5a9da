package service

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v4"
)

// AuthService validates bearer tokens presented to mutating cache
// endpoints. Tokens are issued out of band and signed with a shared
// HMAC secret; an empty secret disables authentication
type AuthService struct {
	secret []byte
}

// NewAuthService creates a new AuthService instance with the provided
// signing secret
func NewAuthService(secret string) *AuthService {
	return &AuthService{secret: []byte(secret)}
}

// Enabled reports whether token validation is configured
func (s AuthService) Enabled() bool {
	return len(s.secret) > 0
}

// ExtractToken extracts the token from the Authorization header of an HTTP request
func (s AuthService) ExtractToken(r *http.Request) string {
	bearToken := r.Header.Get("Authorization")
	//normally Authorization the_token_xxx
	strArr := strings.Split(bearToken, " ")
	if len(strArr) == 2 {
		return strArr[1]
	}

	return strArr[0]
}

// VerifyToken validates the token signature and returns the parsed token
func (s AuthService) VerifyToken(r *http.Request) (*jwt.Token, error) {
	tokenString := s.ExtractToken(r)
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		//Make sure that the token method conform to "SigningMethodHMAC"
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			slog.Error("invalid signing method", "method", token.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		slog.Error("failed to verify token", "error", err)
		return nil, err
	}
	return token, nil
}

// TokenValid checks if the token in the request is valid
func (s AuthService) TokenValid(r *http.Request) error {
	token, err := s.VerifyToken(r)
	if err != nil {
		return err
	}
	if !token.Valid {
		slog.Error("invalid token claims")
		return errors.New("invalid token")
	}
	return nil
}

package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

type staticValidator struct {
	claims *Claims
	err    error
}

func (s staticValidator) ValidateToken(_ context.Context, token string) (*Claims, error) {
	if token != "good-token" {
		return nil, errors.New("unexpected token")
	}
	return s.claims, s.err
}

func TestMiddleware(t *testing.T) {
	claims := &Claims{WalletAddress: "0xAA"}
	claims.Subject = "user-1"

	var seen *AuthInfo
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = AuthInfoFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	handler := Middleware(staticValidator{claims: claims}, zap.NewNop())(next)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good-token", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"rejected token", "Bearer bad-token", http.StatusUnauthorized},
		{"valid token", "Bearer good-token", http.StatusNoContent},
		{"lowercase scheme", "bearer good-token", http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodPost, "/users", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, rec.Code)
			}
			if tc.want != http.StatusNoContent {
				if seen != nil {
					t.Fatal("expected request to stop at the middleware")
				}
				return
			}
			if seen.Subject != "user-1" || seen.WalletAddress != "0xAA" {
				t.Fatalf("unexpected auth info: %+v", seen)
			}
		})
	}
}

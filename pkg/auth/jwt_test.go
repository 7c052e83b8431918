package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testIssuer = "https://auth.ecochain.test"

type jwksFixture struct {
	key     *rsa.PrivateKey
	kid     string
	server  *httptest.Server
	fetches atomic.Int32
}

func newJWKSFixture(t *testing.T) *jwksFixture {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}

	f := &jwksFixture{key: key, kid: "test-key"}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		f.fetches.Add(1)
		_ = json.NewEncoder(w).Encode(JWKS{Keys: []JWK{{
			Kid: f.kid,
			Kty: "RSA",
			Alg: "RS256",
			Use: "sig",
			N:   base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.PublicKey.E)).Bytes()),
		}}})
	}))
	t.Cleanup(f.server.Close)

	return f
}

func (f *jwksFixture) sign(t *testing.T, kid string, claims Claims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}
	signed, err := token.SignedString(f.key)
	if err != nil {
		t.Fatalf("SignedString() failed: %v", err)
	}
	return signed
}

func validClaims() Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		WalletAddress: "0xAA",
	}
}

func TestJWTValidator_ValidToken(t *testing.T) {
	f := newJWKSFixture(t)
	v := NewJWTValidator(f.server.URL, testIssuer)

	claims, err := v.ValidateToken(context.Background(), f.sign(t, f.kid, validClaims()))
	if err != nil {
		t.Fatalf("ValidateToken() failed: %v", err)
	}
	if claims.Subject != "user-1" || claims.WalletAddress != "0xAA" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	// The key is cached after the first fetch.
	if _, err = v.ValidateToken(context.Background(), f.sign(t, f.kid, validClaims())); err != nil {
		t.Fatalf("second ValidateToken() failed: %v", err)
	}
	if n := f.fetches.Load(); n != 1 {
		t.Fatalf("expected 1 JWKS fetch, got %d", n)
	}
}

func TestJWTValidator_RejectsInvalidTokens(t *testing.T) {
	f := newJWKSFixture(t)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "https://someone.else"

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	hmac, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims()).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("SignedString() failed: %v", err)
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"expired", f.sign(t, f.kid, expired), jwt.ErrTokenExpired},
		{"wrong issuer", f.sign(t, f.kid, wrongIssuer), jwt.ErrTokenInvalidIssuer},
		{"missing expiry", f.sign(t, f.kid, noExpiry), jwt.ErrTokenRequiredClaimMissing},
		{"missing kid", f.sign(t, "", validClaims()), ErrMissingKeyID},
		{"unknown kid", f.sign(t, "rotated-away", validClaims()), ErrUnknownKey},
		{"hmac signed", hmac, jwt.ErrTokenSignatureInvalid},
		{"garbage", "not.a.jwt", jwt.ErrTokenMalformed},
	}

	v := NewJWTValidator(f.server.URL, testIssuer)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.ValidateToken(context.Background(), tc.token)
			if err == nil {
				t.Fatal("expected token to be rejected")
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestJWTValidator_NoIssuerConfigured(t *testing.T) {
	f := newJWKSFixture(t)
	v := NewJWTValidator(f.server.URL, "")

	claims := validClaims()
	claims.Issuer = "anyone"
	if _, err := v.ValidateToken(context.Background(), f.sign(t, f.kid, claims)); err != nil {
		t.Fatalf("expected any issuer to be accepted, got %v", err)
	}
}

func TestJWTValidator_JWKSUnavailable(t *testing.T) {
	f := newJWKSFixture(t)
	token := f.sign(t, f.kid, validClaims())

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(down.Close)

	v := NewJWTValidator(down.URL, testIssuer)
	if _, err := v.ValidateToken(context.Background(), token); err == nil {
		t.Fatal("expected validation to fail while the JWKS endpoint is down")
	}

	if NewJWTValidator("", "").IsConfigured() {
		t.Fatal("expected validator without JWKS URL to be unconfigured")
	}
}

func TestParseRSAPublicKey_RejectsBadInput(t *testing.T) {
	if _, err := parseRSAPublicKey("!!", "AQAB"); err == nil {
		t.Fatal("expected invalid modulus encoding to fail")
	}
	if _, err := parseRSAPublicKey("AQAB", "AQ"); err == nil {
		t.Fatal("expected exponent 1 to be rejected")
	}
}

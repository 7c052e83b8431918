package auth

import (
	"context"
)

// Context keys for authentication data
type contextKey string

const (
	// ContextKeySubject is the context key for the token subject
	ContextKeySubject contextKey = "subject"
	// ContextKeyWalletAddress is the context key for the wallet the token was issued for
	ContextKeyWalletAddress contextKey = "wallet_address"
)

// WithSubject adds the token subject to the context
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, ContextKeySubject, subject)
}

// SubjectFromContext retrieves the token subject from the context
func SubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(ContextKeySubject).(string)
	return sub, ok
}

// WithWalletAddress adds the wallet address to the context
func WithWalletAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, ContextKeyWalletAddress, address)
}

// WalletAddressFromContext retrieves the wallet address from the context
func WalletAddressFromContext(ctx context.Context) (string, bool) {
	addr, ok := ctx.Value(ContextKeyWalletAddress).(string)
	return addr, ok
}

// AuthInfo contains all authentication information for a request
type AuthInfo struct {
	Subject       string
	WalletAddress string
}

// WithAuthInfo adds all authentication info to the context
func WithAuthInfo(ctx context.Context, info *AuthInfo) context.Context {
	ctx = WithSubject(ctx, info.Subject)
	ctx = WithWalletAddress(ctx, info.WalletAddress)
	return ctx
}

// AuthInfoFromContext retrieves all authentication info from the context
func AuthInfoFromContext(ctx context.Context) *AuthInfo {
	info := &AuthInfo{}
	info.Subject, _ = SubjectFromContext(ctx)
	info.WalletAddress, _ = WalletAddressFromContext(ctx)
	return info
}

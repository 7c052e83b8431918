package ecostore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun/driver/pgdriver"

	apperrors "github.com/ecochain/ecochain-api/pkg/app/errors"
	"github.com/ecochain/ecochain-api/pkg/ecochain"
)

// Error kinds returned by the store. Every error returned by a Store method wraps exactly
// one of these inside an apperrors.ServiceError carrying the matching category.
var (
	// ErrValidation means a required field, enum domain or numeric bound was violated.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicateKey means a wallet address or transaction hash is already taken.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound means the record a mutation targets does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidTransition means a status change would leave a terminal state.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrStorage means the database could not be reached or failed transiently.
	ErrStorage = errors.New("storage unavailable")
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation = "23505"
	pgClassIntegrity  = "23"
	pgClassData       = "22"
)

func validationError(err error) error {
	return apperrors.BadRequestError(fmt.Errorf("%w: %w", ErrValidation, err), ecochain.ValidationMessage(err))
}

func invalidf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return apperrors.BadRequestError(fmt.Errorf("%w: %s", ErrValidation, msg), msg)
}

func notFound(what string) error {
	return apperrors.ResourceNotFoundError(fmt.Errorf("%w: %s", ErrNotFound, what), what+" not found")
}

func invalidTransition(what string, from, to any) error {
	msg := fmt.Sprintf("%s cannot move from %v to %v", what, from, to)
	return apperrors.ConflictError(fmt.Errorf("%w: %s", ErrInvalidTransition, msg), msg)
}

// classify maps a driver error to one of the store error kinds.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		code := pgErr.Field('C')
		switch {
		case code == pgUniqueViolation:
			return apperrors.ConflictError(
				fmt.Errorf("%s: %w: %w", op, ErrDuplicateKey, err),
				duplicateMessage(pgErr.Field('n')),
			)
		case strings.HasPrefix(code, pgClassIntegrity), strings.HasPrefix(code, pgClassData):
			return apperrors.BadRequestError(
				fmt.Errorf("%s: %w: %w", op, ErrValidation, err),
				pgErr.Field('M'),
			)
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.DependencyFailureError(fmt.Errorf("%s: %w: %w", op, ErrStorage, err), "request timed out")
	}

	return apperrors.DependencyFailureError(fmt.Errorf("%s: %w: %w", op, ErrStorage, err), "storage unavailable")
}

func duplicateMessage(constraint string) string {
	switch {
	case strings.Contains(constraint, "wallet_address"):
		return "wallet address already registered"
	case strings.Contains(constraint, "transaction_hash"):
		return "transaction hash already recorded"
	default:
		return "record already exists"
	}
}

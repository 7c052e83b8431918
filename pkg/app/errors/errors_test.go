package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestServiceError_StatusCode(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name   string
		err    error
		cat    Category
		status int
	}{
		{"bad request", BadRequestError(cause, "bad"), CategoryDataError, http.StatusBadRequest},
		{"unauthorized", UnAuthorizedError(cause, "nope"), CategoryUnauthorized, http.StatusUnauthorized},
		{"not found", ResourceNotFoundError(cause, "missing"), CategoryResourceNotFound, http.StatusNotFound},
		{"conflict", ConflictError(cause, "dup"), CategoryDataConflict, http.StatusConflict},
		{"dependency", DependencyFailureError(cause, "db down"), CategoryDependencyFailure, http.StatusServiceUnavailable},
		{"general", GeneralError(cause), CategoryGeneralError, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var svcErr *ServiceError
			if !errors.As(tc.err, &svcErr) {
				t.Fatalf("expected *ServiceError, got %T", tc.err)
			}
			if svcErr.StatusCode() != tc.status {
				t.Fatalf("status: got %d want %d", svcErr.StatusCode(), tc.status)
			}
			if !Is(tc.err, tc.cat) {
				t.Fatalf("expected category %s", tc.cat)
			}
			if !errors.Is(tc.err, cause) {
				t.Fatal("expected the cause to be unwrapped")
			}
		})
	}
}

func TestNewError_NilCauseUsesMessage(t *testing.T) {
	err := ConflictError(nil, "wallet address already registered")

	if got := err.Error(); got != "conflict: wallet address already registered" {
		t.Fatalf("Error(): got %q", got)
	}
}

func TestIsRetryable(t *testing.T) {
	wrapped := fmt.Errorf("get profile: %w", DependencyFailureError(nil, "storage unavailable"))

	if !IsRetryable(wrapped) {
		t.Fatal("dependency failures should be retryable through wrapping")
	}
	if IsRetryable(ResourceNotFoundError(nil, "user not found")) {
		t.Fatal("not found should not be retryable")
	}
	if IsRetryable(errors.New("plain")) {
		t.Fatal("plain errors should not be retryable")
	}
}

func TestCategory_String(t *testing.T) {
	if CategoryDependencyFailure.String() != "CategoryDependencyFailure" {
		t.Fatalf("got %s", CategoryDependencyFailure)
	}
	if Category(99).String() != "CategoryGeneralError" {
		t.Fatalf("unknown categories should render as general, got %s", Category(99))
	}
}

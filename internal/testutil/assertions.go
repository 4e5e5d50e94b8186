package testutil

import (
	"errors"
	"testing"

	apperrors "github.com/edsontomaz/gestao-financeira/internal/errors"
)

// AssertAppError checks that err is an *AppError carrying the expected code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("want AppError %q, got no error", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("want *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("want error code %q, got %q (%s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test immediately if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

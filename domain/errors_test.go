package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestProviderError_Error(t *testing.T) {
	err := &ProviderError{
		Op:      "send message",
		Code:    21211,
		Status:  400,
		Message: "The 'To' number is not a valid phone number.",
	}

	expected := "send message: provider error 21211 (status 400): The 'To' number is not a valid phone number."
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestProviderError_Kinds(t *testing.T) {
	tests := []struct {
		name               string
		code               int
		invalidDestination bool
		trialRestriction   bool
	}{
		{"invalid destination", ProviderCodeInvalidDestination, true, false},
		{"trial unverified", ProviderCodeTrialUnverified, false, true},
		{"other provider code", 20003, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ProviderError{Code: tt.code}
			if err.IsInvalidDestination() != tt.invalidDestination {
				t.Errorf("IsInvalidDestination() = %v, want %v", err.IsInvalidDestination(), tt.invalidDestination)
			}
			if err.IsTrialRestriction() != tt.trialRestriction {
				t.Errorf("IsTrialRestriction() = %v, want %v", err.IsTrialRestriction(), tt.trialRestriction)
			}
		})
	}
}

func TestAsProviderError(t *testing.T) {
	base := &ProviderError{Op: "check code", Code: 20404, Status: 404}

	tests := []struct {
		name  string
		err   error
		found bool
	}{
		{"direct provider error", base, true},
		{"wrapped provider error", fmt.Errorf("verification failed: %w", base), true},
		{"plain error", errors.New("something else"), false},
		{"sentinel error", ErrBusinessNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pe, ok := AsProviderError(tt.err)
			if ok != tt.found {
				t.Fatalf("AsProviderError() ok = %v, want %v", ok, tt.found)
			}
			if ok && pe.Code != base.Code {
				t.Errorf("AsProviderError() code = %d, want %d", pe.Code, base.Code)
			}
		})
	}
}

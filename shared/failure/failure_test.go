package failure_test

import (
	"errors"
	"net/http"
	"roam/shared/failure"
	"testing"
	"time"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "ResourceRestrictedError",
			failure: failure.ResourceRestrictedError,
			code:    http.StatusForbidden,
			message: "You don't have permission to access this resource",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Code != expectedF.Code || f.Message != expectedF.Message {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestUnauthorized(t *testing.T) {
	result := failure.Unauthorized("token expired")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusUnauthorized {
			t.Errorf("expected code to be %d, got %d", http.StatusUnauthorized, f.Code)
		}
		if f.Message != "token expired" {
			t.Errorf("expected message to be 'token expired', got %s", f.Message)
		}
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("booking not found")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusNotFound {
			t.Errorf("expected code to be %d, got %d", http.StatusNotFound, f.Code)
		}
	}
}

func TestForbidden(t *testing.T) {
	result := failure.Forbidden("access denied")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusForbidden {
			t.Errorf("expected code to be %d, got %d", http.StatusForbidden, f.Code)
		}
	}
}

func TestUpstreamFailure(t *testing.T) {
	if failure.UpstreamFailure(nil) != nil {
		t.Error("expected nil for nil input")
	}

	result := failure.UpstreamFailure(errors.New("object store unreachable"))

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else if f.Code != http.StatusBadGateway {
		t.Errorf("expected code to be %d, got %d", http.StatusBadGateway, f.Code)
	}
}

func TestNewUnavailable(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)

	err := failure.NewUnavailable(start, end)

	if !failure.IsUnavailable(err) {
		t.Error("expected IsUnavailable to report true")
	}
	if failure.IsInvalidTransition(err) {
		t.Error("expected IsInvalidTransition to report false")
	}
	if failure.GetCode(err) != http.StatusConflict {
		t.Errorf("expected code to be %d, got %d", http.StatusConflict, failure.GetCode(err))
	}

	var unavailable *failure.Unavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected error to be *failure.Unavailable, got %T", err)
	}
	if !unavailable.ConflictStart.Equal(start) || !unavailable.ConflictEnd.Equal(end) {
		t.Errorf("expected conflict range %v to %v, got %v to %v",
			start, end, unavailable.ConflictStart, unavailable.ConflictEnd)
	}
	if unavailable.Message != "requested dates are not available, conflicting reservation occupies 2026-03-10 to 2026-03-13" {
		t.Errorf("unexpected message: %s", unavailable.Message)
	}
}

func TestNewInvalidTransition(t *testing.T) {
	err := failure.NewInvalidTransition("status", "completed", "confirmed")

	if !failure.IsInvalidTransition(err) {
		t.Error("expected IsInvalidTransition to report true")
	}
	if failure.GetCode(err) != http.StatusConflict {
		t.Errorf("expected code to be %d, got %d", http.StatusConflict, failure.GetCode(err))
	}

	var invalid *failure.InvalidTransition
	if !errors.As(err, &invalid) {
		t.Fatalf("expected error to be *failure.InvalidTransition, got %T", err)
	}
	if invalid.Current != "completed" || invalid.Requested != "confirmed" {
		t.Errorf("expected completed -> confirmed, got %s -> %s", invalid.Current, invalid.Requested)
	}
	if invalid.Message != `illegal status transition from "completed" to "confirmed"` {
		t.Errorf("unexpected message: %s", invalid.Message)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    failure.BadRequestFromString("test"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "unavailable error",
			input:    failure.UnavailableFromString("listing is not open for booking"),
			expected: http.StatusConflict,
		},
		{
			name:     "invalid transition error",
			input:    failure.NewInvalidTransition("payment_status", "refunded", "paid"),
			expected: http.StatusConflict,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

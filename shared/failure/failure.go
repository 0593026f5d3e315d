package failure

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// UpstreamFailure wraps an error from a storage or transport collaborator.
// It is never retried for mutating writes; callers decide about idempotent reads.
func UpstreamFailure(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		}
	}

	return nil
}

// Unavailable reports a date-range conflict for a resource. The conflicting
// range is carried so callers can render an actionable message without
// re-deriving it.
type Unavailable struct {
	Failure
	ConflictStart time.Time `json:"conflict_start"`
	ConflictEnd   time.Time `json:"conflict_end"`
}

func NewUnavailable(conflictStart, conflictEnd time.Time) error {
	return &Unavailable{
		Failure: Failure{
			Code: http.StatusConflict,
			Message: fmt.Sprintf(
				"requested dates are not available, conflicting reservation occupies %s to %s",
				conflictStart.Format("2006-01-02"),
				conflictEnd.Format("2006-01-02"),
			),
		},
		ConflictStart: conflictStart,
		ConflictEnd:   conflictEnd,
	}
}

func UnavailableFromString(msg string) error {
	return &Unavailable{
		Failure: Failure{
			Code:    http.StatusConflict,
			Message: msg,
		},
	}
}

// InvalidTransition reports a rejected state machine transition, identifying
// the current and requested states.
type InvalidTransition struct {
	Failure
	Current   string `json:"current"`
	Requested string `json:"requested"`
}

func NewInvalidTransition(field, current, requested string) error {
	return &InvalidTransition{
		Failure: Failure{
			Code:    http.StatusConflict,
			Message: fmt.Sprintf("illegal %s transition from %q to %q", field, current, requested),
		},
		Current:   current,
		Requested: requested,
	}
}

// IsUnavailable reports whether err carries a date-range conflict.
func IsUnavailable(err error) bool {
	var unavailable *Unavailable

	return errors.As(err, &unavailable)
}

// IsInvalidTransition reports whether err is a rejected lifecycle transition.
func IsInvalidTransition(err error) bool {
	var invalid *InvalidTransition

	return errors.As(err, &invalid)
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var unavailable *Unavailable
	if errors.As(err, &unavailable) {
		return unavailable.Code
	}

	var invalid *InvalidTransition
	if errors.As(err, &invalid) {
		return invalid.Code
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

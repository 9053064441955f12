package failure

import (
	"errors"
	"net/http"
	"strings"
)

// Category classifies a Failure independently of its HTTP code.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryCapacity   Category = "capacity"
	CategoryConflict   Category = "conflict"
	CategoryConversion Category = "conversion"
	CategoryGeneration Category = "generation"
	CategoryNotFound   Category = "not_found"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code     int      `json:"code"`
	Message  string   `json:"message"`
	Category Category `json:"category,omitempty"`
	Details  []string `json:"details,omitempty"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

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

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:     http.StatusNotFound,
		Message:  msg,
		Category: CategoryNotFound,
	}
}

// Conflict returns a new Failure for uniqueness violations detected by the store.
func Conflict(message string) error {
	return &Failure{
		Code:     http.StatusConflict,
		Message:  message,
		Category: CategoryConflict,
	}
}

// Validation returns a Failure carrying every field message that failed.
func Validation(messages []string) error {
	if len(messages) == 0 {
		return nil
	}

	return &Failure{
		Code:     http.StatusUnprocessableEntity,
		Message:  strings.Join(messages, "; "),
		Category: CategoryValidation,
		Details:  messages,
	}
}

// Capacity returns a Failure for a check-in that cannot get a room.
func Capacity(msg string) error {
	return &Failure{
		Code:     http.StatusConflict,
		Message:  msg,
		Category: CategoryCapacity,
	}
}

// Conversion returns a Failure for malformed numeric or date input.
func Conversion(msg string) error {
	return &Failure{
		Code:     http.StatusBadRequest,
		Message:  msg,
		Category: CategoryConversion,
	}
}

// Generation returns a Failure for a receipt number that could not be produced.
func Generation(msg string) error {
	return &Failure{
		Code:     http.StatusInternalServerError,
		Message:  msg,
		Category: CategoryGeneration,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetCategory returns the category of an error interface, empty when it is not a Failure.
func GetCategory(err error) Category {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Category
	}

	return ""
}

// GetDetails returns the per-field messages of a validation Failure.
func GetDetails(err error) []string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Details
	}

	return nil
}

// Is reports whether err is a Failure of the given category.
func Is(err error, category Category) bool {
	return GetCategory(err) == category
}

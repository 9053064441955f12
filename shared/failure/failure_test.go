package failure_test

import (
	"errors"
	"fmt"
	"lodging/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantCode     int
		wantCategory failure.Category
		wantMessage  string
	}{
		{
			name:        "bad request from error",
			err:         failure.BadRequest(errors.New("malformed body")),
			wantCode:    http.StatusBadRequest,
			wantMessage: "malformed body",
		},
		{
			name:        "bad request from string",
			err:         failure.BadRequestFromString("update request cannot be empty"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "update request cannot be empty",
		},
		{
			name:        "unauthorized",
			err:         failure.Unauthorized("Token has expired"),
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Token has expired",
		},
		{
			name:         "not found",
			err:          failure.NotFound("guest not found"),
			wantCode:     http.StatusNotFound,
			wantCategory: failure.CategoryNotFound,
			wantMessage:  "guest not found",
		},
		{
			name:         "conflict",
			err:          failure.Conflict("receipt number already issued"),
			wantCode:     http.StatusConflict,
			wantCategory: failure.CategoryConflict,
			wantMessage:  "receipt number already issued",
		},
		{
			name:         "capacity",
			err:          failure.Capacity("only 2 rooms available"),
			wantCode:     http.StatusConflict,
			wantCategory: failure.CategoryCapacity,
			wantMessage:  "only 2 rooms available",
		},
		{
			name:         "conversion",
			err:          failure.Conversion("age must be a whole number"),
			wantCode:     http.StatusBadRequest,
			wantCategory: failure.CategoryConversion,
			wantMessage:  "age must be a whole number",
		},
		{
			name:         "generation",
			err:          failure.Generation("receipt counter exhausted"),
			wantCode:     http.StatusInternalServerError,
			wantCategory: failure.CategoryGeneration,
			wantMessage:  "receipt counter exhausted",
		},
		{
			name:        "forbidden",
			err:         failure.ForbiddenError,
			wantCode:    http.StatusForbidden,
			wantMessage: "You don't have the required permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)

			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantCategory, failure.GetCategory(tt.err))
			assert.Equal(t, tt.wantMessage, tt.err.Error())

			wrapped := fmt.Errorf("failed to check in: %w", tt.err)
			assert.Equal(t, tt.wantCode, failure.GetCode(wrapped))

			if tt.wantCategory != "" {
				assert.True(t, failure.Is(wrapped, tt.wantCategory))
			}
		})
	}
}

func TestBadRequest_Nil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestValidation(t *testing.T) {
	assert.NoError(t, failure.Validation(nil))

	err := failure.Validation([]string{"full_name is required", "age must be a whole number between 1 and 120"})

	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	assert.True(t, failure.Is(err, failure.CategoryValidation))
	assert.Equal(t, "full_name is required; age must be a whole number between 1 and 120", err.Error())
	assert.Equal(t, []string{"full_name is required", "age must be a whole number between 1 and 120"}, failure.GetDetails(err))
}

func TestPlainErrors(t *testing.T) {
	err := errors.New("connection reset")

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.Empty(t, failure.GetCategory(err))
	assert.Nil(t, failure.GetDetails(err))
	assert.False(t, failure.Is(err, failure.CategoryNotFound))
}

package errors

import (
	"net/http"
	"testing"

	"washapp/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("rating must be between 1 and 5")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrInvalidStatus))
	assert.Equal(t, "rating must be between 1 and 5", detailed.Details())
	assert.Equal(t, http.StatusBadRequest, detailed.HTTPCode())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := errors.Wrap(ErrInvalidTransition.WrapMessage("booking is completed"), "cancel booking")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waserda/kasir/internal/apperr"
)

func TestStorage(t *testing.T) {
	assert.Nil(t, apperr.Storage("op", nil))

	notFound := fmt.Errorf("sale 1: %w", apperr.ErrNotFound)
	assert.Same(t, notFound, apperr.Storage("op", notFound))

	invalid := apperr.Invalid("buyer_id", "unknown buyer")
	assert.Same(t, invalid, apperr.Storage("op", invalid))

	cause := errors.New("connection reset")
	err := apperr.Storage("recording sale", cause)

	var se *apperr.StorageError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, "recording sale", se.Op)
	assert.ErrorIs(t, err, cause)
	assert.Same(t, err, apperr.Storage("again", err))
}

func TestValidationError(t *testing.T) {
	err := apperr.Invalidf("paid_amount", "%d is below total %d", 100, 200)
	assert.Equal(t, "paid_amount: 100 is below total 200", err.Error())
	assert.True(t, apperr.IsValidation(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, apperr.IsValidation(errors.New("x")))
}

func TestNotificationError(t *testing.T) {
	assert.Equal(t, "notification failed: HTTP 502", (&apperr.NotificationError{StatusCode: 502}).Error())

	cause := errors.New("timeout")
	err := &apperr.NotificationError{Err: cause}
	assert.ErrorIs(t, err, cause)
}

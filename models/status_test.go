package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range StatusFlow {
		parsed, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStatus("bogus-status")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestApplyStatusRejectsUnknown(t *testing.T) {
	order := Order{Status: StatusScheduled}

	err := order.ApplyStatus("bogus-status")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, StatusScheduled, order.Status)
}

func TestApplyStatusAllowsAnyJump(t *testing.T) {
	// admins may set any status directly, forward or backward
	order := Order{Status: StatusScheduled}
	require.NoError(t, order.ApplyStatus(StatusDelivered))
	assert.Equal(t, StatusDelivered, order.Status)

	require.NoError(t, order.ApplyStatus(StatusPickedUp))
	assert.Equal(t, StatusPickedUp, order.Status)
}

func TestDisplayIndex(t *testing.T) {
	assert.Equal(t, 0, DisplayIndex(StatusScheduled))
	assert.Equal(t, 1, DisplayIndex(StatusPickedUp))
	assert.Equal(t, 2, DisplayIndex(StatusInProgress))
	assert.Equal(t, 3, DisplayIndex(StatusReady))
	assert.Equal(t, 4, DisplayIndex(StatusDelivered))
	assert.Equal(t, -1, DisplayIndex("unknown"))
}

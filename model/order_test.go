package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	st, err := ParseOrderStatus("shipped")
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, st)

	_, err = ParseOrderStatus("lost")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestOrderStatusForwardOnly(t *testing.T) {
	o := &Order{ID: "o1", Status: StatusPending}

	require.NoError(t, o.UpdateStatus(StatusShipped))
	assert.Equal(t, StatusShipped, o.Status)

	require.NoError(t, o.UpdateStatus(StatusDelivered))
	assert.Equal(t, StatusDelivered, o.Status)
}

func TestOrderStatusRejectsSkipAndRevert(t *testing.T) {
	o := &Order{ID: "o1", Status: StatusPending}

	// No skipping pending -> delivered.
	err := o.UpdateStatus(StatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, StatusPending, o.Status)

	require.NoError(t, o.UpdateStatus(StatusShipped))

	// No reverting.
	err = o.UpdateStatus(StatusPending)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, StatusShipped, o.Status)

	// Unknown status.
	err = o.UpdateStatus(OrderStatus("cancelled"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

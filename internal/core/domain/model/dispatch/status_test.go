package dispatch_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/dispatch"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  dispatch.Status
		wantErr bool
	}{
		{"pending_is_valid", dispatch.Pending, false},
		{"in_transit_is_valid", dispatch.InTransit, false},
		{"delivered_is_valid", dispatch.Delivered, false},
		{"unknown_is_invalid", dispatch.Unknown, true},
		{"out_of_range_is_invalid", dispatch.Status(99), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", dispatch.Pending.String())
	assert.Equal(t, "in-transit", dispatch.InTransit.String())
	assert.Equal(t, "delivered", dispatch.Delivered.String())
	assert.Equal(t, "unknown", dispatch.Unknown.String())
	assert.Equal(t, "unknown", dispatch.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	status, err := dispatch.StatusFromString("in-transit")
	require.NoError(t, err)
	assert.Equal(t, dispatch.InTransit, status)

	_, err = dispatch.StatusFromString("teleported")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_TransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    dispatch.Status
		to      dispatch.Status
		allowed bool
	}{
		{"pending_to_in_transit", dispatch.Pending, dispatch.InTransit, true},
		{"pending_to_delivered", dispatch.Pending, dispatch.Delivered, true},
		{"in_transit_to_delivered", dispatch.InTransit, dispatch.Delivered, true},
		{"in_transit_to_pending", dispatch.InTransit, dispatch.Pending, false},
		{"delivered_to_pending", dispatch.Delivered, dispatch.Pending, false},
		{"delivered_to_in_transit", dispatch.Delivered, dispatch.InTransit, false},
		{"pending_to_pending", dispatch.Pending, dispatch.Pending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.TransitionTo(tt.to)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, got)
			} else {
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Equal(t, dispatch.Unknown, got)
			}
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, dispatch.Pending.IsTerminal())
	assert.False(t, dispatch.InTransit.IsTerminal())
	assert.True(t, dispatch.Delivered.IsTerminal())
}

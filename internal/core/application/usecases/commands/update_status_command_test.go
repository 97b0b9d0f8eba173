package commands_test

import (
	"testing"
	"time"

	"bloodlink/internal/core/application/usecases/commands"
	"bloodlink/internal/core/domain/model/delivery"
	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateStatusCommand_ValidInput(t *testing.T) {
	deliveryID := kernel.NewUUID()
	droneID := kernel.NewUUID()
	validatedAt := time.Now()

	cmd, err := commands.NewUpdateStatusCommand(
		deliveryID, delivery.AcceptedCenter, &droneID, &validatedAt)
	require.NoError(t, err)
	assert.True(t, cmd.DeliveryID().IsEqual(deliveryID))
	assert.Equal(t, delivery.AcceptedCenter, cmd.Status())
	require.NotNil(t, cmd.DroneID())
	assert.True(t, cmd.DroneID().IsEqual(droneID))
	require.NotNil(t, cmd.ValidatedAt())
	assert.True(t, cmd.ValidatedAt().Equal(validatedAt))
}

func TestNewUpdateStatusCommand_OptionalFieldsNil(t *testing.T) {
	cmd, err := commands.NewUpdateStatusCommand(
		kernel.NewUUID(), delivery.Delivered, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.DroneID())
	assert.Nil(t, cmd.ValidatedAt())
}

func TestNewUpdateStatusCommand_UnknownStatusAccepted(t *testing.T) {
	status, err := delivery.NewStatus("loading_dock")
	require.NoError(t, err)

	cmd, err := commands.NewUpdateStatusCommand(kernel.NewUUID(), status, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, status, cmd.Status())
	assert.False(t, cmd.Status().IsKnown())
}

func TestNewUpdateStatusCommand_EmptyStatus(t *testing.T) {
	_, err := commands.NewUpdateStatusCommand(kernel.NewUUID(), delivery.Status(""), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateStatusCommand_InvalidDroneID(t *testing.T) {
	invalid := kernel.UUID{}
	_, err := commands.NewUpdateStatusCommand(
		kernel.NewUUID(), delivery.Delivered, &invalid, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUpdateStatusCommand_ValidateNotConstructed(t *testing.T) {
	var cmd commands.UpdateStatusCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateStatusCommandIsNotConstructed)
}

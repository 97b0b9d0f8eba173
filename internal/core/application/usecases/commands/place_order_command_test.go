package commands_test

import (
	"testing"

	"bloodlink/internal/core/application/usecases/commands"
	"bloodlink/internal/core/domain/model/blood"
	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	deliveryID := kernel.NewUUID()
	hospitalID := kernel.NewUUID()
	centerID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(
		deliveryID, hospitalID, centerID, blood.ONegative, 3, true, "trauma ward")
	require.NoError(t, err)
	assert.True(t, cmd.DeliveryID().IsEqual(deliveryID))
	assert.True(t, cmd.HospitalID().IsEqual(hospitalID))
	assert.True(t, cmd.CenterID().IsEqual(centerID))
	assert.Equal(t, blood.ONegative, cmd.BloodType())
	assert.Equal(t, 3, cmd.Quantity())
	assert.True(t, cmd.IsUrgent())
	assert.Equal(t, "trauma ward", cmd.Notes())
	require.NoError(t, cmd.Validate())
}

func TestNewPlaceOrderCommand_InvalidDeliveryID(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), blood.ONegative, 1, false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPlaceOrderCommand_UnknownBloodType(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), blood.Type("X+"), 1, false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPlaceOrderCommand_ZeroQuantity(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), blood.ABPositive, 0, false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPlaceOrderCommand_NegativeQuantity(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), blood.ABPositive, -2, false, "")
	require.Error(t, err)
}

func TestPlaceOrderCommand_ValidateNotConstructed(t *testing.T) {
	var cmd commands.PlaceOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}

package commands_test

import (
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmOrderCommand(t *testing.T) {
	t.Run("should create command for staff actor", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewConfirmOrderCommand(orderID, staffActor(t))

		require.NoError(t, err)
		assert.Equal(t, orderID, cmd.OrderID())
		require.NoError(t, cmd.Validate())
	})

	t.Run("should accept admin actor", func(t *testing.T) {
		actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin)
		require.NoError(t, err)

		_, err = commands.NewConfirmOrderCommand(kernel.NewUUID(), actor)
		require.NoError(t, err)
	})

	t.Run("should reject customer actor", func(t *testing.T) {
		_, err := commands.NewConfirmOrderCommand(
			kernel.NewUUID(), customerActor(t, kernel.NewUUID()))

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrActorNotAllowed)
	})

	t.Run("should reject empty order ID", func(t *testing.T) {
		_, err := commands.NewConfirmOrderCommand(kernel.UUID{}, staffActor(t))

		require.Error(t, err)
	})

	t.Run("should reject unconstructed command on validation", func(t *testing.T) {
		var cmd commands.ConfirmOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrConfirmOrderCommandIsNotConstructed)
	})
}

// The remaining lifecycle commands share the staff-only gate.
func TestStaffOnlyCommands_RejectCustomerActor(t *testing.T) {
	customer := customerActor(t, kernel.NewUUID())
	id := kernel.NewUUID()

	t.Run("send", func(t *testing.T) {
		_, err := commands.NewSendOrderCommand(id, customer)
		assert.ErrorIs(t, err, commands.ErrActorNotAllowed)
	})

	t.Run("create invoice", func(t *testing.T) {
		_, err := commands.NewCreateInvoiceCommand(id, customer, "card")
		assert.ErrorIs(t, err, commands.ErrActorNotAllowed)
	})

	t.Run("pickup", func(t *testing.T) {
		_, err := commands.NewPickupOrderCommand(id, customer)
		assert.ErrorIs(t, err, commands.ErrActorNotAllowed)
	})

	t.Run("return", func(t *testing.T) {
		_, err := commands.NewReturnOrderCommand(id, customer)
		assert.ErrorIs(t, err, commands.ErrActorNotAllowed)
	})

	t.Run("void invoice", func(t *testing.T) {
		_, err := commands.NewVoidInvoiceCommand(id, customer)
		assert.ErrorIs(t, err, commands.ErrActorNotAllowed)
	})
}

func TestPayOrderCommand_AllowsCustomerActor(t *testing.T) {
	// Ownership is checked against the loaded order in the handler, not here.
	cmd, err := commands.NewPayOrderCommand(
		kernel.NewUUID(), customerActor(t, kernel.NewUUID()), "card")

	require.NoError(t, err)
	assert.Equal(t, "card", cmd.Method())
	require.NoError(t, cmd.Validate())
}

package commands_test

import (
	"testing"

	"fastfoodie/internal/core/application/usecases/commands"
	"fastfoodie/internal/core/domain/model/order"
	"fastfoodie/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_Valid(t *testing.T) {
	cmd, err := commands.NewChangeOrderStatusCommand(10, order.Preparing)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(10), cmd.OrderID())
	assert.Equal(t, order.Preparing, cmd.Status())
}

func TestNewChangeOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(0, order.Preparing)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewChangeOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(10, order.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewChangeOrderStatusCommand(10, order.Status(42))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangeOrderStatusCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.ChangeOrderStatusCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
}

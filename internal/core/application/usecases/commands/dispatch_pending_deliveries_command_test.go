package commands_test

import (
	"testing"

	"fastfoodie/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDispatchPendingDeliveriesCommand_Valid(t *testing.T) {
	cmd, err := commands.NewDispatchPendingDeliveriesCommand()
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
}

func TestDispatchPendingDeliveriesCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.DispatchPendingDeliveriesCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDispatchPendingDeliveriesCommandIsNotConstructed)
}

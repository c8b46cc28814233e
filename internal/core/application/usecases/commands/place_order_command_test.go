package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/application/usecases/commands"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	submission := testSubmission()

	cmd, err := commands.NewPlaceOrderCommand(submission)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, submission, cmd.UnvalidatedOrder())
}

func TestPlaceOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.PlaceOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}

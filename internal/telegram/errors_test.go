package telegram

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gotd/td/tgerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grouper/internal/enroll/ports"
)

func TestWrapRPC(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, wrapRPC(nil))
	})

	t.Run("plain error passes through", func(t *testing.T) {
		err := errors.New("socket closed")
		assert.Equal(t, err, wrapRPC(err))
	})

	t.Run("rpc error carries type", func(t *testing.T) {
		err := wrapRPC(&tgerr.Error{
			Code:    403,
			Type:    "USER_PRIVACY_RESTRICTED",
			Message: "USER_PRIVACY_RESTRICTED",
		})

		op, ok := ports.AsOp(err)
		require.True(t, ok)
		assert.Equal(t, "USER_PRIVACY_RESTRICTED", op.Kind)
		assert.Zero(t, op.Wait)
	})

	t.Run("wrapped rpc error still converts", func(t *testing.T) {
		rpc := &tgerr.Error{Code: 400, Type: "CHANNEL_PRIVATE", Message: "CHANNEL_PRIVATE"}
		err := wrapRPC(fmt.Errorf("invite to channel: %w", rpc))

		op, ok := ports.AsOp(err)
		require.True(t, ok)
		assert.Equal(t, "CHANNEL_PRIVATE", op.Kind)
	})

	t.Run("flood wait carries duration", func(t *testing.T) {
		err := wrapRPC(&tgerr.Error{
			Code:     420,
			Type:     "FLOOD_WAIT",
			Argument: 42,
			Message:  "FLOOD_WAIT_42",
		})

		op, ok := ports.AsOp(err)
		require.True(t, ok)
		assert.Equal(t, "FLOOD_WAIT", op.Kind)
		assert.Equal(t, 42*time.Second, op.Wait)
	})
}

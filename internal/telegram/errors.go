package telegram

import (
	"github.com/gotd/td/tgerr"

	"grouper/internal/enroll/ports"
)

// wrapRPC converts an MTProto RPC error into a ports.OpError carrying the
// error type and any flood-wait duration. Non-RPC errors pass through
// unchanged.
func wrapRPC(err error) error {
	if err == nil {
		return nil
	}
	rpc, ok := tgerr.As(err)
	if !ok {
		return err
	}
	op := &ports.OpError{Kind: rpc.Type, Err: err}
	if wait, floodOK := tgerr.AsFloodWait(err); floodOK {
		op.Wait = wait
	}
	return op
}

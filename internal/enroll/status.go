package enroll

import (
	"errors"
	"fmt"

	"grouper/internal/enroll/ports"
	"grouper/internal/journal"
	"grouper/pkg/platform/sentinel"
)

// Platform error kinds the classifier maps to journal statuses. These are
// the RPC error identifiers surfaced by the telegram adapter.
const (
	KindAlreadyParticipant = "USER_ALREADY_PARTICIPANT"
	KindPrivacyRestricted  = "USER_PRIVACY_RESTRICTED"
	KindAdminRequired      = "CHAT_ADMIN_REQUIRED"
	KindChannelPrivate     = "CHANNEL_PRIVATE"
	KindInviteExpired      = "INVITE_HASH_EXPIRED"
	KindPeerFlood          = "PEER_FLOOD"
	KindFloodWait          = "FLOOD_WAIT"
	KindWriteForbidden     = "CHAT_WRITE_FORBIDDEN"
)

// addStatuses is the single mapping from platform error kind to add status.
// Kinds missing here fall through to the error_{kind} form.
var addStatuses = map[string]string{
	KindAlreadyParticipant: journal.StatusAlreadyMember,
	KindPrivacyRestricted:  journal.StatusBlockedByPrivacy,
	KindAdminRequired:      journal.StatusNotAdmin,
	KindChannelPrivate:     journal.StatusGroupInaccessible,
	KindInviteExpired:      journal.StatusInviteExpired,
	KindPeerFlood:          journal.StatusPeerFlood,
}

// dmStatuses is the equivalent mapping for the fallback DM.
var dmStatuses = map[string]string{
	KindWriteForbidden:    journal.DMStatusForbidden,
	KindPrivacyRestricted: journal.DMStatusPrivacyBlocked,
	KindPeerFlood:         journal.DMStatusPeerFlood,
}

// classifyAdd turns an add-attempt error into its journal status.
func classifyAdd(err error) string {
	switch {
	case err == nil:
		return journal.StatusAdded
	case errors.Is(err, sentinel.ErrUnsupported):
		return journal.StatusUnsupportedGroup
	}
	if op, ok := ports.AsOp(err); ok {
		if status, ok := addStatuses[op.Kind]; ok {
			return status
		}
		if op.Kind == KindFloodWait {
			return fmt.Sprintf("rate_limited_wait_%ds", int(op.Wait.Seconds()))
		}
		return "error_" + op.Kind
	}
	return "error_internal"
}

// classifyUnexpected encodes failures outside the add and DM tables, such
// as contact-import errors.
func classifyUnexpected(err error) string {
	if op, ok := ports.AsOp(err); ok {
		return "error_" + op.Kind
	}
	return "error_internal"
}

// classifyDM turns a fallback-DM error into its journal status.
func classifyDM(err error) string {
	if err == nil {
		return journal.DMStatusSent
	}
	if op, ok := ports.AsOp(err); ok {
		if status, ok := dmStatuses[op.Kind]; ok {
			return status
		}
		if op.Kind == KindFloodWait {
			return fmt.Sprintf("dm_rate_limited_wait_%ds", int(op.Wait.Seconds()))
		}
		return "dm_error_" + op.Kind
	}
	return "dm_error_internal"
}

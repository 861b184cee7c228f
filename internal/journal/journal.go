package journal

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Status values recorded for the add attempt. The rate-limited status embeds
// the mandated wait and is produced by the classifier, not listed here.
const (
	StatusAdded             = "added"
	StatusAlreadyMember     = "already_member"
	StatusNotOnPlatform     = "not_on_telegram_or_privacy_hidden"
	StatusBlockedByPrivacy  = "blocked_by_privacy"
	StatusNotAdmin          = "not_admin_or_no_add_permission"
	StatusGroupInaccessible = "group_private_or_inaccessible"
	StatusInviteExpired     = "invite_hash_expired"
	StatusPeerFlood         = "peer_flood_stop_and_wait"
	StatusUnsupportedGroup  = "unsupported_group_type"
)

// DMStatus values recorded for the fallback direct message.
const (
	DMStatusSent           = "dm_sent"
	DMStatusForbidden      = "dm_forbidden"
	DMStatusPrivacyBlocked = "dm_privacy_blocked"
	DMStatusPeerFlood      = "dm_peer_flood_stop_and_wait"
)

// Record is the append-only outcome row produced for each phone number a run
// processes. Exactly one record exists per input contact per run.
type Record struct {
	// RunID groups the records of a single enrollment pass.
	RunID     uuid.UUID
	Timestamp time.Time
	Phone     string
	// UserID is the discovered account identifier, empty when the phone
	// never resolved to an account.
	UserID   string
	Username string
	// Status is the add-attempt outcome.
	Status string
	// DMStatus is the fallback message outcome. Empty when no DM was
	// attempted.
	DMStatus string
	// Note carries free-form failure detail for unclassified errors.
	Note string
}

// Store persists records as they are produced. Implementations must append,
// never rewrite: a crash mid-run leaves a truncated journal, not a corrupted
// one.
type Store interface {
	Append(ctx context.Context, rec Record) error
}

// Fanout appends each record to every sink in order and stops at the first
// failure, so a record can never be missing from the primary sink while
// present downstream.
type Fanout []Store

// Append implements Store.
func (f Fanout) Append(ctx context.Context, rec Record) error {
	for _, s := range f {
		if err := s.Append(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Summary aggregates a run for the closing report.
type Summary struct {
	RunID     uuid.UUID
	Processed int
	Added     int
	DMsSent   int
}

// Count folds one record into the summary.
func (s *Summary) Count(rec Record) {
	s.Processed++
	if rec.Status == StatusAdded {
		s.Added++
	}
	if rec.DMStatus == DMStatusSent {
		s.DMsSent++
	}
}

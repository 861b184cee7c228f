package sentinel

import "errors"

// Sentinel errors for platform facts. The Telegram adapter and the journal
// stores return these (optionally wrapped) so the enrollment core can
// translate them into outcome statuses instead of run failures.
//
// These represent factual states about remote resources, not validation
// failures:
// - ErrNotFound: the platform has no entity for the lookup (a phone without a
//   discoverable account, an invite the caller has not joined)
// - ErrUnsupported: the resolved group kind does not support the requested
//   operation
var (
	ErrNotFound    = errors.New("not found")
	ErrUnsupported = errors.New("unsupported")
)

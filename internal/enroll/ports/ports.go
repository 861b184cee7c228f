package ports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grouper/internal/enroll/models"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

// Directory resolves operator group references against the platform.
type Directory interface {
	// LookupNumeric resolves a bare numeric group identifier.
	LookupNumeric(ctx context.Context, id int64) (*models.ResolvedGroup, error)
	// ResolveHandle resolves a public @handle or t.me path component.
	ResolveHandle(ctx context.Context, handle string) (*models.ResolvedGroup, error)
	// InspectChannel fetches full channel metadata, proving the session can
	// administer the channel. Only meaningful for the channel kind.
	InspectChannel(ctx context.Context, group *models.ResolvedGroup) error
}

// Inviter manages invite hashes and links.
type Inviter interface {
	// CheckInvite inspects an invite hash without joining. It returns the
	// group when the session already participates and sentinel.ErrNotFound
	// when the invite is valid but unjoined.
	CheckInvite(ctx context.Context, hash string) (*models.ResolvedGroup, error)
	// JoinByInvite joins the group behind an invite hash.
	JoinByInvite(ctx context.Context, hash string) (*models.ResolvedGroup, error)
	// ExportInvite mints a fresh primary invite link. Requires admin rights
	// on the group.
	ExportInvite(ctx context.Context, group *models.ResolvedGroup) (string, error)
}

// Contacts imports phone numbers to discover platform accounts.
type Contacts interface {
	// ImportContact returns the account behind phone. It returns
	// sentinel.ErrNotFound when the number is not on the platform or its
	// owner hides discovery by phone.
	ImportContact(ctx context.Context, phone string) (*models.Account, error)
}

// Membership probes and changes group membership.
type Membership interface {
	// IsMember reports whether acct already participates in group. Only
	// authoritative for channels; basic chats report false and let the add
	// attempt answer.
	IsMember(ctx context.Context, group *models.ResolvedGroup, acct *models.Account) (bool, error)
	// Add enrolls acct into group using the kind-appropriate operation. It
	// returns an error wrapping sentinel.ErrUnsupported for kinds it cannot
	// add to.
	Add(ctx context.Context, group *models.ResolvedGroup, acct *models.Account) error
}

// Messenger delivers the fallback direct message.
type Messenger interface {
	SendDirect(ctx context.Context, acct *models.Account, text string) error
}

// Platform bundles every port surface an enrollment run needs. The telegram
// adapter implements all of them over one authenticated session.
type Platform interface {
	Directory
	Inviter
	Contacts
	Membership
	Messenger
}

// OpError is a classified platform failure. Kind carries the platform error
// identifier (for example USER_PRIVACY_RESTRICTED); Wait carries the
// mandated pause for rate-limit kinds, zero otherwise.
type OpError struct {
	Kind string
	Wait time.Duration
	Err  error
}

func (e *OpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind
}

func (e *OpError) Unwrap() error { return e.Err }

// AsOp extracts an OpError from err's chain.
func AsOp(err error) (*OpError, bool) {
	var op *OpError
	if errors.As(err, &op) {
		return op, true
	}
	return nil, false
}

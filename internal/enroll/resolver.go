package enroll

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"grouper/internal/enroll/models"
	"grouper/internal/enroll/ports"
)

// linkHosts are the short-link domains whose paths may carry an invite hash
// or a public handle.
var linkHosts = map[string]struct{}{
	"t.me":            {},
	"telegram.me":     {},
	"www.t.me":        {},
	"www.telegram.me": {},
}

var numericRef = regexp.MustCompile(`^-?\d+$`)

// Resolver turns a free-form operator group reference into a ResolvedGroup.
// Accepted shapes: numeric identifier (including the -100 channel prefix),
// t.me invite or handle URL, @handle, bare handle.
type Resolver struct {
	directory ports.Directory
	inviter   ports.Inviter
}

func NewResolver(directory ports.Directory, inviter ports.Inviter) *Resolver {
	return &Resolver{directory: directory, inviter: inviter}
}

// Resolve tries the reference shapes in order. A failed shape falls through
// to the next; only exhausting every shape fails, and the returned error
// names the original reference with the final cause.
func (r *Resolver) Resolve(ctx context.Context, ref string) (*models.ResolvedGroup, error) {
	s := strings.TrimSpace(ref)

	if numericRef.MatchString(s) {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			if group, err := r.directory.LookupNumeric(ctx, id); err == nil {
				return group, nil
			}
		}
	}

	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		if group := r.resolveURL(ctx, s); group != nil {
			return group, nil
		}
	}

	group, err := r.directory.ResolveHandle(ctx, strings.TrimPrefix(s, "@"))
	if err != nil {
		return nil, fmt.Errorf("resolve group %q: %w", ref, err)
	}
	return group, nil
}

// resolveURL handles t.me-style links. Invite hashes are checked (the
// already-joined case answers without joining) and then joined; a non-invite
// path resolves as a public handle. Any failure returns nil so the caller
// falls back to raw handle resolution.
func (r *Resolver) resolveURL(ctx context.Context, ref string) *models.ResolvedGroup {
	u, err := url.Parse(ref)
	if err != nil {
		return nil
	}
	if _, ok := linkHosts[u.Host]; !ok {
		return nil
	}
	path := strings.TrimPrefix(u.Path, "/")

	if hash := inviteHash(u, path); hash != "" {
		if group, err := r.inviter.CheckInvite(ctx, hash); err == nil && group != nil {
			return group
		}
		if group, err := r.inviter.JoinByInvite(ctx, hash); err == nil && group != nil {
			return group
		}
	}

	if path != "" {
		if group, err := r.directory.ResolveHandle(ctx, path); err == nil {
			return group
		}
	}
	return nil
}

// inviteHash extracts the invite token from the ?invite= query, the +HASH
// path, or the joinchat/HASH path. Empty means the URL is not an invite.
func inviteHash(u *url.URL, path string) string {
	if v := u.Query().Get("invite"); v != "" {
		return v
	}
	switch {
	case strings.HasPrefix(path, "+"):
		return strings.TrimPrefix(path, "+")
	case strings.HasPrefix(path, "joinchat/"):
		return strings.TrimPrefix(path, "joinchat/")
	}
	return ""
}

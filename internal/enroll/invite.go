package enroll

import (
	"context"

	"grouper/internal/enroll/models"
	"grouper/internal/enroll/ports"
)

// EnsureInviteLink guarantees a link for fallback DMs. An operator-supplied
// link wins verbatim; otherwise a fresh one is exported, which needs admin
// rights on the group. Export failure degrades to an empty link rather than
// failing the run: the DM text simply loses its link.
func EnsureInviteLink(ctx context.Context, inviter ports.Inviter, group *models.ResolvedGroup, supplied string) string {
	if supplied != "" {
		return supplied
	}
	link, err := inviter.ExportInvite(ctx, group)
	if err != nil {
		return ""
	}
	return link
}

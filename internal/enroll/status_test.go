package enroll

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"grouper/internal/enroll/ports"
	"grouper/internal/journal"
	"grouper/pkg/platform/sentinel"
)

func TestClassifyAdd(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error is added",
			err:      nil,
			expected: journal.StatusAdded,
		},
		{
			name:     "unsupported group kind",
			err:      fmt.Errorf("add member: %w", sentinel.ErrUnsupported),
			expected: journal.StatusUnsupportedGroup,
		},
		{
			name:     "already participant",
			err:      &ports.OpError{Kind: KindAlreadyParticipant},
			expected: journal.StatusAlreadyMember,
		},
		{
			name:     "privacy restricted",
			err:      &ports.OpError{Kind: KindPrivacyRestricted},
			expected: journal.StatusBlockedByPrivacy,
		},
		{
			name:     "admin required",
			err:      &ports.OpError{Kind: KindAdminRequired},
			expected: journal.StatusNotAdmin,
		},
		{
			name:     "channel private",
			err:      &ports.OpError{Kind: KindChannelPrivate},
			expected: journal.StatusGroupInaccessible,
		},
		{
			name:     "invite hash expired",
			err:      &ports.OpError{Kind: KindInviteExpired},
			expected: journal.StatusInviteExpired,
		},
		{
			name:     "peer flood",
			err:      &ports.OpError{Kind: KindPeerFlood},
			expected: journal.StatusPeerFlood,
		},
		{
			name:     "flood wait embeds seconds",
			err:      &ports.OpError{Kind: KindFloodWait, Wait: 42 * time.Second},
			expected: "rate_limited_wait_42s",
		},
		{
			name:     "flood wait without hint",
			err:      &ports.OpError{Kind: KindFloodWait},
			expected: "rate_limited_wait_0s",
		},
		{
			name:     "wrapped platform error still classified",
			err:      fmt.Errorf("invite to channel: %w", &ports.OpError{Kind: KindPrivacyRestricted}),
			expected: journal.StatusBlockedByPrivacy,
		},
		{
			name:     "unmapped platform kind",
			err:      &ports.OpError{Kind: "USER_BOT"},
			expected: "error_USER_BOT",
		},
		{
			name:     "non-platform error",
			err:      errors.New("boom"),
			expected: "error_internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyAdd(tt.err))
		})
	}
}

func TestClassifyDM(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error is sent",
			err:      nil,
			expected: journal.DMStatusSent,
		},
		{
			name:     "write forbidden",
			err:      &ports.OpError{Kind: KindWriteForbidden},
			expected: journal.DMStatusForbidden,
		},
		{
			name:     "privacy restricted",
			err:      &ports.OpError{Kind: KindPrivacyRestricted},
			expected: journal.DMStatusPrivacyBlocked,
		},
		{
			name:     "peer flood",
			err:      &ports.OpError{Kind: KindPeerFlood},
			expected: journal.DMStatusPeerFlood,
		},
		{
			name:     "flood wait embeds seconds",
			err:      &ports.OpError{Kind: KindFloodWait, Wait: 7 * time.Second},
			expected: "dm_rate_limited_wait_7s",
		},
		{
			name:     "unmapped platform kind",
			err:      &ports.OpError{Kind: "USER_IS_BLOCKED"},
			expected: "dm_error_USER_IS_BLOCKED",
		},
		{
			name:     "non-platform error",
			err:      errors.New("boom"),
			expected: "dm_error_internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyDM(tt.err))
		})
	}
}

func TestClassifyUnexpected(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "platform kind carried through",
			err:      &ports.OpError{Kind: KindFloodWait, Wait: 30 * time.Second},
			expected: "error_FLOOD_WAIT",
		},
		{
			name:     "plain error",
			err:      errors.New("network down"),
			expected: "error_internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyUnexpected(tt.err))
		})
	}
}

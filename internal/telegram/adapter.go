// Package telegram adapts the MTProto API to the enrollment platform ports.
package telegram

import (
	"context"
	"fmt"

	"github.com/gotd/td/telegram/message"
	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"

	"grouper/internal/enroll/models"
	"grouper/internal/enroll/ports"
	"grouper/pkg/platform/sentinel"
)

// Bot API style channel IDs carry a -100 prefix on top of the bare ID.
const botAPIChannelOffset = 1000000000000

// Adapter implements the enrollment platform ports on top of a signed-in
// MTProto client.
type Adapter struct {
	api    *tg.Client
	sender *message.Sender
}

var _ ports.Platform = (*Adapter)(nil)

// NewAdapter wraps the raw API client.
func NewAdapter(api *tg.Client) *Adapter {
	return &Adapter{
		api:    api,
		sender: message.NewSender(api),
	}
}

// ImportContact registers the phone as an address book contact and returns
// the account it resolves to. Phones with no account, or accounts whose
// privacy settings hide them from contact import, yield sentinel.ErrNotFound.
func (a *Adapter) ImportContact(ctx context.Context, phone string) (*models.Account, error) {
	res, err := a.api.ContactsImportContacts(ctx, []tg.InputPhoneContact{{
		ClientID: 0,
		Phone:    phone,
	}})
	if err != nil {
		return nil, wrapRPC(err)
	}
	for _, u := range res.Users {
		if user, ok := u.(*tg.User); ok {
			return accountFromUser(user), nil
		}
	}
	return nil, fmt.Errorf("phone %s: %w", phone, sentinel.ErrNotFound)
}

// LookupNumeric resolves a numeric group reference. Negative IDs follow the
// Bot API convention: -100 prefixed values are channels, other negatives are
// basic chats. Bare positive IDs are tried as a channel first, then a chat.
func (a *Adapter) LookupNumeric(ctx context.Context, id int64) (*models.ResolvedGroup, error) {
	switch {
	case id <= -botAPIChannelOffset:
		return a.lookupChannel(ctx, -id-botAPIChannelOffset)
	case id < 0:
		return a.lookupChat(ctx, -id)
	default:
		group, err := a.lookupChannel(ctx, id)
		if err == nil {
			return group, nil
		}
		return a.lookupChat(ctx, id)
	}
}

func (a *Adapter) lookupChannel(ctx context.Context, id int64) (*models.ResolvedGroup, error) {
	res, err := a.api.ChannelsGetChannels(ctx, []tg.InputChannelClass{
		&tg.InputChannel{ChannelID: id},
	})
	if err != nil {
		return nil, wrapRPC(err)
	}
	for _, c := range res.GetChats() {
		if ch, ok := c.(*tg.Channel); ok && ch.ID == id {
			return groupFromChannel(ch), nil
		}
	}
	return nil, fmt.Errorf("channel %d: %w", id, sentinel.ErrNotFound)
}

func (a *Adapter) lookupChat(ctx context.Context, id int64) (*models.ResolvedGroup, error) {
	res, err := a.api.MessagesGetChats(ctx, []int64{id})
	if err != nil {
		return nil, wrapRPC(err)
	}
	for _, c := range res.GetChats() {
		if chat, ok := c.(*tg.Chat); ok && chat.ID == id {
			return groupFromChat(chat), nil
		}
	}
	return nil, fmt.Errorf("chat %d: %w", id, sentinel.ErrNotFound)
}

// ResolveHandle resolves a public @username to the group it names.
func (a *Adapter) ResolveHandle(ctx context.Context, handle string) (*models.ResolvedGroup, error) {
	res, err := a.api.ContactsResolveUsername(ctx, &tg.ContactsResolveUsernameRequest{
		Username: handle,
	})
	if err != nil {
		return nil, wrapRPC(err)
	}
	if group, ok := groupFromChats(res.Chats); ok {
		return group, nil
	}
	return nil, fmt.Errorf("handle %s does not name a group", handle)
}

// InspectChannel fetches the full channel, verifying the signed-in account
// can see it at all. Runs once per run before any contact is touched.
func (a *Adapter) InspectChannel(ctx context.Context, group *models.ResolvedGroup) error {
	_, err := a.api.ChannelsGetFullChannel(ctx, &tg.InputChannel{
		ChannelID:  group.ID,
		AccessHash: group.AccessHash,
	})
	return wrapRPC(err)
}

// CheckInvite previews an invite hash. It yields the group only when the
// account is already inside (or peeking); a joinable-but-not-joined invite
// reports sentinel.ErrNotFound so the caller can decide to join.
func (a *Adapter) CheckInvite(ctx context.Context, hash string) (*models.ResolvedGroup, error) {
	res, err := a.api.MessagesCheckChatInvite(ctx, hash)
	if err != nil {
		return nil, wrapRPC(err)
	}
	switch invite := res.(type) {
	case *tg.ChatInviteAlready:
		if group, ok := groupFromChats([]tg.ChatClass{invite.Chat}); ok {
			return group, nil
		}
	case *tg.ChatInvitePeek:
		if group, ok := groupFromChats([]tg.ChatClass{invite.Chat}); ok {
			return group, nil
		}
	}
	return nil, fmt.Errorf("invite %s: %w", hash, sentinel.ErrNotFound)
}

// JoinByInvite joins the chat behind an invite hash and returns it.
func (a *Adapter) JoinByInvite(ctx context.Context, hash string) (*models.ResolvedGroup, error) {
	updates, err := a.api.MessagesImportChatInvite(ctx, hash)
	if err != nil {
		return nil, wrapRPC(err)
	}
	var chats []tg.ChatClass
	switch u := updates.(type) {
	case *tg.Updates:
		chats = u.Chats
	case *tg.UpdatesCombined:
		chats = u.Chats
	}
	if group, ok := groupFromChats(chats); ok {
		return group, nil
	}
	return nil, fmt.Errorf("invite %s: joined but no chat returned", hash)
}

// ExportInvite mints a fresh primary invite link for the group.
func (a *Adapter) ExportInvite(ctx context.Context, group *models.ResolvedGroup) (string, error) {
	res, err := a.api.MessagesExportChatInvite(ctx, &tg.MessagesExportChatInviteRequest{
		Peer: inputPeer(group),
	})
	if err != nil {
		return "", wrapRPC(err)
	}
	if invite, ok := res.(*tg.ChatInviteExported); ok {
		return invite.Link, nil
	}
	return "", fmt.Errorf("unexpected invite type %T", res)
}

// IsMember probes channel membership. Basic chats have no cheap probe, so
// they report not-a-member and the add attempt surfaces
// USER_ALREADY_PARTICIPANT instead.
func (a *Adapter) IsMember(ctx context.Context, group *models.ResolvedGroup, acct *models.Account) (bool, error) {
	if group.Kind != models.GroupKindChannel {
		return false, nil
	}
	_, err := a.api.ChannelsGetParticipant(ctx, &tg.ChannelsGetParticipantRequest{
		Channel:     &tg.InputChannel{ChannelID: group.ID, AccessHash: group.AccessHash},
		Participant: &tg.InputPeerUser{UserID: acct.ID, AccessHash: acct.AccessHash},
	})
	if err != nil {
		if tgerr.Is(err, "USER_NOT_PARTICIPANT") {
			return false, nil
		}
		return false, wrapRPC(err)
	}
	return true, nil
}

// Add puts the account into the group.
func (a *Adapter) Add(ctx context.Context, group *models.ResolvedGroup, acct *models.Account) error {
	user := &tg.InputUser{UserID: acct.ID, AccessHash: acct.AccessHash}

	switch group.Kind {
	case models.GroupKindChannel:
		_, err := a.api.ChannelsInviteToChannel(ctx, &tg.ChannelsInviteToChannelRequest{
			Channel: &tg.InputChannel{ChannelID: group.ID, AccessHash: group.AccessHash},
			Users:   []tg.InputUserClass{user},
		})
		return wrapRPC(err)
	case models.GroupKindChat:
		_, err := a.api.MessagesAddChatUser(ctx, &tg.MessagesAddChatUserRequest{
			ChatID:   group.ID,
			UserID:   user,
			FwdLimit: 0,
		})
		return wrapRPC(err)
	default:
		return fmt.Errorf("group kind %s: %w", group.Kind, sentinel.ErrUnsupported)
	}
}

// SendDirect sends a one-to-one text message to the account.
func (a *Adapter) SendDirect(ctx context.Context, acct *models.Account, text string) error {
	peer := &tg.InputPeerUser{UserID: acct.ID, AccessHash: acct.AccessHash}
	_, err := a.sender.To(peer).Text(ctx, text)
	return wrapRPC(err)
}

func accountFromUser(u *tg.User) *models.Account {
	acct := &models.Account{ID: u.ID}
	if hash, ok := u.GetAccessHash(); ok {
		acct.AccessHash = hash
	}
	if first, ok := u.GetFirstName(); ok {
		acct.FirstName = first
	}
	if username, ok := u.GetUsername(); ok {
		acct.Username = username
	}
	return acct
}

func groupFromChannel(ch *tg.Channel) *models.ResolvedGroup {
	group := &models.ResolvedGroup{
		Kind:  models.GroupKindChannel,
		ID:    ch.ID,
		Title: ch.Title,
	}
	if hash, ok := ch.GetAccessHash(); ok {
		group.AccessHash = hash
	}
	return group
}

func groupFromChat(c *tg.Chat) *models.ResolvedGroup {
	return &models.ResolvedGroup{
		Kind:  models.GroupKindChat,
		ID:    c.ID,
		Title: c.Title,
	}
}

func groupFromChats(chats []tg.ChatClass) (*models.ResolvedGroup, bool) {
	for _, c := range chats {
		switch chat := c.(type) {
		case *tg.Channel:
			return groupFromChannel(chat), true
		case *tg.Chat:
			return groupFromChat(chat), true
		}
	}
	return nil, false
}

func inputPeer(group *models.ResolvedGroup) tg.InputPeerClass {
	if group.Kind == models.GroupKindChannel {
		return &tg.InputPeerChannel{ChannelID: group.ID, AccessHash: group.AccessHash}
	}
	return &tg.InputPeerChat{ChatID: group.ID}
}

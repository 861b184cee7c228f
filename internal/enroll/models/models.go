package models

// GroupKind discriminates which platform operations are legal for a resolved
// group. Channels (supergroups and broadcast channels) are invited to via
// channel operations and support direct participant lookups; basic chats
// only learn membership from the add attempt itself.
type GroupKind string

const (
	GroupKindChannel GroupKind = "channel"
	GroupKindChat    GroupKind = "chat"
)

// ResolvedGroup is the stable group handle produced once per run by the
// resolver. Read-only for the lifetime of the run.
type ResolvedGroup struct {
	Kind GroupKind
	ID   int64
	// AccessHash authorizes channel operations; basic chats are addressed
	// by bare ID.
	AccessHash int64
	Title      string
}

// Account is the platform account discovered for a phone number. Looked up
// fresh per contact, never cached across contacts.
type Account struct {
	ID         int64
	AccessHash int64
	FirstName  string
	Username   string
}

// Package remote is the bridge to the hosted document store: the
// singleton state document, the per-user profile collection with its
// live-update feed, and the append-only contact inbox.
package remote

import (
	"context"

	"HireHub-backend/internal/model"
)

// Backend is what the store and the auth bridge need from the remote
// document store. A nil Backend everywhere means "no remote configured,
// local-cache-only".
type Backend interface {
	// LoadState reads the singleton state document. ok is false when the
	// document does not exist yet.
	LoadState(ctx context.Context) (snap *model.StateSnapshot, ok bool, err error)
	// InitState creates the state document from a bootstrap snapshot.
	InitState(ctx context.Context, snap model.StateSnapshot) error
	// SaveState merge-writes the update into the state document: columns
	// absent from the update are left untouched server-side.
	SaveState(ctx context.Context, update model.StateUpdate) error

	// PutUser merge-writes the user's own document and notifies watchers.
	PutUser(ctx context.Context, user model.User) error
	// DeleteUser removes the user's document and notifies watchers.
	DeleteUser(ctx context.Context, id string) error
	// Users returns the whole users collection.
	Users(ctx context.Context) ([]model.User, error)
	// WatchUsers registers a live feed over the users collection. The
	// handler fires once immediately with the current list and again
	// after every observed change. The returned func tears the
	// subscription down.
	WatchUsers(ctx context.Context, handler func([]model.User)) (func(), error)

	// Credential operations used by the auth bridge.
	SetPassword(ctx context.Context, id, bcryptHash string) error
	UserByEmail(ctx context.Context, email string) (model.User, string, error)
	UserByID(ctx context.Context, id string) (model.User, error)

	// Contact inbox. Visitor inquiries never touch the local cache.
	AddContactMessage(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error)
	ContactMessages(ctx context.Context) ([]model.ContactMessage, error)
	MarkContactMessageRead(ctx context.Context, id uint) error
	ReplyContactMessage(ctx context.Context, id uint, reply string) error
}

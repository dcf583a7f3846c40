package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"HireHub-backend/internal/database"
	"HireHub-backend/internal/model"
)

// ErrUserNotFound is returned when a user document does not exist.
var ErrUserNotFound = errors.New("user not found")

// DocStore implements Backend on the gorm document schema. User-change
// events fan out to in-process watchers directly and, when a Redis
// client is attached, across instances via pub/sub.
type DocStore struct {
	db  *database.DBinstanceStruct
	rdb *redis.Client

	mu       sync.Mutex
	watchers map[int]func([]model.User)
	nextID   int

	stopSub context.CancelFunc
}

// NewDocStore wraps the database instance. rdb may be nil for
// single-instance deployments; watchers then only see local writes.
func NewDocStore(db *database.DBinstanceStruct, rdb *redis.Client) *DocStore {
	s := &DocStore{
		db:       db,
		rdb:      rdb,
		watchers: map[int]func([]model.User){},
	}
	if rdb != nil {
		ctx, cancel := context.WithCancel(context.Background())
		s.stopSub = cancel
		go s.subscribeUserEvents(ctx)
	}
	return s
}

// Close stops the pub/sub subscriber. In-flight notifications may still
// deliver after Close returns.
func (s *DocStore) Close() {
	if s.stopSub != nil {
		s.stopSub()
	}
}

/* ---------------- state document ---------------- */

// LoadState reads the singleton state document.
func (s *DocStore) LoadState(ctx context.Context) (*model.StateSnapshot, bool, error) {
	var row model.StateDocument
	err := s.db.WithContext(ctx).Where("key = ?", model.StateDocumentKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	snap := model.StateSnapshot{Theme: row.Theme}
	for _, col := range []struct {
		raw  []byte
		into interface{}
	}{
		{row.Jobs, &snap.Jobs},
		{row.Apps, &snap.Applications},
		{row.Threads, &snap.Threads},
		{row.Announces, &snap.Announcements},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.into); err != nil {
			return nil, false, fmt.Errorf("corrupt state document: %w", err)
		}
	}
	return &snap, true, nil
}

// InitState creates the state document from the bootstrap snapshot.
func (s *DocStore) InitState(ctx context.Context, snap model.StateSnapshot) error {
	row := model.StateDocument{Key: model.StateDocumentKey, Theme: snap.Theme}
	var err error
	if row.Jobs, err = json.Marshal(snap.Jobs); err != nil {
		return err
	}
	if row.Apps, err = json.Marshal(snap.Applications); err != nil {
		return err
	}
	if row.Threads, err = json.Marshal(snap.Threads); err != nil {
		return err
	}
	if row.Announces, err = json.Marshal(snap.Announcements); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(&row).Error
}

// SaveState merge-writes only the columns present in the update. A
// missing document is initialized from the update instead.
func (s *DocStore) SaveState(ctx context.Context, update model.StateUpdate) error {
	cols := map[string]interface{}{}
	if update.Jobs != nil {
		raw, err := json.Marshal(update.Jobs)
		if err != nil {
			return err
		}
		cols["jobs"] = raw
	}
	if update.Applications != nil {
		raw, err := json.Marshal(update.Applications)
		if err != nil {
			return err
		}
		cols["applications"] = raw
	}
	if update.Threads != nil {
		raw, err := json.Marshal(update.Threads)
		if err != nil {
			return err
		}
		cols["threads"] = raw
	}
	if update.Announcements != nil {
		raw, err := json.Marshal(update.Announcements)
		if err != nil {
			return err
		}
		cols["announcements"] = raw
	}
	if update.Theme != "" {
		cols["theme"] = update.Theme
	}
	if len(cols) == 0 {
		return nil
	}

	res := s.db.WithContext(ctx).Model(&model.StateDocument{}).
		Where("key = ?", model.StateDocumentKey).
		Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var snap model.StateSnapshot
		snap.Apply(update)
		return s.InitState(ctx, snap)
	}
	return nil
}

/* ---------------- users collection ---------------- */

// PutUser merge-writes the user document: fields present on the incoming
// record replace their stored counterparts, everything else is kept.
func (s *DocStore) PutUser(ctx context.Context, user model.User) error {
	incoming, err := json.Marshal(user)
	if err != nil {
		return err
	}

	var row model.UserDocument
	err = s.db.WithContext(ctx).Where("id = ?", user.ID).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = model.UserDocument{ID: user.ID, Doc: incoming}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		merged, err := mergeJSON(row.Doc, incoming)
		if err != nil {
			return err
		}
		row.Doc = merged
		if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
			return err
		}
	}

	s.notifyUserChange(ctx, user.ID)
	return nil
}

// DeleteUser removes the user's document.
func (s *DocStore) DeleteUser(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&model.UserDocument{}, "id = ?", id).Error; err != nil {
		return err
	}
	s.notifyUserChange(ctx, id)
	return nil
}

// Users returns every profile in the users collection.
func (s *DocStore) Users(ctx context.Context) ([]model.User, error) {
	var rows []model.UserDocument
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		var u model.User
		if err := json.Unmarshal(row.Doc, &u); err != nil {
			log.Printf("Skipping corrupt user document %s: %v", row.ID, err)
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

// SetPassword stores the bcrypt hash for an email/password account.
func (s *DocStore) SetPassword(ctx context.Context, id, bcryptHash string) error {
	return s.db.WithContext(ctx).Model(&model.UserDocument{}).
		Where("id = ?", id).
		Update("password_hash", bcryptHash).Error
}

// UserByEmail finds an account by email and returns its stored password
// hash alongside the profile.
func (s *DocStore) UserByEmail(ctx context.Context, email string) (model.User, string, error) {
	users, err := s.usersWithHash(ctx)
	if err != nil {
		return model.User{}, "", err
	}
	for _, u := range users {
		if u.user.Email == email {
			return u.user, u.hash, nil
		}
	}
	return model.User{}, "", ErrUserNotFound
}

// UserByID reads one profile document.
func (s *DocStore) UserByID(ctx context.Context, id string) (model.User, error) {
	var row model.UserDocument
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	var u model.User
	if err := json.Unmarshal(row.Doc, &u); err != nil {
		return model.User{}, fmt.Errorf("corrupt user document %s: %w", id, err)
	}
	return u, nil
}

type userWithHash struct {
	user model.User
	hash string
}

func (s *DocStore) usersWithHash(ctx context.Context) ([]userWithHash, error) {
	var rows []model.UserDocument
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]userWithHash, 0, len(rows))
	for _, row := range rows {
		var u model.User
		if err := json.Unmarshal(row.Doc, &u); err != nil {
			continue
		}
		out = append(out, userWithHash{user: u, hash: row.PasswordHash})
	}
	return out, nil
}

/* ---------------- contact inbox ---------------- */

// AddContactMessage appends a visitor inquiry and returns it with the
// server-stamped id and timestamp.
func (s *DocStore) AddContactMessage(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error) {
	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return model.ContactMessage{}, err
	}
	// Reload to pick up the database-side timestamp default.
	if err := s.db.WithContext(ctx).First(&msg, msg.ID).Error; err != nil {
		return model.ContactMessage{}, err
	}
	return msg, nil
}

// ContactMessages returns the whole inbox, newest first.
func (s *DocStore) ContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	var msgs []model.ContactMessage
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&msgs).Error
	return msgs, err
}

// MarkContactMessageRead flips the read flag.
func (s *DocStore) MarkContactMessageRead(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Model(&model.ContactMessage{}).
		Where("id = ?", id).
		Update("read", true).Error
}

// ReplyContactMessage records the admin reply and its timestamp.
func (s *DocStore) ReplyContactMessage(ctx context.Context, id uint, reply string) error {
	return s.db.WithContext(ctx).Model(&model.ContactMessage{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"read":         true,
			"reply":        reply,
			"replied_date": gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}

/* ---------------- helpers ---------------- */

// mergeJSON shallow-merges the incoming object's fields over the
// existing document, the same non-overwriting merge the hosted store
// offered.
func mergeJSON(existing, incoming []byte) ([]byte, error) {
	base := map[string]interface{}{}
	if len(existing) > 0 {
		if err := json.Unmarshal(existing, &base); err != nil {
			return nil, err
		}
	}
	over := map[string]interface{}{}
	if err := json.Unmarshal(incoming, &over); err != nil {
		return nil, err
	}
	for k, v := range over {
		base[k] = v
	}
	return json.Marshal(base)
}

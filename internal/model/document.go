package model

import (
	"time"

	"gorm.io/datatypes"
)

// StateDocumentKey is the fixed key of the singleton state row every
// client session shares.
const StateDocumentKey = "app/state"

// StateDocument is the canonical remote copy of the store collections,
// one JSON column per collection. Merge writes only touch the columns
// present in the update, so concurrent sessions saving different
// collections don't clobber each other.
type StateDocument struct {
	Key       string         `gorm:"primaryKey;type:text" json:"key"`
	Jobs      datatypes.JSON `gorm:"type:json" json:"jobs"`
	Apps      datatypes.JSON `gorm:"column:applications;type:json" json:"applications"`
	Threads   datatypes.JSON `gorm:"type:json" json:"threads"`
	Announces datatypes.JSON `gorm:"column:announcements;type:json" json:"announcements"`
	Theme     string         `gorm:"type:text" json:"theme"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// UserDocument is one user profile row in the users collection, stored
// as a whole JSON document keyed by the auth subject id. Users never
// travel through the state document; the live feed watches this table.
type UserDocument struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	Doc       datatypes.JSON `gorm:"type:json" json:"doc"`
	UpdatedAt time.Time      `json:"updatedAt"`

	// Bcrypt hash for email/password accounts. Kept out of the profile
	// document so it never reaches a client.
	PasswordHash string `gorm:"type:text" json:"-"`
}

// MigrateAble is array of model instance, use for migrating database
var MigrateAble []interface{}

func init() {
	MigrateAble = append(
		MigrateAble,
		&StateDocument{},
		&UserDocument{},
		&ContactMessage{},
	)
}

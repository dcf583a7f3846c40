package model

import "time"

// ContactMessage is an unauthenticated visitor inquiry. It lives only in
// the remote store as an append-only row: no local-cache fallback and no
// seed data. CreatedAt is stamped server-side.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	Name      string    `gorm:"type:text" json:"name"`
	Email     string    `gorm:"type:text" json:"email"`
	Subject   string    `gorm:"type:text" json:"subject"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"createdAt"`

	Read        bool       `gorm:"default:false" json:"read"`
	Reply       string     `gorm:"type:text" json:"reply,omitempty"`
	RepliedDate *time.Time `gorm:"type:timestamp" json:"repliedDate,omitempty"`
}

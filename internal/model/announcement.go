package model

import "time"

// Announcement types.
const (
	AnnouncementUrgent = "urgent"
	AnnouncementNormal = "normal"
	AnnouncementOther  = "other"
)

// Announcement audiences. Empty audience means everyone.
const (
	AudienceStudents  = "students"
	AudienceEmployers = "employers"
	AudienceAll       = "all"
)

// Announcement is a broadcast record posted by an admin. Visibility is
// computed at read time, never stored.
type Announcement struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Type           string     `json:"type"`
	Description    string     `json:"description"`
	PostedDate     time.Time  `json:"postedDate"`
	PostedBy       string     `json:"postedBy"`
	Image          string     `json:"image,omitempty"`
	ExpiryDate     *time.Time `json:"expiryDate,omitempty"`
	TargetAudience string     `json:"targetAudience,omitempty"`
	Attachment     string     `json:"attachment,omitempty"`
}

// VisibleTo reports whether a viewer with the given role should see the
// announcement: audience must match (or be "all"/unset, admins see
// everything targeted) and the expiry, if set, must not have passed.
func (a Announcement) VisibleTo(role string, now time.Time) bool {
	if a.ExpiryDate != nil && a.ExpiryDate.Before(now) {
		return false
	}
	if a.TargetAudience == "" || a.TargetAudience == AudienceAll {
		return true
	}
	switch role {
	case RoleStudent:
		return a.TargetAudience == AudienceStudents
	case RoleEmployer:
		return a.TargetAudience == AudienceEmployers
	case RoleAdmin:
		// Admins map to the "all" audience, same as the original UI.
		return false
	}
	return false
}

package store

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"HireHub-backend/internal/model"
)

// CreateAnnouncement stamps the poster and timestamp and prepends the
// announcement.
func (s *Store) CreateAnnouncement(poster model.User, a model.Announcement) model.Announcement {
	a.ID = uuid.NewString()
	a.PostedDate = time.Now()
	a.PostedBy = poster.Name
	if a.PostedBy == "" {
		a.PostedBy = "Admin"
	}

	s.mu.Lock()
	updated := append([]model.Announcement{a}, s.state.Announcements...)
	s.state.Announcements = updated
	s.mu.Unlock()

	s.persist(model.StateUpdate{Announcements: updated})
	return a
}

// UpdateAnnouncement replaces the announcement with the same id.
func (s *Store) UpdateAnnouncement(a model.Announcement) {
	s.mu.Lock()
	updated := make([]model.Announcement, len(s.state.Announcements))
	for i, existing := range s.state.Announcements {
		if existing.ID == a.ID {
			updated[i] = a
		} else {
			updated[i] = existing
		}
	}
	s.state.Announcements = updated
	s.mu.Unlock()

	s.persist(model.StateUpdate{Announcements: updated})
}

// DeleteAnnouncement removes one announcement.
func (s *Store) DeleteAnnouncement(announcementID string) {
	s.mu.Lock()
	updated := make([]model.Announcement, 0, len(s.state.Announcements))
	for _, a := range s.state.Announcements {
		if a.ID != announcementID {
			updated = append(updated, a)
		}
	}
	s.state.Announcements = updated
	s.mu.Unlock()

	s.persist(model.StateUpdate{Announcements: updated})
}

// AnnouncementsForRole computes what a viewer with the given role sees:
// audience must match or be "all", expired announcements are hidden,
// newest first. Nothing is stored; visibility is always recomputed.
func (s *Store) AnnouncementsForRole(role string) []model.Announcement {
	now := time.Now()

	s.mu.RLock()
	visible := make([]model.Announcement, 0, len(s.state.Announcements))
	for _, a := range s.state.Announcements {
		if a.VisibleTo(role, now) {
			visible = append(visible, a)
		}
	}
	s.mu.RUnlock()

	sort.Slice(visible, func(i, j int) bool {
		return visible[i].PostedDate.After(visible[j].PostedDate)
	})
	return visible
}

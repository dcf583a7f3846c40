package model

// StateSnapshot is the in-memory shape of the persisted collections: what
// the local cache stores and what the remote state document deserializes
// into. Users are absent on purpose, they live in their own collection.
type StateSnapshot struct {
	Jobs          []Job          `json:"jobs"`
	Applications  []Application  `json:"applications"`
	Threads       []Thread       `json:"threads"`
	Announcements []Announcement `json:"announcements"`
	Theme         string         `json:"theme,omitempty"`
}

// StateUpdate is a partial write against the snapshot. A nil slice or
// empty theme means "leave that collection untouched"; an empty non-nil
// slice overwrites with empty.
type StateUpdate struct {
	Jobs          []Job          `json:"jobs,omitempty"`
	Applications  []Application  `json:"applications,omitempty"`
	Threads       []Thread       `json:"threads,omitempty"`
	Announcements []Announcement `json:"announcements,omitempty"`
	Theme         string         `json:"theme,omitempty"`
}

// Apply overlays the update onto the snapshot, shallow-merge style.
func (s *StateSnapshot) Apply(u StateUpdate) {
	if u.Jobs != nil {
		s.Jobs = u.Jobs
	}
	if u.Applications != nil {
		s.Applications = u.Applications
	}
	if u.Threads != nil {
		s.Threads = u.Threads
	}
	if u.Announcements != nil {
		s.Announcements = u.Announcements
	}
	if u.Theme != "" {
		s.Theme = u.Theme
	}
}

package store

import "HireHub-backend/internal/model"

// Users returns a copy of the merged user list.
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...)
}

// UserByID looks a user up in the merged list.
func (s *Store) UserByID(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// UserByEmail looks a user up by email in the merged list.
func (s *Store) UserByEmail(email string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return model.User{}, false
}

// Students returns every student account.
func (s *Store) Students() []model.User {
	return s.usersByRole(model.RoleStudent)
}

// Employers returns every employer account, approved or not.
func (s *Store) Employers() []model.User {
	return s.usersByRole(model.RoleEmployer)
}

func (s *Store) usersByRole(role string) []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// Jobs returns a copy of the job list, newest first.
func (s *Store) Jobs() []model.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Job(nil), s.state.Jobs...)
}

// JobByID finds one job.
func (s *Store) JobByID(id string) (model.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, j := range s.state.Jobs {
		if j.ID == id {
			return j, true
		}
	}
	return model.Job{}, false
}

// JobsForEmployer returns the jobs posted by one employer.
func (s *Store) JobsForEmployer(employerID string) []model.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Job, 0, len(s.state.Jobs))
	for _, j := range s.state.Jobs {
		if j.EmployerID == employerID {
			out = append(out, j)
		}
	}
	return out
}

// Applications returns a copy of the application list.
func (s *Store) Applications() []model.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Application(nil), s.state.Applications...)
}

// ApplicationsForJob returns the applications received by one job.
func (s *Store) ApplicationsForJob(jobID string) []model.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Application, 0, len(s.state.Applications))
	for _, a := range s.state.Applications {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out
}

// ApplicationsForStudent returns the applications one student submitted.
func (s *Store) ApplicationsForStudent(studentID string) []model.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Application, 0, len(s.state.Applications))
	for _, a := range s.state.Applications {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out
}

// HasApplied reports whether the user already applied to the job.
func (s *Store) HasApplied(userID, jobID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.state.Applications {
		if a.JobID == jobID && a.StudentID == userID {
			return true
		}
	}
	return false
}

// Threads returns a copy of every thread regardless of kind.
func (s *Store) Threads() []model.Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Thread(nil), s.state.Threads...)
}

// ThreadByID finds one thread.
func (s *Store) ThreadByID(id string) (model.Thread, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.state.Threads {
		if t.ID == id {
			return t, true
		}
	}
	return model.Thread{}, false
}

// ThreadsForAdmin returns the admin team's inbox: every thread employers
// sent to the admins.
func (s *Store) ThreadsForAdmin() []model.Thread {
	return s.threadsWhere(func(t model.Thread) bool {
		return t.Kind == model.ThreadAdminInbound
	})
}

// ThreadsForEmployer returns one employer's inbox of admin decisions.
func (s *Store) ThreadsForEmployer(employerID string) []model.Thread {
	return s.threadsWhere(func(t model.Thread) bool {
		return t.Kind == model.ThreadEmployerInbound && t.EmployerID == employerID
	})
}

// PeerThreadsForEmployer returns the employer side of the peer-to-peer
// inbox.
func (s *Store) PeerThreadsForEmployer(employerID string) []model.Thread {
	return s.threadsWhere(func(t model.Thread) bool {
		return t.Kind == model.ThreadPeerToPeer && t.EmployerID == employerID
	})
}

// ThreadsForStudent returns the student side of the peer-to-peer inbox.
func (s *Store) ThreadsForStudent(studentID string) []model.Thread {
	return s.threadsWhere(func(t model.Thread) bool {
		return t.Kind == model.ThreadPeerToPeer && t.StudentID == studentID
	})
}

func (s *Store) threadsWhere(match func(model.Thread) bool) []model.Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Thread, 0, len(s.state.Threads))
	for _, t := range s.state.Threads {
		if match(t) {
			out = append(out, t)
		}
	}
	return out
}

// UnreadCount counts the unread threads in a slice, typically one of the
// inbox views above.
func UnreadCount(threads []model.Thread) int {
	n := 0
	for _, t := range threads {
		if !t.Read {
			n++
		}
	}
	return n
}

// Announcements returns a copy of every announcement, unfiltered. Use
// AnnouncementsForRole for viewer-facing lists.
func (s *Store) Announcements() []model.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Announcement(nil), s.state.Announcements...)
}

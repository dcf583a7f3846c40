package store

import (
	"context"
	"log"

	"HireHub-backend/internal/model"
)

// UpdateUser saves a profile edit. With a backend configured the write
// goes to the user's own remote document and the live feed brings the
// authoritative copy back; without one the in-memory list is updated
// directly. Users never travel through the state document.
func (s *Store) UpdateUser(user model.User) {
	if s.backend != nil {
		go func() {
			if err := s.backend.PutUser(context.Background(), user); err != nil {
				log.Printf("Failed to update user %s in remote store: %v", user.ID, err)
			}
		}()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == user.ID {
			s.users[i] = user
		}
	}
	if s.currentUser != nil && s.currentUser.ID == user.ID {
		u := user
		s.currentUser = &u
	}
}

// DeleteUser removes the account everywhere and cascades: jobs owned by
// the deleted id go away, and so do applications whose applicant
// matches the deleted id.
func (s *Store) DeleteUser(userID string) {
	if s.backend != nil {
		go func() {
			if err := s.backend.DeleteUser(context.Background(), userID); err != nil {
				log.Printf("Failed to delete user %s in remote store: %v", userID, err)
			}
		}()
	}

	s.mu.Lock()
	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		if u.ID != userID {
			users = append(users, u)
		}
	}
	jobs := make([]model.Job, 0, len(s.state.Jobs))
	for _, j := range s.state.Jobs {
		if j.EmployerID != userID {
			jobs = append(jobs, j)
		}
	}
	apps := make([]model.Application, 0, len(s.state.Applications))
	for _, a := range s.state.Applications {
		if a.StudentID != userID {
			apps = append(apps, a)
		}
	}
	s.users = users
	s.state.Jobs = jobs
	s.state.Applications = apps
	s.mu.Unlock()

	s.persist(model.StateUpdate{Jobs: jobs, Applications: apps})
}

// ApproveEmployer sets the approval flag on the employer's full record
// and merge-writes it to the user's remote document so the approval
// survives the next sign-in.
func (s *Store) ApproveEmployer(employerID string) {
	s.mu.Lock()
	var approved *model.User
	for i, u := range s.users {
		if u.ID == employerID && u.Employer != nil {
			profile := *u.Employer
			profile.IsApproved = true
			u.Employer = &profile
			s.users[i] = u
			cp := u
			approved = &cp
		}
	}
	s.mu.Unlock()

	if approved == nil || s.backend == nil {
		return
	}
	user := *approved
	go func() {
		if err := s.backend.PutUser(context.Background(), user); err != nil {
			log.Printf("Failed to persist employer approval for %s: %v", user.ID, err)
		}
	}()
}

// RejectEmployer drops the employer from the session and cascades to
// their jobs and to applications matching the rejected id. Remotely the
// record is kept with the approval flag cleared, exactly as the
// original did, so the account can be reviewed again.
func (s *Store) RejectEmployer(employerID string) {
	s.mu.Lock()
	var rejected *model.User
	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		if u.ID == employerID {
			if u.Employer != nil {
				profile := *u.Employer
				profile.IsApproved = false
				u.Employer = &profile
			}
			cp := u
			rejected = &cp
			continue
		}
		users = append(users, u)
	}
	jobs := make([]model.Job, 0, len(s.state.Jobs))
	for _, j := range s.state.Jobs {
		if j.EmployerID != employerID {
			jobs = append(jobs, j)
		}
	}
	apps := make([]model.Application, 0, len(s.state.Applications))
	for _, a := range s.state.Applications {
		if a.StudentID != employerID {
			apps = append(apps, a)
		}
	}
	s.users = users
	s.state.Jobs = jobs
	s.state.Applications = apps
	s.mu.Unlock()

	s.persist(model.StateUpdate{Jobs: jobs, Applications: apps})

	if rejected == nil || s.backend == nil {
		return
	}
	user := *rejected
	go func() {
		if err := s.backend.PutUser(context.Background(), user); err != nil {
			log.Printf("Failed to persist employer rejection for %s: %v", user.ID, err)
		}
	}()
}

package store

import (
	"time"

	"github.com/google/uuid"

	"HireHub-backend/internal/model"
)

// ApplyForJob files an application for the acting user. Students and
// admins may apply; anyone else, and anyone who already has an
// application for the job, gets a false return with state untouched.
// On success the job's applicant count increments in the same update.
// The duplicate pre-check and the append happen under one lock, so two
// racing calls inside this process cannot both pass it.
func (s *Store) ApplyForJob(applicant model.User, jobID, coverLetter string) bool {
	if applicant.Role != model.RoleStudent && applicant.Role != model.RoleAdmin {
		return false
	}

	s.mu.Lock()
	for _, a := range s.state.Applications {
		if a.JobID == jobID && a.StudentID == applicant.ID {
			s.mu.Unlock()
			return false
		}
	}

	app := model.Application{
		ID:           uuid.NewString(),
		JobID:        jobID,
		StudentID:    applicant.ID,
		StudentName:  applicant.Name,
		StudentEmail: applicant.Email,
		Status:       model.ApplicationStatusPending,
		AppliedDate:  time.Now(),
		CoverLetter:  coverLetter,
	}

	apps := append(append([]model.Application(nil), s.state.Applications...), app)
	jobs := make([]model.Job, len(s.state.Jobs))
	for i, j := range s.state.Jobs {
		if j.ID == jobID {
			j.ApplicantCount++
		}
		jobs[i] = j
	}
	s.state.Applications = apps
	s.state.Jobs = jobs
	s.mu.Unlock()

	s.persist(model.StateUpdate{Applications: apps, Jobs: jobs})
	return true
}

// UpdateApplicationStatus overwrites the status field. There is no
// transition graph; reviewers may set any status from any other.
func (s *Store) UpdateApplicationStatus(applicationID, status string) {
	s.mu.Lock()
	apps := make([]model.Application, len(s.state.Applications))
	for i, a := range s.state.Applications {
		if a.ID == applicationID {
			a.Status = status
		}
		apps[i] = a
	}
	s.state.Applications = apps
	s.mu.Unlock()

	s.persist(model.StateUpdate{Applications: apps})
}

package store

import (
	"time"

	"github.com/google/uuid"

	"HireHub-backend/internal/model"
)

// PostJob creates a posting for the given employer and prepends it to
// the jobs list. Id, posted date, and applicant count are stamped here.
func (s *Store) PostJob(employer model.User, info model.EditableJobInfo) model.Job {
	job := model.Job{
		ID:           uuid.NewString(),
		EmployerID:   employer.ID,
		CompanyName:  employer.CompanyName(),
		Title:        info.Title,
		Description:  info.Description,
		Location:     info.Location,
		Type:         info.Type,
		Salary:       info.Salary,
		Requirements: info.Requirements,
		Category:     info.Category,
		PostedDate:   time.Now(),
		Deadline:     info.Deadline,
		Status:       info.Status,
	}
	if employer.Employer != nil {
		job.CompanyLogo = employer.Employer.CompanyLogo
	}
	if job.Status == "" {
		job.Status = model.JobStatusActive
	}

	s.mu.Lock()
	updated := append([]model.Job{job}, s.state.Jobs...)
	s.state.Jobs = updated
	s.mu.Unlock()

	s.persist(model.StateUpdate{Jobs: updated})
	return job
}

// UpdateJob replaces the job with the same id. Unknown ids are a no-op,
// same as the original edit flow.
func (s *Store) UpdateJob(job model.Job) {
	s.mu.Lock()
	updated := make([]model.Job, len(s.state.Jobs))
	for i, j := range s.state.Jobs {
		if j.ID == job.ID {
			updated[i] = job
		} else {
			updated[i] = j
		}
	}
	s.state.Jobs = updated
	s.mu.Unlock()

	s.persist(model.StateUpdate{Jobs: updated})
}

// DeleteJob removes the posting and cascades to every application that
// references it. Both slices persist in the same update.
func (s *Store) DeleteJob(jobID string) {
	s.mu.Lock()
	jobs := make([]model.Job, 0, len(s.state.Jobs))
	for _, j := range s.state.Jobs {
		if j.ID != jobID {
			jobs = append(jobs, j)
		}
	}
	apps := make([]model.Application, 0, len(s.state.Applications))
	for _, a := range s.state.Applications {
		if a.JobID != jobID {
			apps = append(apps, a)
		}
	}
	s.state.Jobs = jobs
	s.state.Applications = apps
	s.mu.Unlock()

	s.persist(model.StateUpdate{Jobs: jobs, Applications: apps})
}

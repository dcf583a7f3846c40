package model

import "time"

// Application review statuses. No transition order is enforced: reviewers
// may move an application from any status to any other.
const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusReviewed    = "reviewed"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusAccepted    = "accepted"
	ApplicationStatusRejected    = "rejected"
)

// Application joins one job and one applicant. At most one application
// may exist per (JobID, StudentID) pair; the store enforces that with a
// pre-check at apply time. Applicant name and email are denormalized so
// reviewer pages don't need a user lookup.
type Application struct {
	ID           string    `json:"id"`
	JobID        string    `json:"jobId"`
	StudentID    string    `json:"studentId"`
	StudentName  string    `json:"studentName"`
	StudentEmail string    `json:"studentEmail"`
	Status       string    `json:"status"`
	AppliedDate  time.Time `json:"appliedDate"`
	CoverLetter  string    `json:"coverLetter"`
}

package model

import "time"

// Employment types a job post can be filed under.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeInternship = "Internship"
	JobTypeContract   = "Contract"
	JobTypeRemote     = "Remote"
)

// Job post lifecycle status.
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

// Job is a posting owned by exactly one employer. ApplicantCount is
// denormalized and must be kept in sync by the store when applications
// are created or cascade-deleted.
type Job struct {
	ID          string `json:"id"`
	EmployerID  string `json:"employerId"`
	CompanyName string `json:"companyName"`
	CompanyLogo string `json:"companyLogo,omitempty"`

	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Salary       string    `json:"salary"`
	Requirements []string  `json:"requirements"`
	Category     string    `json:"category"`
	PostedDate   time.Time `json:"postedDate"`
	Deadline     time.Time `json:"deadline"`

	Status         string `json:"status"`
	ApplicantCount int    `json:"applicantCount"`
}

// EditableJobInfo is the part of a job post the owner may change.
// Ownership and bookkeeping fields are deliberately absent.
type EditableJobInfo struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Salary       string    `json:"salary"`
	Requirements []string  `json:"requirements"`
	Category     string    `json:"category"`
	Deadline     time.Time `json:"deadline"`
	Status       string    `json:"status"`
}

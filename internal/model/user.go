package model

import "time"

// Roles a user account can hold. Role is a plain string on the record,
// matching what the auth token carries.
const (
	RoleStudent  = "student"
	RoleEmployer = "employer"
	RoleAdmin    = "admin"
)

// StudentProfile holds the fields only student accounts carry.
type StudentProfile struct {
	Skills    []string `json:"skills,omitempty"`
	Education string   `json:"education,omitempty"`
	Resume    string   `json:"resume,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Phone     string   `json:"phone,omitempty"`
}

// EmployerProfile holds the fields only employer accounts carry.
// Employers start unapproved and must be approved by an admin.
type EmployerProfile struct {
	CompanyName        string `json:"companyName"`
	CompanyLogo        string `json:"companyLogo,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`
	CompanyWebsite     string `json:"companyWebsite,omitempty"`
	CompanySize        string `json:"companySize,omitempty"`
	Industry           string `json:"industry,omitempty"`
	CompanyLocation    string `json:"companyLocation,omitempty"`
	IsApproved         bool   `json:"isApproved"`
}

// User is the identity record shared by every role. ID mirrors the auth
// provider's subject id. Exactly one of Student/Employer is set for the
// matching role; admins carry neither.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	Student  *StudentProfile  `json:"student,omitempty"`
	Employer *EmployerProfile `json:"employer,omitempty"`
}

// Approved reports whether the account may act on the platform. Students
// and admins are implicitly approved.
func (u User) Approved() bool {
	if u.Role != RoleEmployer {
		return true
	}
	return u.Employer != nil && u.Employer.IsApproved
}

// CompanyName returns the employer's company name, falling back to the
// display name for accounts without one.
func (u User) CompanyName() string {
	if u.Employer != nil && u.Employer.CompanyName != "" {
		return u.Employer.CompanyName
	}
	return u.Name
}

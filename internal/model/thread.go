package model

import "time"

// Thread kinds. The original product kept three structurally identical
// inboxes; they collapse onto one record discriminated by Kind.
const (
	// ThreadAdminInbound is an employer writing to the admin team.
	ThreadAdminInbound = "admin-inbound"
	// ThreadEmployerInbound is the admin team writing to one employer,
	// carrying an accept/reject decision.
	ThreadEmployerInbound = "employer-inbound"
	// ThreadPeerToPeer is the bidirectional employer <-> student inbox.
	ThreadPeerToPeer = "peer-to-peer"
)

// Decision states for employer-inbound threads.
const (
	DecisionPending  = "pending"
	DecisionAccepted = "accepted"
	DecisionRejected = "rejected"
)

// Reply is one threaded response. SenderRole tags who wrote it.
type Reply struct {
	ID         string    `json:"id"`
	ThreadID   string    `json:"threadId"`
	SenderID   string    `json:"senderId"`
	SenderRole string    `json:"senderRole"`
	Body       string    `json:"body"`
	SentDate   time.Time `json:"sentDate"`
}

// Thread is one inbox conversation. Which participant fields are set
// depends on Kind: admin-inbound carries the employer sender,
// employer-inbound additionally carries the admin author and a Decision,
// peer-to-peer carries both employer and student plus the SenderRole of
// whoever opened the thread.
type Thread struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`

	EmployerID    string `json:"employerId,omitempty"`
	EmployerName  string `json:"employerName,omitempty"`
	EmployerEmail string `json:"employerEmail,omitempty"`
	StudentID     string `json:"studentId,omitempty"`
	AdminID       string `json:"adminId,omitempty"`
	AdminName     string `json:"adminName,omitempty"`
	SenderRole    string `json:"senderRole,omitempty"`

	Subject  string    `json:"subject"`
	Body     string    `json:"body"`
	SentDate time.Time `json:"sentDate"`
	Read     bool      `json:"read"`
	Decision string    `json:"decision,omitempty"`
	Replies  []Reply   `json:"replies,omitempty"`
}

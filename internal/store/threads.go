package store

import (
	"time"

	"github.com/google/uuid"

	"HireHub-backend/internal/model"
)

// SendAdminThread opens an admin-inbound thread: an employer writing to
// the admin team. Non-employers get a false return.
func (s *Store) SendAdminThread(from model.User, subject, body string) bool {
	if from.Role != model.RoleEmployer {
		return false
	}

	t := model.Thread{
		ID:            uuid.NewString(),
		Kind:          model.ThreadAdminInbound,
		EmployerID:    from.ID,
		EmployerName:  from.Name,
		EmployerEmail: from.Email,
		Subject:       subject,
		Body:          body,
		SentDate:      time.Now(),
	}
	s.appendThread(t)
	return true
}

// SendEmployerThread opens an employer-inbound thread: the admin team
// writing to one employer, with the decision starting out pending.
// Fails when the sender is not an admin or the employer is unknown.
func (s *Store) SendEmployerThread(admin model.User, employerID, subject, body string) bool {
	if admin.Role != model.RoleAdmin {
		return false
	}

	employer, ok := s.UserByID(employerID)
	if !ok {
		return false
	}

	t := model.Thread{
		ID:            uuid.NewString(),
		Kind:          model.ThreadEmployerInbound,
		AdminID:       admin.ID,
		AdminName:     admin.Name,
		EmployerID:    employerID,
		EmployerName:  employer.Name,
		EmployerEmail: employer.Email,
		Subject:       subject,
		Body:          body,
		SentDate:      time.Now(),
		Decision:      model.DecisionPending,
	}
	s.appendThread(t)
	return true
}

// SendPeerThread opens a peer-to-peer thread between an employer and a
// student; either side may start it, and the counterpart id names the
// other party. Wrong roles get a false return.
func (s *Store) SendPeerThread(from model.User, counterpartID, subject, body string) bool {
	t := model.Thread{
		ID:         uuid.NewString(),
		Kind:       model.ThreadPeerToPeer,
		SenderRole: from.Role,
		Subject:    subject,
		Body:       body,
		SentDate:   time.Now(),
	}

	switch from.Role {
	case model.RoleEmployer:
		t.EmployerID = from.ID
		t.EmployerName = from.CompanyName()
		t.StudentID = counterpartID
	case model.RoleStudent:
		employer, ok := s.UserByID(counterpartID)
		if !ok {
			return false
		}
		t.EmployerID = counterpartID
		t.EmployerName = employer.CompanyName()
		t.StudentID = from.ID
	default:
		return false
	}

	s.appendThread(t)
	return true
}

func (s *Store) appendThread(t model.Thread) {
	s.mu.Lock()
	threads := append(append([]model.Thread(nil), s.state.Threads...), t)
	s.state.Threads = threads
	s.mu.Unlock()

	s.persist(model.StateUpdate{Threads: threads})
}

// MarkThreadRead sets the read flag. Marking an already-read thread is
// a no-op that leaves the reply list untouched.
func (s *Store) MarkThreadRead(threadID string) {
	s.mutateThread(threadID, func(t *model.Thread) {
		t.Read = true
	})
}

// ReplyToThread appends a threaded reply from the sender and marks the
// conversation read.
func (s *Store) ReplyToThread(threadID string, sender model.User, body string) {
	s.mutateThread(threadID, func(t *model.Thread) {
		t.Replies = append(t.Replies, model.Reply{
			ID:         uuid.NewString(),
			ThreadID:   threadID,
			SenderID:   sender.ID,
			SenderRole: sender.Role,
			Body:       body,
			SentDate:   time.Now(),
		})
		t.Read = true
	})
}

// DecideThread records the employer's accept/reject decision on an
// employer-inbound thread. The two decisions are mutually exclusive.
func (s *Store) DecideThread(threadID string, accepted bool) {
	s.mutateThread(threadID, func(t *model.Thread) {
		if t.Kind != model.ThreadEmployerInbound {
			return
		}
		if accepted {
			t.Decision = model.DecisionAccepted
		} else {
			t.Decision = model.DecisionRejected
		}
	})
}

// DeleteThread removes one conversation.
func (s *Store) DeleteThread(threadID string) {
	s.mu.Lock()
	threads := make([]model.Thread, 0, len(s.state.Threads))
	for _, t := range s.state.Threads {
		if t.ID != threadID {
			threads = append(threads, t)
		}
	}
	s.state.Threads = threads
	s.mu.Unlock()

	s.persist(model.StateUpdate{Threads: threads})
}

func (s *Store) mutateThread(threadID string, mutate func(*model.Thread)) {
	s.mu.Lock()
	threads := make([]model.Thread, len(s.state.Threads))
	for i, t := range s.state.Threads {
		if t.ID == threadID {
			t.Replies = append([]model.Reply(nil), t.Replies...)
			mutate(&t)
		}
		threads[i] = t
	}
	s.state.Threads = threads
	s.mu.Unlock()

	s.persist(model.StateUpdate{Threads: threads})
}

package store

import (
	"context"
	"log"

	"HireHub-backend/internal/model"
)

// SendContactMessage forwards a visitor inquiry to the remote contact
// inbox. Inquiries never enter the in-memory snapshot or the local
// cache; without a remote backend they are dropped.
func (s *Store) SendContactMessage(msg model.ContactMessage) bool {
	if s.backend == nil {
		return false
	}
	go func() {
		if _, err := s.backend.AddContactMessage(context.Background(), msg); err != nil {
			log.Printf("Failed to store contact message: %v", err)
		}
	}()
	return true
}

// ContactMessages lists the remote contact inbox, newest first.
func (s *Store) ContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	if s.backend == nil {
		return []model.ContactMessage{}, nil
	}
	return s.backend.ContactMessages(ctx)
}

// MarkContactMessageRead flags one inquiry as read.
func (s *Store) MarkContactMessageRead(ctx context.Context, id uint) error {
	if s.backend == nil {
		return nil
	}
	return s.backend.MarkContactMessageRead(ctx, id)
}

// ReplyContactMessage records the admin's reply text on one inquiry.
func (s *Store) ReplyContactMessage(ctx context.Context, id uint, reply string) error {
	if s.backend == nil {
		return nil
	}
	return s.backend.ReplyContactMessage(ctx, id, reply)
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"oilsaas/internal/model"
)

// ContactInput carries a contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Company string
	Subject string
	Message string
}

// ContactService persists contact form submissions. No notification,
// deduplication or rate limiting happens here.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (string, error)
}

type contactService struct {
	store DocumentStore
	log   zerolog.Logger
}

// NewContactService creates a new contact service.
func NewContactService(store DocumentStore, log zerolog.Logger) ContactService {
	return &contactService{store: store, log: log}
}

// Submit stores the message with status pinned to "new" and returns the
// generated id.
func (s *contactService) Submit(ctx context.Context, in ContactInput) (string, error) {
	msg := model.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Company: in.Company,
		Subject: in.Subject,
		Message: in.Message,
		Status:  model.StatusNew,
	}

	id, err := s.store.CreateDocument(ctx, model.CollectionContactMessage, msg)
	if err != nil {
		return "", fmt.Errorf("create contact message: %w", err)
	}

	s.log.Info().Str("id", id).Msg("contact message received")
	return id, nil
}

package messages

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"pet-care-registry/internal/domain/listing"
	"pet-care-registry/internal/validation"

	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	users UserDirectory

	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, users UserDirectory) *Service {
	return &Service{
		repo:  repo,
		users: users,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

type SendInput struct {
	SenderID    string
	RecipientID string
	Content     string
}

func (s *Service) Send(ctx context.Context, in SendInput) (Message, error) {
	senderID := strings.TrimSpace(in.SenderID)
	recipientID := strings.TrimSpace(in.RecipientID)

	if err := validation.Required(
		validation.Field{Name: "senderId", Value: senderID},
		validation.Field{Name: "recipientId", Value: recipientID},
		validation.Field{Name: "content", Value: in.Content},
	); err != nil {
		return Message{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.Exists(ctx, s.users, "sender", senderID); err != nil {
		return Message{}, err
	}
	if err := validation.Exists(ctx, s.users, "recipient", recipientID); err != nil {
		return Message{}, err
	}

	m := Message{
		ID:          s.newID(),
		SenderID:    senderID,
		RecipientID: recipientID,
		// el contenido se guarda sin recortar
		Content:   in.Content,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, m.ID, m); err != nil {
		return Message{}, fmt.Errorf("insert message: %w", err)
	}
	return m, nil
}

func (s *Service) List(ctx context.Context) ([]Message, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return listing.Filter(items, nil, "no messages found")
}

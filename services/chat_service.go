package services

import (
	"context"
	"fmt"

	"campusmatch_server/models"
	"campusmatch_server/utils"

	"github.com/google/uuid"
)

// ChatService owns the per-match chat sessions.
type ChatService struct {
	Store *StoreService
}

// GetSession returns a copy of the session for matchID, or
// ErrSessionNotFound.
func (cs *ChatService) GetSession(matchID string) (models.ChatSession, error) {
	var (
		session models.ChatSession
		found   bool
	)
	cs.Store.view(func(b models.Bundle) {
		s, ok := b.Sessions[matchID]
		if !ok {
			return
		}
		session = s
		session.Messages = append([]models.Message{}, s.Messages...)
		found = true
	})
	if !found {
		return models.ChatSession{}, fmt.Errorf("session '%s': %w", matchID, ErrSessionNotFound)
	}
	return session, nil
}

// AddMessage appends a message to the session for matchID and bumps its
// LastUpdated. Empty text is rejected unless the message is system-generated,
// and an explicit ID that already exists in the session is rejected; a blank
// ID is allocated from the store's monotonic counter. A message from the
// matched candidate also emits a "message" notification.
func (cs *ChatService) AddMessage(ctx context.Context, matchID string, msg models.Message) (models.Message, error) {
	if err := utils.ValidateMessageText(msg.Text, msg.IsSystem); err != nil {
		return models.Message{}, ErrEmptyMessage
	}

	err := cs.Store.update(ctx, "add message", func(b *models.Bundle) error {
		session, ok := b.Sessions[matchID]
		if !ok {
			return fmt.Errorf("session '%s': %w", matchID, ErrSessionNotFound)
		}

		if msg.ID == "" {
			msg.ID = cs.Store.nextMessageID()
		} else {
			for _, existing := range session.Messages {
				if existing.ID == msg.ID {
					return fmt.Errorf("message '%s': %w", msg.ID, ErrDuplicateMessage)
				}
			}
			// Keep the counter ahead of counter-shaped explicit IDs so a
			// later allocation cannot re-issue this one
			cs.Store.absorbMessageID(msg.ID)
		}

		now := cs.Store.Now()
		if msg.Timestamp == 0 {
			msg.Timestamp = now
		}

		session.Messages = append(session.Messages, msg)
		session.LastUpdated = now
		b.Sessions[matchID] = session

		if msg.SenderID == session.UserB && !msg.IsSystem {
			b.Notifications = append([]models.Notification{{
				ID:        uuid.NewString(),
				Title:     "New Message",
				Message:   fmt.Sprintf("%s sent you a message", senderPseudonym(b, session.UserB)),
				Timestamp: now,
				Read:      false,
				Type:      models.NotificationTypeMessage,
			}}, b.Notifications...)
		}
		return nil
	})
	if err != nil && !IsPersistenceError(err) {
		return models.Message{}, err
	}
	return msg, err
}

// senderPseudonym resolves a candidate ID to its display pseudonym via the
// match snapshot, falling back to the raw ID.
func senderPseudonym(b *models.Bundle, candidateID string) string {
	for _, m := range b.Matches {
		if m.MatchID == candidateID {
			return m.Candidate.AnonymousID
		}
	}
	return candidateID
}

// SetRevealed flips the session's reveal flag. The gating decision itself
// (mutual consent and so on) is made by the caller.
func (cs *ChatService) SetRevealed(ctx context.Context, matchID string, revealed bool) error {
	return cs.Store.update(ctx, "set revealed", func(b *models.Bundle) error {
		session, ok := b.Sessions[matchID]
		if !ok {
			return fmt.Errorf("session '%s': %w", matchID, ErrSessionNotFound)
		}
		if session.IsRevealed == revealed {
			return errNoChange
		}
		session.IsRevealed = revealed
		b.Sessions[matchID] = session
		return nil
	})
}

package services

import (
	"context"
	"fmt"

	"campusmatch_server/models"

	"github.com/google/uuid"
)

// MatchService records confirmed matches and the session plus notification
// each one owns.
type MatchService struct {
	Store *StoreService
}

// AddMatch records a match with the candidate, creates its empty chat
// session and emits one "match" notification. Calling it again for the same
// candidate is a no-op, so a candidate ends up with at most one match, one
// session and one match notification. Returns whether a match was created.
func (ms *MatchService) AddMatch(ctx context.Context, candidate models.MatchCandidate, currentUserID string) (bool, error) {
	created := false
	err := ms.Store.update(ctx, "add match", func(b *models.Bundle) error {
		for _, m := range b.Matches {
			if m.MatchID == candidate.ID {
				return errNoChange
			}
		}

		now := ms.Store.Now()
		b.Matches = append(b.Matches, models.Match{
			MatchID:   candidate.ID,
			Candidate: candidate,
			CreatedAt: now,
		})
		b.Sessions[candidate.ID] = models.ChatSession{
			MatchID:     candidate.ID,
			UserA:       currentUserID,
			UserB:       candidate.ID,
			Messages:    []models.Message{},
			LastUpdated: now,
			IsRevealed:  false,
		}
		b.Notifications = append([]models.Notification{{
			ID:        uuid.NewString(),
			Title:     "It's a Match!",
			Message:   fmt.Sprintf("You matched with %s!", candidate.AnonymousID),
			Timestamp: now,
			Read:      false,
			Type:      models.NotificationTypeMatch,
		}}, b.Notifications...)

		created = true
		return nil
	})
	return created, err
}

// RemoveMatch deletes the match and its session together. Past notifications
// stay: they are an event log, not current state. Removing an unknown match
// is a no-op.
func (ms *MatchService) RemoveMatch(ctx context.Context, matchID string) error {
	return ms.Store.update(ctx, "remove match", func(b *models.Bundle) error {
		kept := b.Matches[:0]
		removed := false
		for _, m := range b.Matches {
			if m.MatchID == matchID {
				removed = true
				continue
			}
			kept = append(kept, m)
		}
		if !removed {
			return errNoChange
		}
		b.Matches = kept
		delete(b.Sessions, matchID)
		return nil
	})
}

// GetMatches returns the recorded matches in creation order.
func (ms *MatchService) GetMatches() []models.Match {
	var out []models.Match
	ms.Store.view(func(b models.Bundle) {
		out = append([]models.Match{}, b.Matches...)
	})
	return out
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"campusmatch_server/models"
)

// errNoChange is returned by an update callback when the operation turned out
// to be a no-op; the update is skipped and no save is issued.
var errNoChange = errors.New("no change")

// StoreService owns the in-memory bundle behind the match, chat and
// notification services. Every mutation runs under one critical section that
// covers both the in-memory update and the durable save, so concurrent swipes
// on the same candidate cannot create two sessions.
type StoreService struct {
	Gateway *PersistenceGateway

	// Now supplies timestamps in unix milliseconds. Overridable in tests.
	Now func() int64

	mu     sync.RWMutex
	bundle models.Bundle
	msgSeq int64
}

func NewStoreService(gateway *PersistenceGateway) *StoreService {
	return &StoreService{
		Gateway: gateway,
		Now:     func() int64 { return time.Now().UnixMilli() },
	}
}

// Load pulls the persisted bundle into memory and seeds the message ID
// counter from it. A warning error from the gateway (corrupt blob) is
// returned for logging, but the store is usable regardless.
func (s *StoreService) Load(ctx context.Context) error {
	bundle, err := s.Gateway.Load(ctx)

	s.mu.Lock()
	s.bundle = bundle
	s.msgSeq = highestMessageSeq(bundle)
	s.mu.Unlock()

	return err
}

// highestMessageSeq finds the largest counter-allocated message ID in the
// bundle, so restored stores keep allocating unique IDs.
func highestMessageSeq(bundle models.Bundle) int64 {
	var max int64
	for _, session := range bundle.Sessions {
		for _, msg := range session.Messages {
			var seq int64
			if _, err := fmt.Sscanf(msg.ID, "m-%d", &seq); err == nil && seq > max {
				max = seq
			}
		}
	}
	return max
}

// nextMessageID allocates a monotonic message ID. Callers must hold mu.
func (s *StoreService) nextMessageID() string {
	s.msgSeq++
	return fmt.Sprintf("m-%d", s.msgSeq)
}

// absorbMessageID advances the counter past an externally supplied
// counter-shaped ID, so later allocations cannot collide with it. Callers
// must hold mu.
func (s *StoreService) absorbMessageID(id string) {
	var seq int64
	if _, err := fmt.Sscanf(id, "m-%d", &seq); err == nil && seq > s.msgSeq {
		s.msgSeq = seq
	}
}

// update applies fn to the bundle and saves, all under the write lock. A
// failed save leaves the in-memory change applied and reports a
// *PersistenceError so the caller can retry with RetrySave.
func (s *StoreService) update(ctx context.Context, op string, fn func(b *models.Bundle) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(&s.bundle); err != nil {
		if errors.Is(err, errNoChange) {
			return nil
		}
		return err
	}

	if err := s.Gateway.Save(ctx, s.bundle); err != nil {
		log.Printf("⚠️ Save failed after %s: %v", op, err)
		return &PersistenceError{Op: op, Err: err}
	}
	return nil
}

// view runs fn against a read-locked snapshot of the bundle. fn must not
// retain references to the bundle's slices or maps.
func (s *StoreService) view(fn func(b models.Bundle)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.bundle)
}

// RetrySave re-attempts the durable write after a PersistenceError.
func (s *StoreService) RetrySave(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Gateway.Save(ctx, s.bundle); err != nil {
		return &PersistenceError{Op: "retry save", Err: err}
	}
	return nil
}

// Reset restores the fresh-install state: no matches, no sessions, seed
// notifications only.
func (s *StoreService) Reset(ctx context.Context) error {
	return s.update(ctx, "reset", func(b *models.Bundle) error {
		*b = models.NewBundle(models.SeedNotifications(s.Now()))
		s.msgSeq = 0
		return nil
	})
}

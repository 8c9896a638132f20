package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"campusmatch_server/models"
)

// PersistenceGateway serializes the store bundle to and from a BlobStore.
// The bundle is one blob, so matches, sessions and notifications are always
// persisted together or not at all.
type PersistenceGateway struct {
	Blob BlobStore

	// Now supplies the seed-notification timestamps on first run.
	// Overridable in tests.
	Now func() int64
}

func NewPersistenceGateway(blob BlobStore) *PersistenceGateway {
	return &PersistenceGateway{
		Blob: blob,
		Now:  func() int64 { return time.Now().UnixMilli() },
	}
}

// Load reads the persisted bundle. A missing blob (first run) yields an empty
// bundle with the seed notifications and no error. A corrupt blob yields the
// same default plus a warning error so the caller can log it; the store stays
// usable either way.
func (g *PersistenceGateway) Load(ctx context.Context) (models.Bundle, error) {
	fallback := models.NewBundle(models.SeedNotifications(g.Now()))

	data, err := g.Blob.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrBlobNotFound) {
			return fallback, nil
		}
		log.Printf("⚠️ Failed to load bundle, starting from defaults: %v", err)
		return fallback, fmt.Errorf("load bundle: %w", err)
	}

	var bundle models.Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		log.Printf("⚠️ Corrupt bundle blob, starting from defaults: %v", err)
		return fallback, fmt.Errorf("decode bundle: %w", err)
	}

	// Older blobs may omit empty collections
	if bundle.Matches == nil {
		bundle.Matches = []models.Match{}
	}
	if bundle.Sessions == nil {
		bundle.Sessions = map[string]models.ChatSession{}
	}
	if bundle.Notifications == nil {
		bundle.Notifications = []models.Notification{}
	}
	return bundle, nil
}

// Save writes the full bundle. On failure the previous durable state is left
// unchanged (single-blob write).
func (g *PersistenceGateway) Save(ctx context.Context, bundle models.Bundle) error {
	data, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	if err := g.Blob.Save(ctx, data); err != nil {
		return fmt.Errorf("save bundle: %w", err)
	}
	return nil
}

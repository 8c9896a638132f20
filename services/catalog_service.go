package services

import (
	"encoding/json"
	"fmt"
	"os"

	"campusmatch_server/models"
)

// CatalogService serves the static pool of candidate profiles. Candidates
// arrive with their match percentage already computed by the external
// scoring provider; this service never recomputes it.
type CatalogService struct {
	candidates []models.MatchCandidate
}

// NewCatalogService loads candidates from the JSON file at path, or falls
// back to the built-in demo catalog when path is empty.
func NewCatalogService(path string) (*CatalogService, error) {
	if path == "" {
		return &CatalogService{candidates: DemoCatalog()}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file '%s': %w", path, err)
	}
	var candidates []models.MatchCandidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file '%s': %w", path, err)
	}
	return &CatalogService{candidates: candidates}, nil
}

// Candidates returns the catalog in stable order.
func (cs *CatalogService) Candidates() []models.MatchCandidate {
	return append([]models.MatchCandidate{}, cs.candidates...)
}

// DemoCatalog is the built-in candidate pool used when no catalog file is
// configured.
func DemoCatalog() []models.MatchCandidate {
	return []models.MatchCandidate{
		{
			Profile: models.Profile{
				ID:          "c1",
				AnonymousID: "MidnightScholar",
				Gender:      models.GenderFemale,
				Branch:      "Computer Science",
				Year:        "3rd",
				Interests:   []string{"indie music", "hackathons", "coffee"},
				Bio:         "Debugging by day, stargazing by night.",
				IsVerified:  true,
			},
			MatchPercentage: 92,
			Distance:        "Same campus",
		},
		{
			Profile: models.Profile{
				ID:          "c2",
				AnonymousID: "QuietThunder",
				Gender:      models.GenderFemale,
				Branch:      "Architecture",
				Year:        "2nd",
				Interests:   []string{"sketching", "cycling"},
				Bio:         "I design buildings and overthink texts.",
				IsVerified:  true,
			},
			MatchPercentage: 85,
			Distance:        "1 km away",
		},
		{
			Profile: models.Profile{
				ID:          "c3",
				AnonymousID: "CaffeineComet",
				Gender:      models.GenderMale,
				Branch:      "Mechanical",
				Year:        "4th",
				Interests:   []string{"football", "film clubs", "road trips"},
				Bio:         "Final year, finally free on weekends.",
				IsVerified:  false,
			},
			MatchPercentage: 78,
			Distance:        "2 km away",
		},
		{
			Profile: models.Profile{
				ID:          "c4",
				AnonymousID: "PaperPlanePilot",
				Gender:      models.GenderMale,
				Branch:      "Economics",
				Year:        "1st",
				Interests:   []string{"debate", "chess"},
				Bio:         "Will argue about anything except where to eat.",
				IsVerified:  true,
			},
			MatchPercentage: 81,
			Distance:        "Same campus",
		},
	}
}

package utils

import (
	"fmt"
	"regexp"
	"strings"

	"campusmatch_server/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateUniversityEmail checks the email-like shape of a university
// address at the boundary. Domain allow-listing is the verification flow's
// job, not ours.
func ValidateUniversityEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return fmt.Errorf("malformed university email: %q", email)
	}
	return nil
}

// ValidateProfile rejects profiles that break catalog constraints before any
// state is touched.
func ValidateProfile(p models.Profile) error {
	if p.ID == "" {
		return fmt.Errorf("profile id is required")
	}
	if len(p.Interests) > models.MaxInterests {
		return fmt.Errorf("at most %d interests allowed, got %d", models.MaxInterests, len(p.Interests))
	}
	if p.UniversityEmail != "" {
		return ValidateUniversityEmail(p.UniversityEmail)
	}
	return nil
}

// ValidateMessageText rejects empty text for non-system messages.
func ValidateMessageText(text string, isSystem bool) error {
	if isSystem {
		return nil
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("message text cannot be empty")
	}
	return nil
}

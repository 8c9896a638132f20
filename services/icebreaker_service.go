package services

import (
	"context"
	"fmt"

	"campusmatch_server/models"
)

// IceBreakerProvider is the external text-completion collaborator that
// suggests a conversation opener for a (user, candidate) pair. Availability
// and retries are the caller's problem, not this store's.
type IceBreakerProvider interface {
	SuggestOpener(ctx context.Context, user models.Profile, candidate models.MatchCandidate) (string, error)
}

// StaticIceBreakerProvider serves canned openers so the server works without
// the external completion call.
type StaticIceBreakerProvider struct{}

var staticOpeners = []string{
	"What's the one class you'd never skip?",
	"Coffee or chai before a deadline?",
	"Best spot on campus nobody knows about?",
}

func (StaticIceBreakerProvider) SuggestOpener(_ context.Context, _ models.Profile, candidate models.MatchCandidate) (string, error) {
	if len(candidate.Interests) > 0 {
		return fmt.Sprintf("So, %s. How did that start?", candidate.Interests[0]), nil
	}
	return staticOpeners[len(candidate.ID)%len(staticOpeners)], nil
}

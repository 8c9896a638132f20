package services

import (
	"campusmatch_server/models"
)

// EligibilityPredicate decides whether a candidate may appear in a user's
// queue. Swapping the predicate changes the matching rule without touching
// the registry or session logic.
type EligibilityPredicate func(user models.Profile, candidate models.MatchCandidate) bool

// OppositeGender is the default predicate: candidates whose gender marker is
// the binary complement of the user's.
func OppositeGender(user models.Profile, candidate models.MatchCandidate) bool {
	target := models.GenderFemale
	if user.Gender != models.GenderMale {
		target = models.GenderMale
	}
	return candidate.Gender == target
}

// BuildQueue derives the candidates a user may swipe on: eligible per the
// predicate, not the user themselves, not already matched. Pure function of
// its inputs; ordering is stable catalog order. A nil predicate means
// OppositeGender.
func BuildQueue(user models.Profile, catalog []models.MatchCandidate, existing []models.Match, pred EligibilityPredicate) []models.MatchCandidate {
	if pred == nil {
		pred = OppositeGender
	}

	matched := make(map[string]struct{}, len(existing))
	for _, m := range existing {
		matched[m.MatchID] = struct{}{}
	}

	queue := []models.MatchCandidate{}
	for _, candidate := range catalog {
		if candidate.ID == user.ID {
			continue
		}
		if _, already := matched[candidate.ID]; already {
			continue
		}
		if !pred(user, candidate) {
			continue
		}
		queue = append(queue, candidate)
	}
	return queue
}

// MatchQueue iterates over a built queue. Reset restarts at position 0 over
// the same filtered set; picking up newly recorded matches requires a
// rebuild.
type MatchQueue struct {
	candidates []models.MatchCandidate
	pos        int
}

func NewMatchQueue(candidates []models.MatchCandidate) *MatchQueue {
	return &MatchQueue{candidates: candidates}
}

// Next returns the current candidate and advances, or false when exhausted.
func (q *MatchQueue) Next() (models.MatchCandidate, bool) {
	if q.pos >= len(q.candidates) {
		return models.MatchCandidate{}, false
	}
	candidate := q.candidates[q.pos]
	q.pos++
	return candidate, true
}

// Reset restarts iteration from the beginning.
func (q *MatchQueue) Reset() {
	q.pos = 0
}

// Len reports the total size of the filtered set.
func (q *MatchQueue) Len() int {
	return len(q.candidates)
}

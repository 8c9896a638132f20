package models

// Profile defines the structure for catalog profiles
type Profile struct {
	ID              string   `json:"id" dynamodbav:"id"`
	AnonymousID     string   `json:"anonymousId" dynamodbav:"anonymousId"`
	UniversityEmail string   `json:"universityEmail,omitempty" dynamodbav:"universityEmail,omitempty"`
	Gender          string   `json:"gender" dynamodbav:"gender"`
	Branch          string   `json:"branch" dynamodbav:"branch"`
	Year            string   `json:"year" dynamodbav:"year"`
	Interests       []string `json:"interests" dynamodbav:"interests"`
	Bio             string   `json:"bio" dynamodbav:"bio"`
	IsVerified      bool     `json:"isVerified" dynamodbav:"isVerified"`
	AvatarURL       string   `json:"avatarUrl,omitempty" dynamodbav:"avatarUrl,omitempty"`
}

// MatchCandidate is a catalog profile enriched with an externally computed
// compatibility score and a distance label. Read-only once produced; the
// university email is never exposed on a candidate.
type MatchCandidate struct {
	Profile
	MatchPercentage int    `json:"matchPercentage" dynamodbav:"matchPercentage"`
	Distance        string `json:"distance" dynamodbav:"distance"`
}

// MaxInterests caps the interest tags a profile may carry
const MaxInterests = 5

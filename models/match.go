package models

// Match records a confirmed match with one candidate. The match ID is the
// candidate's ID: a candidate can be matched at most once per user.
type Match struct {
	MatchID   string         `json:"matchId" dynamodbav:"matchId"`
	Candidate MatchCandidate `json:"candidate" dynamodbav:"candidate"`
	CreatedAt int64          `json:"createdAt" dynamodbav:"createdAt"`
}

package models

// Message is one chat entry. Append-only: never edited or removed.
type Message struct {
	ID        string `json:"id" dynamodbav:"id"`
	SenderID  string `json:"senderId" dynamodbav:"senderId"`
	Text      string `json:"text" dynamodbav:"text"`
	Timestamp int64  `json:"timestamp" dynamodbav:"timestamp"`
	IsSystem  bool   `json:"isSystem,omitempty" dynamodbav:"isSystem,omitempty"`
}

// ChatSession holds the conversation state for one match. LastUpdated is
// unix milliseconds and tracks the most recent mutation (creation or append).
type ChatSession struct {
	MatchID     string    `json:"matchId" dynamodbav:"matchId"`
	UserA       string    `json:"userA" dynamodbav:"userA"`
	UserB       string    `json:"userB" dynamodbav:"userB"`
	Messages    []Message `json:"messages" dynamodbav:"messages"`
	LastUpdated int64     `json:"lastUpdated" dynamodbav:"lastUpdated"`
	IsRevealed  bool      `json:"isRevealed" dynamodbav:"isRevealed"`
}

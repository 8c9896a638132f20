package models

// Notification is one event entry. The store keeps notifications newest
// insertion first, independent of the timestamp field.
type Notification struct {
	ID        string `json:"id" dynamodbav:"id"`
	Title     string `json:"title" dynamodbav:"title"`
	Message   string `json:"message" dynamodbav:"message"`
	Timestamp int64  `json:"timestamp" dynamodbav:"timestamp"`
	Read      bool   `json:"read" dynamodbav:"read"`
	Type      string `json:"type" dynamodbav:"type"`
}

package models

// Bundle is the atomic unit of persisted state. The three collections are
// always written together; keys are stable so older blobs stay readable.
type Bundle struct {
	Matches       []Match                `json:"matches"`
	Sessions      map[string]ChatSession `json:"sessions"`
	Notifications []Notification         `json:"notifications"`
}

// NewBundle returns an empty bundle with the given notification seed.
func NewBundle(seed []Notification) Bundle {
	return Bundle{
		Matches:       []Match{},
		Sessions:      map[string]ChatSession{},
		Notifications: append([]Notification{}, seed...),
	}
}

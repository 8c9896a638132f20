package models

// SeedNotifications is the default notification set a fresh install starts
// with. Newest insertion first, matching store ordering.
func SeedNotifications(now int64) []Notification {
	return []Notification{
		{
			ID:        "seed-2",
			Title:     "Stay anonymous",
			Message:   "Your real name stays hidden until both of you choose to reveal.",
			Timestamp: now,
			Read:      false,
			Type:      NotificationTypeSystem,
		},
		{
			ID:        "seed-1",
			Title:     "Welcome to CampusMatch",
			Message:   "Swipe right on profiles you vibe with. Mutual interest starts a chat.",
			Timestamp: now,
			Read:      false,
			Type:      NotificationTypeSystem,
		},
	}
}

package models

// Gender markers used by the binary queue predicate
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Notification types
const (
	NotificationTypeMatch   = "match"
	NotificationTypeMessage = "message"
	NotificationTypeSystem  = "system"
)

// Swipe directions
const (
	SwipeRight = "right"
	SwipeLeft  = "left"
)

// BundlesTable is the DynamoDB table name for persisted store bundles
const BundlesTable = "StoreBundles"

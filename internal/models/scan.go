package models

// ScanEvent is published each time a tag resolves to a registered user.
type ScanEvent struct {
	EventID     string `json:"event_id"`     // Unique event identifier
	UID         string `json:"uid"`          // Normalized tag identifier
	Name        string `json:"name"`         // Resolved user name
	ResourceURI string `json:"resource_uri"` // Native-scheme identifier handed to the launcher
	Launched    bool   `json:"launched"`     // Whether the launcher reported success
	Timestamp   int64  `json:"timestamp"`    // Unix seconds
}

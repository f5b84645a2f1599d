package models

import "time"

// RFIDUser represents a tag-to-user directory record.
type RFIDUser struct {
	UID          string    `json:"uid" db:"uid"`                    // Normalized tag identifier, unique
	Name         string    `json:"name" db:"name"`                  // Display name
	ResourceLink string    `json:"resourceLink" db:"resource_link"` // Web link to a track, album or playlist
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`       // Last update timestamp
}

// RFIDUserPatch holds the fields of a partial update. Nil fields are left untouched.
type RFIDUserPatch struct {
	Name         *string
	ResourceLink *string
}

// Empty reports whether the patch changes nothing.
func (p RFIDUserPatch) Empty() bool {
	return p.Name == nil && p.ResourceLink == nil
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultProximityThreshold is the proximity threshold in meters applied to
// new groups when the client does not supply one.
const DefaultProximityThreshold = 20

// DeviceGroup is a named collection of devices owned by one user.
// Only the owner may mutate a group; membership grants no rights on the
// group or on the member devices.
type DeviceGroup struct {
	ID                 uuid.UUID `json:"id"`                  // The unique identifier for the group.
	OwnerID            uuid.UUID `json:"owner_id"`            // The ID of the user who owns this group.
	Name               string    `json:"name"`                // Human-readable group name.
	ProximityThreshold int       `json:"proximity_threshold"` // Proximity threshold in meters used by alerting clients.
	CreatedAt          time.Time `json:"created_at"`          // Timestamp of when this group was created.
	UpdatedAt          time.Time `json:"updated_at"`          // Timestamp of the last modification.
}

// GroupMembership links a device to a group. A device appears in a given
// group at most once; the (group, device) pair is unique.
type GroupMembership struct {
	ID       uuid.UUID `json:"id"`       // The unique identifier for this membership row.
	GroupID  uuid.UUID `json:"group_id"` // The group the device was added to.
	DeviceID uuid.UUID `json:"device_id"`
	AddedAt  time.Time `json:"added_at"` // Timestamp of when the device was added.
}

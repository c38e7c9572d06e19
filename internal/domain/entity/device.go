// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device represents a trackable device registered by a user.
// A device belongs to exactly one owner at all times; ownership never
// transfers implicitly. Visibility for other users comes from DeviceShare.
type Device struct {
	ID                uuid.UUID  `json:"id"`                 // The unique identifier for the device.
	OwnerID           uuid.UUID  `json:"owner_id"`           // The ID of the user who owns this device.
	Name              string     `json:"name"`               // Human-readable display name.
	Type              string     `json:"type"`               // Device type reported by the client (tag, phone, tracker, ...).
	BatteryLevel      *int       `json:"battery_level"`      // Last reported battery percentage, nil if never reported.
	PubliclyLocatable bool       `json:"publicly_locatable"` // When true, any authenticated user may report fixes for this device.
	CreatedAt         time.Time  `json:"created_at"`         // Timestamp of when this device was registered.
	UpdatedAt         time.Time  `json:"updated_at"`         // Timestamp of the last modification.
	LastActiveAt      *time.Time `json:"last_active_at"`     // Timestamp of the last location fix, nil before the first one.
}

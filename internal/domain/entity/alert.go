// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Alert records a triggered condition for a device, optionally scoped to a
// group. Alerts are append-only: resolving one flips its state and stamps the
// resolution time, it never deletes history.
type Alert struct {
	ID         uuid.UUID  `json:"id"`          // The unique identifier for this alert.
	DeviceID   uuid.UUID  `json:"device_id"`   // The device the alert concerns.
	GroupID    *uuid.UUID `json:"group_id"`    // Optional group scope (e.g., a proximity group).
	Type       string     `json:"type"`        // Client-defined alert type (left_behind, low_battery, ...).
	Latitude   *float64   `json:"latitude"`    // Optional position where the alert fired.
	Longitude  *float64   `json:"longitude"`   //
	Resolved   bool       `json:"resolved"`    // Whether the alert has been resolved.
	CreatedAt  time.Time  `json:"created_at"`  // Timestamp of when the alert was raised.
	ResolvedAt *time.Time `json:"resolved_at"` // Timestamp of resolution, nil while unresolved.
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationFix is a single point-in-time GPS fix for a device.
// Fixes are append-only: they are never updated or deleted, and history
// queries read them newest first.
type LocationFix struct {
	ID             uuid.UUID `json:"id"`              // The unique identifier for this fix.
	DeviceID       uuid.UUID `json:"device_id"`       // The device this fix belongs to.
	Latitude       float64   `json:"latitude"`        // Latitude in decimal degrees.
	Longitude      float64   `json:"longitude"`       // Longitude in decimal degrees.
	Accuracy       *float64  `json:"accuracy"`        // Horizontal accuracy in meters, if reported.
	Altitude       *float64  `json:"altitude"`        // Altitude in meters, if reported.
	SignalStrength *int      `json:"signal_strength"` // Signal strength of the reporting radio, if reported.
	RecordedBy     string    `json:"recorded_by"`     // Identifier of the reporting device/agent. May differ from the owner's devices for crowd-sourced fixes.
	RecordedAt     time.Time `json:"recorded_at"`     // Timestamp of when the fix was taken.
}

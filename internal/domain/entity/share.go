// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// PermissionLevel is the closed set of permissions a device share can carry.
// Levels form a total order: view < locate < full. A share at a given level
// satisfies any requirement at or below that level.
type PermissionLevel string

// The three permission levels, lowest to highest.
const (
	PermissionView   PermissionLevel = "view"   // May see the device and its metadata.
	PermissionLocate PermissionLevel = "locate" // May additionally read location history.
	PermissionFull   PermissionLevel = "full"   // May do everything short of owner-only mutations.
)

// ErrInvalidPermissionLevel is returned when parsing an unknown permission level.
var ErrInvalidPermissionLevel = errors.New("invalid permission level")

// permissionRank maps each level onto the total order. Unknown levels rank 0.
var permissionRank = map[PermissionLevel]int{
	PermissionView:   1,
	PermissionLocate: 2,
	PermissionFull:   3,
}

// ParsePermissionLevel converts a raw string into a PermissionLevel,
// rejecting anything outside the closed enumeration.
func ParsePermissionLevel(raw string) (PermissionLevel, error) {
	level := PermissionLevel(raw)
	if _, ok := permissionRank[level]; !ok {
		return "", errors.Wrapf(ErrInvalidPermissionLevel, "unknown level %q", raw)
	}

	return level, nil
}

// IsValid reports whether the level is one of the enumerated values.
func (p PermissionLevel) IsValid() bool {
	_, ok := permissionRank[p]

	return ok
}

// Satisfies reports whether this level grants at least the required level.
func (p PermissionLevel) Satisfies(required PermissionLevel) bool {
	return permissionRank[p] >= permissionRank[required] && permissionRank[required] > 0
}

// DeviceShare is a grant from a device's owner to another user.
// The (device, recipient) pair is unique; re-sharing to the same recipient
// updates the existing grant instead of creating a second row.
type DeviceShare struct {
	ID         uuid.UUID       `json:"id"`          // The unique identifier for this share.
	DeviceID   uuid.UUID       `json:"device_id"`   // The shared device.
	OwnerID    uuid.UUID       `json:"owner_id"`    // The granting user; always the device's owner.
	SharedWith uuid.UUID       `json:"shared_with"` // The recipient user.
	Permission PermissionLevel `json:"permission"`  // The granted permission level.
	ExpiresAt  *time.Time      `json:"expires_at"`  // Optional expiry; nil means the share does not expire.
	CreatedAt  time.Time       `json:"created_at"`  // Timestamp of when the share was first created.
	UpdatedAt  time.Time       `json:"updated_at"`  // Timestamp of the last permission/expiry change.
}

// ActiveAt reports whether the share is active at the given instant.
// A share with a past expiry reads as absent; the row is kept until revoked.
func (s *DeviceShare) ActiveAt(now time.Time) bool {
	return s.ExpiresAt == nil || s.ExpiresAt.After(now)
}

// Package access centralizes the authorization rules for devices, groups and
// alerts. Every read or write path that touches another user's data goes
// through a Checker, so the rules live in exactly one place.
package access

import (
	"context"
	"time"

	"hwehweme/internal/domain/entity"
	"hwehweme/internal/domain/repository"
	"hwehweme/internal/errors"

	"github.com/google/uuid"
)

// ErrDenied is returned when a share exists for the caller but its permission
// level is below what the operation requires. Callers map this to 403.
//
// When no relationship exists at all, the checker returns the resource's
// not-found error instead, so callers cannot probe for resource existence.
var ErrDenied = errors.New("access denied")

// Clock supplies the current time. Injected so share expiry can be tested
// deterministically.
type Clock func() time.Time

// Checker evaluates whether a user may act on a device, group or alert.
type Checker struct {
	devices repository.DeviceRepository
	shares  repository.ShareRepository
	groups  repository.GroupRepository
	now     Clock
}

// NewChecker creates an access Checker. A nil clock defaults to time.Now.
func NewChecker(
	devices repository.DeviceRepository,
	shares repository.ShareRepository,
	groups repository.GroupRepository,
	now Clock,
) *Checker {
	if now == nil {
		now = time.Now
	}

	return &Checker{
		devices: devices,
		shares:  shares,
		groups:  groups,
		now:     now,
	}
}

// AuthorizeDeviceAccess resolves whether userID may access deviceID at the
// required permission level, returning the device on success.
//
// The owner always passes. A non-owner passes only through an active share at
// or above the required level. An expired share reads as if no share exists.
// When the caller has no relationship to the device, the device is reported
// as not found rather than forbidden.
func (c *Checker) AuthorizeDeviceAccess(ctx context.Context, userID, deviceID uuid.UUID, required entity.PermissionLevel) (*entity.Device, error) {
	device, err := c.devices.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device")
	}

	if device.OwnerID == userID {
		return device, nil
	}

	share, err := c.shares.FindShare(ctx, deviceID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrShareNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find share")
	}

	if !share.ActiveAt(c.now()) {
		return nil, repository.ErrDeviceNotFound
	}

	if !share.Permission.Satisfies(required) {
		return nil, ErrDenied
	}

	return device, nil
}

// AuthorizeLocationWrite resolves whether userID may report a location fix for
// deviceID. The owner may always report. Anyone else may report only when the
// device is publicly locatable, which covers crowd-sourced sightings of
// trackers. A non-owner reporting against a private device learns nothing:
// the device is reported as not found.
func (c *Checker) AuthorizeLocationWrite(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := c.devices.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device")
	}

	if device.OwnerID == userID || device.PubliclyLocatable {
		return device, nil
	}

	return nil, repository.ErrDeviceNotFound
}

// AuthorizeGroupMutation resolves whether userID may mutate groupID,
// returning the group on success. Groups are owner-only; membership of a
// device in the group grants its sharees nothing. Non-owners see not-found.
func (c *Checker) AuthorizeGroupMutation(ctx context.Context, userID, groupID uuid.UUID) (*entity.DeviceGroup, error) {
	group, err := c.groups.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find group")
	}

	if group.OwnerID != userID {
		return nil, repository.ErrGroupNotFound
	}

	return group, nil
}

// ResolveAlertAuthority resolves whether userID may raise or resolve alerts
// for deviceID. Alert authority belongs to the device owner alone; shares do
// not carry it regardless of level.
func (c *Checker) ResolveAlertAuthority(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := c.devices.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device")
	}

	if device.OwnerID != userID {
		return nil, repository.ErrDeviceNotFound
	}

	return device, nil
}

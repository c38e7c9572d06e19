package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePermissionLevel_Valid(t *testing.T) {
	for _, raw := range []string{"view", "locate", "full"} {
		level, err := ParsePermissionLevel(raw)

		require.NoError(t, err)
		assert.Equal(t, PermissionLevel(raw), level)
		assert.True(t, level.IsValid())
	}
}

func TestParsePermissionLevel_Invalid(t *testing.T) {
	for _, raw := range []string{"", "admin", "VIEW", "read"} {
		_, err := ParsePermissionLevel(raw)

		assert.ErrorIs(t, err, ErrInvalidPermissionLevel, "expected %q to be rejected", raw)
	}
}

func TestPermissionLevel_Satisfies_Ordering(t *testing.T) {
	assert.True(t, PermissionView.Satisfies(PermissionView))
	assert.False(t, PermissionView.Satisfies(PermissionLocate))
	assert.False(t, PermissionView.Satisfies(PermissionFull))

	assert.True(t, PermissionLocate.Satisfies(PermissionView))
	assert.True(t, PermissionLocate.Satisfies(PermissionLocate))
	assert.False(t, PermissionLocate.Satisfies(PermissionFull))

	assert.True(t, PermissionFull.Satisfies(PermissionView))
	assert.True(t, PermissionFull.Satisfies(PermissionLocate))
	assert.True(t, PermissionFull.Satisfies(PermissionFull))
}

func TestPermissionLevel_Satisfies_UnknownLevels(t *testing.T) {
	unknown := PermissionLevel("admin")

	// An unknown level grants nothing, and nothing can require it.
	assert.False(t, unknown.Satisfies(PermissionView))
	assert.False(t, PermissionFull.Satisfies(unknown))
}

func TestDeviceShare_ActiveAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	noExpiry := &DeviceShare{}
	assert.True(t, noExpiry.ActiveAt(now))

	future := now.Add(time.Hour)
	activeShare := &DeviceShare{ExpiresAt: &future}
	assert.True(t, activeShare.ActiveAt(now))

	past := now.Add(-time.Hour)
	expiredShare := &DeviceShare{ExpiresAt: &past}
	assert.False(t, expiredShare.ActiveAt(now))

	// A share expiring exactly now reads as expired.
	boundary := &DeviceShare{ExpiresAt: &now}
	assert.False(t, boundary.ActiveAt(now))
}

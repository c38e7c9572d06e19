package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceShareModel is the GORM-specific struct for the 'device_shares' table.
// The composite unique index enforces one share per (device, recipient) pair;
// re-shares land on the same row through an upsert.
type DeviceShareModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_device_shares_device_recipient,priority:1"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	SharedWithID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_device_shares_device_recipient,priority:2;index"`
	Permission   string    `gorm:"type:varchar(20);not null"`
	ExpiresAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceShareModel) TableName() string {
	return "device_shares"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
type DeviceModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Name              string    `gorm:"type:varchar(100);not null"`
	Type              string    `gorm:"type:varchar(50);not null"`
	BatteryLevel      *int
	PubliclyLocatable bool `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	LastActiveAt      *time.Time

	Fixes  []LocationFixModel `gorm:"foreignKey:DeviceID"`
	Shares []DeviceShareModel `gorm:"foreignKey:DeviceID"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

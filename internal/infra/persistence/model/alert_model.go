package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertModel is the GORM-specific struct for the 'alerts' table.
type AlertModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	GroupID    *uuid.UUID `gorm:"type:uuid"`
	Type       string     `gorm:"type:varchar(50);not null"`
	Latitude   *float64
	Longitude  *float64
	Resolved   bool `gorm:"not null;default:false"`
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}

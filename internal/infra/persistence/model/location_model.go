package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationFixModel is the GORM-specific struct for the 'location_fixes' table.
// Rows are append-only; the composite index serves newest-first history reads.
type LocationFixModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID       uuid.UUID `gorm:"type:uuid;not null;index:idx_location_fixes_device_recorded,priority:1"`
	Latitude       float64   `gorm:"not null"`
	Longitude      float64   `gorm:"not null"`
	Accuracy       *float64
	Altitude       *float64
	SignalStrength *int
	RecordedBy     string    `gorm:"type:varchar(255)"`
	RecordedAt     time.Time `gorm:"not null;index:idx_location_fixes_device_recorded,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (LocationFixModel) TableName() string {
	return "location_fixes"
}

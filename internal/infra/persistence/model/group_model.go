package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceGroupModel is the GORM-specific struct for the 'device_groups' table.
type DeviceGroupModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Name               string    `gorm:"type:varchar(100);not null"`
	ProximityThreshold int       `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Memberships []GroupMembershipModel `gorm:"foreignKey:GroupID"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceGroupModel) TableName() string {
	return "device_groups"
}

// GroupMembershipModel is the GORM-specific struct for the 'group_memberships'
// table. The composite unique index enforces at-most-once membership.
type GroupMembershipModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GroupID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_group_memberships_group_device,priority:1"`
	DeviceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_group_memberships_group_device,priority:2"`
	AddedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (GroupMembershipModel) TableName() string {
	return "group_memberships"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// SiteSettingModel mirrors the 'site_settings' table.
type SiteSettingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Key         string    `gorm:"type:varchar(100);unique;not null"`
	Value       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:varchar(200)"`
	Category    string    `gorm:"type:varchar(50);not null;default:other;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SiteSettingModel) TableName() string {
	return "site_settings"
}

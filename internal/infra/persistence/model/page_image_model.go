package model

import (
	"time"

	"github.com/google/uuid"
)

// PageImageModel mirrors the 'page_images' table. Multiple rows may share a
// position to support sliders.
type PageImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Position  string    `gorm:"type:varchar(50);not null;index"`
	Image     string    `gorm:"type:varchar(255);not null"`
	LinkURL   string    `gorm:"type:varchar(255)"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PageImageModel) TableName() string {
	return "page_images"
}

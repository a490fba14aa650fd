// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SettingCategory groups site settings for the admin panel.
type SettingCategory string

const (
	// SettingCategoryCompany holds company information settings.
	SettingCategoryCompany SettingCategory = "company"
	// SettingCategoryContact holds contact information settings.
	SettingCategoryContact SettingCategory = "contact"
	// SettingCategorySocial holds social media link settings.
	SettingCategorySocial SettingCategory = "social"
	// SettingCategorySEO holds SEO and tracking settings.
	SettingCategorySEO SettingCategory = "seo"
	// SettingCategoryOther holds everything else.
	SettingCategoryOther SettingCategory = "other"
)

// IsValid checks if the SettingCategory is one of the enumerated values.
func (c SettingCategory) IsValid() bool {
	switch c {
	case SettingCategoryCompany, SettingCategoryContact, SettingCategorySocial,
		SettingCategorySEO, SettingCategoryOther:
		return true
	default:
		return false
	}
}

// SiteSetting is a key-value record driving site-wide CMS content,
// e.g. company name, contact phone, social links. Keys are unique.
type SiteSetting struct {
	ID          uuid.UUID       // The unique identifier of the setting.
	Key         string          // Unique lookup key, e.g. "contact_phone".
	Value       string          // Setting value, free text.
	Description string          // Optional human-readable description.
	Category    SettingCategory // Grouping category, defaults to "other".
	CreatedAt   time.Time       // Timestamp of when the setting was created.
	UpdatedAt   time.Time       // Timestamp of the last modification.
}

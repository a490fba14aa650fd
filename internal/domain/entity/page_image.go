// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PagePosition identifies the slot on the site where a page image is shown.
// Several images may share a position to support sliders.
type PagePosition string

const (
	// PositionHero is the home page hero slider.
	PositionHero PagePosition = "hero"
	// PositionWaterFlosserBanner is the water flosser category banner.
	PositionWaterFlosserBanner PagePosition = "water_flosser_banner"
	// PositionElectricBrushBanner is the electric brush category banner.
	PositionElectricBrushBanner PagePosition = "electric_brush_banner"
	// PositionMouthwashBanner is the mouthwash category banner.
	PositionMouthwashBanner PagePosition = "mouthwash_banner"
	// PositionOtherBanner is the banner for the remaining products.
	PositionOtherBanner PagePosition = "other_banner"
	// PositionAboutHero is the hero section of the about page.
	PositionAboutHero PagePosition = "about_hero"
	// PositionAboutStory is the story section of the about page.
	PositionAboutStory PagePosition = "about_story"
	// PositionAboutTeam is the team section of the about page.
	PositionAboutTeam PagePosition = "about_team"
)

// IsValid checks if the PagePosition is one of the enumerated values.
func (p PagePosition) IsValid() bool {
	switch p {
	case PositionHero, PositionWaterFlosserBanner, PositionElectricBrushBanner,
		PositionMouthwashBanner, PositionOtherBanner, PositionAboutHero,
		PositionAboutStory, PositionAboutTeam:
		return true
	default:
		return false
	}
}

// PageImage is a CMS-managed image displayed at a fixed position on the site.
type PageImage struct {
	ID        uuid.UUID    // The unique identifier of the page image.
	Name      string       // Admin-facing name of the image.
	Position  PagePosition // Slot on the site where the image appears.
	Image     string       // Path of the stored image, relative to the media root.
	LinkURL   string       // Optional URL the image links to.
	IsActive  bool         // Inactive images are kept but not served to visitors.
	CreatedAt time.Time    // Timestamp of when the image was uploaded.
	UpdatedAt time.Time    // Timestamp of the last modification.
}

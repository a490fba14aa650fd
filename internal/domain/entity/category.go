// Package entity contains the core business objects of the project.
package entity

// Category represents the catalog category a product belongs to.
type Category string

const (
	// CategoryWaterFlosser covers water flosser devices.
	CategoryWaterFlosser Category = "water_flosser"
	// CategoryElectricBrush covers electric toothbrushes.
	CategoryElectricBrush Category = "electric_brush"
	// CategoryMouthwash covers mouthwash products.
	CategoryMouthwash Category = "mouthwash"
	// CategoryOther covers everything outside the named categories.
	CategoryOther Category = "other"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is one of the enumerated values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryWaterFlosser, CategoryElectricBrush, CategoryMouthwash, CategoryOther:
		return true
	default:
		return false
	}
}

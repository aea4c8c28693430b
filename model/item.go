package models

import "fmt"

// Category identifies the furniture variant of a catalog item.
type Category string

const (
	CategoryTable  Category = "table"
	CategoryChair  Category = "chair"
	CategorySofa   Category = "sofa"
	CategoryBed    Category = "bed"
	CategoryCloset Category = "closet"
)

// Valid reports whether c is one of the known furniture categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTable, CategoryChair, CategorySofa, CategoryBed, CategoryCloset:
		return true
	}
	return false
}

// CatalogItem is a sellable furniture record. The Category tag selects which
// of the variant fields are meaningful: Material for chairs, SeatingCapacity
// for sofas, PillowCount for beds, WithMirror for closets.
type CatalogItem struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Height      int      `json:"height"`
	Width       int      `json:"width"`
	Weight      float64  `json:"weight"`
	Description string   `json:"description,omitempty"`

	Material        string `json:"material,omitempty"`
	SeatingCapacity int    `json:"seating_capacity,omitempty"`
	PillowCount     int    `json:"pillow_count,omitempty"`
	WithMirror      bool   `json:"with_mirror,omitempty"`
}

// ApplyDiscount returns the price after deducting the given percentage.
// The stored price is not modified.
func (i CatalogItem) ApplyDiscount(percentage float64) (float64, error) {
	if percentage < 0 || percentage > 100 {
		return 0, fmt.Errorf("%w: discount percentage %v outside [0,100]", ErrInvalidArgument, percentage)
	}
	return i.Price * (1 - percentage/100), nil
}

func (i CatalogItem) String() string {
	return fmt.Sprintf("[%d] %s (%s) $%.2f", i.ID, i.Title, i.Category, i.Price)
}

package domain

// RoomCategory represents a bookable room type with a hard unit capacity
type RoomCategory struct {
	ID         string
	Name       string
	TotalUnits int // общее количество физических номеров этой категории
	Color      string
	Perks      []string
}

// HasCapacity reports whether the category has any physical units at all
func (c *RoomCategory) HasCapacity() bool {
	return c.TotalUnits > 0
}

// Restaurant represents a dining venue. Restaurants carry no numeric table
// capacity: dining availability is informational (booking counts only),
// unlike rooms which enforce a hard unit cap. The asymmetry is intentional.
type Restaurant struct {
	ID    string
	Name  string
	Color string
}

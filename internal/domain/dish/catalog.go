package dish

// Catalog is an immutable snapshot of the dish library. It is built once
// at startup and shared read-only across concurrent planning requests,
// so no locking is required.
type Catalog struct {
	dishes []Dish
}

// NewCatalog creates a catalog snapshot from a slice of dishes.
// The slice is copied so later mutations by the caller cannot leak in.
func NewCatalog(dishes []Dish) *Catalog {
	snapshot := make([]Dish, len(dishes))
	copy(snapshot, dishes)
	return &Catalog{dishes: snapshot}
}

// Len returns the number of dishes in the catalog
func (c *Catalog) Len() int {
	return len(c.dishes)
}

// IsEmpty reports whether the catalog holds no dishes
func (c *Catalog) IsEmpty() bool {
	return len(c.dishes) == 0
}

// Dishes returns all dishes in catalog order.
// Callers must treat the returned slice as read-only.
func (c *Catalog) Dishes() []Dish {
	return c.dishes
}

// ByMealType returns the dishes served at a meal occasion, order preserved
func (c *Catalog) ByMealType(mealType MealType) []Dish {
	var matches []Dish
	for _, d := range c.dishes {
		if d.MealType == mealType {
			matches = append(matches, d)
		}
	}
	return matches
}

// Stats summarizes the catalog for reporting endpoints
type Stats struct {
	TotalDishes int            `json:"total_dishes"`
	MealTypes   map[string]int `json:"meal_types"`
	DietTags    map[string]int `json:"dietary_options"`
	Regions     map[string]int `json:"regions"`
}

// Stats computes dish counts by meal type, diet tag and region
func (c *Catalog) Stats() Stats {
	stats := Stats{
		TotalDishes: len(c.dishes),
		MealTypes:   make(map[string]int),
		DietTags:    make(map[string]int),
		Regions:     make(map[string]int),
	}

	for _, d := range c.dishes {
		stats.MealTypes[string(d.MealType)]++
		for _, tag := range d.DietTags {
			stats.DietTags[tag]++
		}
		region := d.Region
		if region == "" {
			region = "unknown"
		}
		stats.Regions[region]++
	}

	return stats
}

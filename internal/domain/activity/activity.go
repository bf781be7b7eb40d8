package activity

import (
	"fmt"
)

// Category buckets an activity for interest matching. The set is fixed;
// classification of untagged activities is keyword-driven (see Classify).
type Category string

const (
	// Cultural covers tours, historical sites and local tradition.
	Cultural Category = "CULTURAL"
	// Culinary covers cooking classes, tastings and food tours.
	Culinary Category = "CULINARY"
	// Wellness covers spa, massage and yoga offerings.
	Wellness Category = "WELLNESS"
	// Adventure covers sports and outdoor activities.
	Adventure Category = "ADVENTURE"
	// Entertainment covers shows, performances and nightlife.
	Entertainment Category = "ENTERTAINMENT"
)

// Categories lists all valid categories in declaration order.
func Categories() []Category {
	return []Category{Cultural, Culinary, Wellness, Adventure, Entertainment}
}

// IsValid checks whether the category is one of the fixed five.
func (c Category) IsValid() bool {
	switch c {
	case Cultural, Culinary, Wellness, Adventure, Entertainment:
		return true
	}
	return false
}

// Activity is a recommendable catalog entry (immutable value object).
// The catalog is loaded once and replaced wholesale on re-index; nothing
// mutates an Activity after construction.
type Activity struct {
	id          int64
	name        string
	description string
	category    Category
	price       float64
	capacity    int
	slots       int
	startTime   string
	endTime     string
	rating      float64
	hotelID     int64
	hotelName   string
}

// New validates and creates an Activity. Category may be empty; it is then
// resolved by keyword classification at index-build time.
func New(
	id int64, name, description string, category Category,
	price float64, capacity, slots int,
	startTime, endTime string, rating float64,
	hotelID int64, hotelName string,
) (Activity, error) {
	if id <= 0 {
		return Activity{}, fmt.Errorf("activity id must be positive, got %d", id)
	}
	if name == "" {
		return Activity{}, fmt.Errorf("activity %d: name is required", id)
	}
	if price < 0 {
		return Activity{}, fmt.Errorf("activity %d: price must be non-negative, got %g", id, price)
	}
	if capacity < 0 {
		return Activity{}, fmt.Errorf("activity %d: capacity must be non-negative, got %d", id, capacity)
	}
	if slots < 0 || slots > capacity {
		return Activity{}, fmt.Errorf("activity %d: available slots %d out of range [0, %d]", id, slots, capacity)
	}
	if category != "" && !category.IsValid() {
		return Activity{}, fmt.Errorf("activity %d: invalid category %q", id, category)
	}
	if rating < 0 {
		return Activity{}, fmt.Errorf("activity %d: rating must be non-negative, got %g", id, rating)
	}

	return Activity{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		price:       price,
		capacity:    capacity,
		slots:       slots,
		startTime:   startTime,
		endTime:     endTime,
		rating:      rating,
		hotelID:     hotelID,
		hotelName:   hotelName,
	}, nil
}

// WithCategory returns a copy with the category resolved.
func (a Activity) WithCategory(c Category) Activity {
	a.category = c
	return a
}

// ID returns the stable activity identifier.
func (a Activity) ID() int64 { return a.id }

// Name returns the display name.
func (a Activity) Name() string { return a.name }

// Description returns the free-text description used for similarity.
func (a Activity) Description() string { return a.description }

// Category returns the category, empty when not yet classified.
func (a Activity) Category() Category { return a.category }

// Price returns the price. Zero means a free activity.
func (a Activity) Price() float64 { return a.price }

// Capacity returns the total bookable capacity.
func (a Activity) Capacity() int { return a.capacity }

// AvailableSlots returns the remaining bookable slots.
func (a Activity) AvailableSlots() int { return a.slots }

// StartTime returns the opaque start-time string from the catalog source.
func (a Activity) StartTime() string { return a.startTime }

// EndTime returns the opaque end-time string from the catalog source.
func (a Activity) EndTime() string { return a.endTime }

// Rating returns the aggregate quality rating used for popularity ranking.
func (a Activity) Rating() float64 { return a.rating }

// HotelID returns the owning hotel identifier, 0 when unscoped.
func (a Activity) HotelID() int64 { return a.hotelID }

// HotelName returns the owning hotel display name.
func (a Activity) HotelName() string { return a.hotelName }

// AvailabilityRatio returns available slots over capacity in [0,1].
// A zero-capacity activity has ratio 0, never a division by zero.
func (a Activity) AvailabilityRatio() float64 {
	if a.capacity <= 0 {
		return 0
	}
	return float64(a.slots) / float64(a.capacity)
}

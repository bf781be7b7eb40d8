package stayrec

// Activity is one catalog entry as returned by the API.
type Activity struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	Category       string  `json:"category"`
	Price          float64 `json:"price"`
	Capacity       int     `json:"capacity"`
	AvailableSlots int     `json:"available_slots"`
	StartTime      string  `json:"start_time,omitempty"`
	EndTime        string  `json:"end_time,omitempty"`
	Rating         float64 `json:"rating"`
	HotelID        int64   `json:"hotel_id,omitempty"`
	HotelName      string  `json:"hotel_name,omitempty"`
}

// Recommendation is an activity with its ranking score and explanation.
type Recommendation struct {
	Activity
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// Category is one entry of the fixed category taxonomy with example
// activities from the live catalog.
type Category struct {
	Category string   `json:"category"`
	Examples []string `json:"examples"`
}

// Health is the service health report.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type userRecommendationsResponse struct {
	UserID          int64            `json:"user_id"`
	Recommendations []Recommendation `json:"recommendations"`
	Count           int              `json:"count"`
}

type typedRecommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
	Count           int              `json:"count"`
	Type            string           `json:"type"`
}

type similarRecommendationsResponse struct {
	BaseItemID      int64            `json:"base_item_id"`
	Recommendations []Recommendation `json:"recommendations"`
	Count           int              `json:"count"`
	Type            string           `json:"type"`
}

type catalogResponse struct {
	HotelID    int64      `json:"hotel_id"`
	Activities []Activity `json:"activities"`
	Count      int        `json:"count"`
}

type categoriesResponse struct {
	Categories []Category `json:"categories"`
}

type visitRequest struct {
	ActivityID int64 `json:"activity_id"`
}

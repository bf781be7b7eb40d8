package httpapi

import (
	"github.com/kailas-cloud/stayrec/internal/domain/activity"
	domrec "github.com/kailas-cloud/stayrec/internal/domain/recommend"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type activityDTO struct {
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

type recommendationDTO struct {
	activityDTO
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

type userRecommendationsResponse struct {
	UserID          int64               `json:"user_id"`
	Recommendations []recommendationDTO `json:"recommendations"`
	Count           int                 `json:"count"`
}

type typedRecommendationsResponse struct {
	Recommendations []recommendationDTO `json:"recommendations"`
	Count           int                 `json:"count"`
	Type            string              `json:"type"`
}

type similarRecommendationsResponse struct {
	BaseItemID      int64               `json:"base_item_id"`
	Recommendations []recommendationDTO `json:"recommendations"`
	Count           int                 `json:"count"`
	Type            string              `json:"type"`
}

type catalogResponse struct {
	HotelID    int64         `json:"hotel_id"`
	Activities []activityDTO `json:"activities"`
	Count      int           `json:"count"`
}

type categoryDTO struct {
	Category string   `json:"category"`
	Examples []string `json:"examples"`
}

type categoriesResponse struct {
	Categories []categoryDTO `json:"categories"`
}

type visitRequest struct {
	ActivityID int64 `json:"activity_id"`
}

func activityToDTO(a activity.Activity) activityDTO {
	return activityDTO{
		ID:             a.ID(),
		Name:           a.Name(),
		Description:    a.Description(),
		Category:       string(a.Category()),
		Price:          a.Price(),
		Capacity:       a.Capacity(),
		AvailableSlots: a.AvailableSlots(),
		StartTime:      a.StartTime(),
		EndTime:        a.EndTime(),
		Rating:         a.Rating(),
		HotelID:        a.HotelID(),
		HotelName:      a.HotelName(),
	}
}

func recommendationsToDTO(recs []domrec.Recommendation) []recommendationDTO {
	out := make([]recommendationDTO, len(recs))
	for i, r := range recs {
		out[i] = recommendationDTO{
			activityDTO: activityToDTO(r.Activity),
			Score:       r.Score,
			Reasons:     r.Reasons,
		}
	}
	return out
}

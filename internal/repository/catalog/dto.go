package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/kailas-cloud/stayrec/internal/domain/activity"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// activityRow is the wire representation of one catalog entry from the
// booking backend, which serializes field names in camelCase. Price arrives
// as a JSON number or a numeric string, so it is parsed explicitly.
type activityRow struct {
	ID             int64       `json:"id"             validate:"required,gt=0"`
	Name           string      `json:"name"           validate:"required"`
	Description    string      `json:"description"`
	Category       string      `json:"category"       validate:"omitempty,oneof=CULTURAL CULINARY WELLNESS ADVENTURE ENTERTAINMENT"`
	Price          json.Number `json:"price"`
	Capacity       int         `json:"capacity"       validate:"gte=0"`
	AvailableSlots int         `json:"availableSlots" validate:"gte=0,ltefield=Capacity"`
	StartTime      string      `json:"startTime"`
	EndTime        string      `json:"endTime"`
	Rating         float64     `json:"rating"         validate:"gte=0"`
	HotelID        int64       `json:"hotelId"        validate:"gte=0"`
	HotelName      string      `json:"hotelName"`
}

// toActivity validates the row and converts it to the domain type.
func (row activityRow) toActivity() (activity.Activity, error) {
	if err := validate.Struct(row); err != nil {
		return activity.Activity{}, fmt.Errorf("row %d: %w", row.ID, err)
	}

	var price float64
	if row.Price != "" {
		p, err := row.Price.Float64()
		if err != nil {
			return activity.Activity{}, fmt.Errorf("row %d: invalid price %q: %w", row.ID, row.Price, err)
		}
		price = p
	}

	return activity.New(
		row.ID, row.Name, row.Description, activity.Category(row.Category),
		price, row.Capacity, row.AvailableSlots,
		row.StartTime, row.EndTime, row.Rating,
		row.HotelID, row.HotelName,
	)
}

// decodeFeed parses the backend catalog payload. Rows that fail validation
// are dropped, the rest of the feed still loads.
func decodeFeed(payload []byte) ([]activity.Activity, int, error) {
	var rows []activityRow
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, 0, fmt.Errorf("decode catalog feed: %w", err)
	}

	items := make([]activity.Activity, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		a, err := row.toActivity()
		if err != nil {
			dropped++
			continue
		}
		items = append(items, a)
	}
	return items, dropped, nil
}

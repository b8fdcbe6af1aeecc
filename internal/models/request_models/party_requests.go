package request_models

type CreatePartyRequest struct {
	Name         string `json:"name"`
	LocationID   int64  `json:"location_id"`
	TripDate     string `json:"trip_date"` // YYYY-MM-DD
	TripDuration int    `json:"trip_duration"`
	Description  string `json:"description"`
}

type PostMessageRequest struct {
	Content string `json:"content"`
}

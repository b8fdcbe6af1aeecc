package response_models

type LocationResponse struct {
	ID          int64   `json:"location_id"`
	Name        string  `json:"name"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
	Category    string  `json:"category"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	GpxURL      string  `json:"gpx_url"`
}

type RoutePoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// RouteBounds is the minimal region covering every point of the route line.
type RouteBounds struct {
	MinLongitude float64 `json:"min_longitude"`
	MinLatitude  float64 `json:"min_latitude"`
	MaxLongitude float64 `json:"max_longitude"`
	MaxLatitude  float64 `json:"max_latitude"`
}

type RouteOverlayResponse struct {
	Points  []RoutePoint `json:"points"`
	Bounds  *RouteBounds `json:"bounds,omitempty"`
	Padding int          `json:"padding"`
}

package db_models

// Location is a fixed touring destination. Rows are owned by backend
// administrators; the API never mutates them.
type Location struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	Name        string
	Longitude   float64
	Latitude    float64
	Category    string // Simple, Moderate, Complex
	Description string `gorm:"type:text"`
	ImageURL    string
	GpxURL      string
	CreatedAt   int64 `gorm:"autoCreateTime"`

	Parties []Party `gorm:"foreignKey:LocationID"`
}

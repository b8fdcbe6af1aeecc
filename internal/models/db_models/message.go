package db_models

import "github.com/google/uuid"

// Message is append-only; there is no edit or delete path.
type Message struct {
	BaseModel
	PartyID  uuid.UUID `gorm:"type:uuid;index"`
	AuthorID uuid.UUID `gorm:"type:uuid"`
	Content  string    `gorm:"type:text"`
}

package db_models

import (
	"time"

	"github.com/google/uuid"
)

// MaxPartyMembers caps a party roster, leader included.
const MaxPartyMembers = 10

type Party struct {
	BaseModel
	Name         string    `gorm:"uniqueIndex:idx_parties_location_name"`
	LocationID   int64     `gorm:"uniqueIndex:idx_parties_location_name"`
	LeaderID     uuid.UUID `gorm:"type:uuid"`
	TripDate     time.Time `gorm:"type:date"`
	TripDuration int
	Description  string `gorm:"type:text"`

	Members  []PartyMember `gorm:"foreignKey:PartyID;constraint:OnDelete:CASCADE"`
	Messages []Message     `gorm:"foreignKey:PartyID;constraint:OnDelete:CASCADE"`
}

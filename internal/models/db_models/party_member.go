package db_models

import "github.com/google/uuid"

type PartyMember struct {
	BaseModel
	PartyID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_party_members_party_user"`
	UserID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_party_members_party_user"`
}

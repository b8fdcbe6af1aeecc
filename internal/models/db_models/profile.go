package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is one-to-one with an account; the ID is the account ID, so no
// generated key here.
type Profile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName  string
	LastName   string
	Birthday   time.Time `gorm:"type:date"`
	SkillLevel string    // None, AST 1, AST 2
	CreatedAt  int64     `gorm:"autoCreateTime"`
	UpdatedAt  int64     `gorm:"autoUpdateTime"`
}

func (p *Profile) DisplayName() string {
	name := p.FirstName
	if p.LastName != "" {
		if name != "" {
			name += " "
		}
		name += p.LastName
	}
	return name
}

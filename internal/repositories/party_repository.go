package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"peakparty/internal/models/db_models"
	"peakparty/pkg/utils"
)

type PartyRepository interface {
	ListByLocation(ctx context.Context, locationID int64) ([]db_models.Party, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Party, error)
	FindByLocationAndName(ctx context.Context, locationID int64, name string) (*db_models.Party, error)
	// CreateWithLeader inserts the party and the leader's membership row in
	// one transaction.
	CreateWithLeader(ctx context.Context, party *db_models.Party) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type partyRepository struct {
	db *gorm.DB
}

func NewPartyRepository(db *gorm.DB) PartyRepository {
	return &partyRepository{db: db}
}

func (r *partyRepository) ListByLocation(ctx context.Context, locationID int64) ([]db_models.Party, error) {
	var parties []db_models.Party
	err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("created_at").
		Find(&parties).Error
	if err != nil {
		return nil, err
	}
	return parties, nil
}

func (r *partyRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Party, error) {
	var party db_models.Party
	err := r.db.WithContext(ctx).First(&party, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &party, nil
}

func (r *partyRepository) FindByLocationAndName(ctx context.Context, locationID int64, name string) (*db_models.Party, error) {
	var party db_models.Party
	err := r.db.WithContext(ctx).
		Where("location_id = ? AND name = ?", locationID, name).
		First(&party).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &party, nil
}

func (r *partyRepository) CreateWithLeader(ctx context.Context, party *db_models.Party) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(party).Error; err != nil {
			if isUniqueViolation(err) {
				return utils.ErrDuplicatePartyName
			}
			return err
		}

		member := &db_models.PartyMember{
			PartyID: party.ID,
			UserID:  party.LeaderID,
		}
		return tx.Create(member).Error
	})
}

func (r *partyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Party{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

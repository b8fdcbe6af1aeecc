package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"peakparty/internal/models/db_models"
	"peakparty/pkg/utils"
)

type MembershipRepository interface {
	ListByParty(ctx context.Context, partyID uuid.UUID) ([]db_models.PartyMember, error)
	ListByParties(ctx context.Context, partyIDs []uuid.UUID) ([]db_models.PartyMember, error)
	CountByParty(ctx context.Context, partyID uuid.UUID) (int64, error)
	IsMember(ctx context.Context, partyID, userID uuid.UUID) (bool, error)
	// Join inserts the membership row. The party row is locked for the
	// duration of the transaction and the member count re-checked under that
	// lock, so two concurrent joins cannot both pass the cap.
	Join(ctx context.Context, partyID, userID uuid.UUID) error
}

type membershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) ListByParty(ctx context.Context, partyID uuid.UUID) ([]db_models.PartyMember, error) {
	var members []db_models.PartyMember
	err := r.db.WithContext(ctx).
		Where("party_id = ?", partyID).
		Order("created_at").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *membershipRepository) ListByParties(ctx context.Context, partyIDs []uuid.UUID) ([]db_models.PartyMember, error) {
	if len(partyIDs) == 0 {
		return nil, nil
	}

	var members []db_models.PartyMember
	err := r.db.WithContext(ctx).
		Where("party_id IN ?", partyIDs).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *membershipRepository) CountByParty(ctx context.Context, partyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.PartyMember{}).
		Where("party_id = ?", partyID).
		Count(&count).Error
	return count, err
}

func (r *membershipRepository) IsMember(ctx context.Context, partyID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.PartyMember{}).
		Where("party_id = ? AND user_id = ?", partyID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *membershipRepository) Join(ctx context.Context, partyID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var party db_models.Party
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&party, "id = ?", partyID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrPartyNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&db_models.PartyMember{}).
			Where("party_id = ?", partyID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= db_models.MaxPartyMembers {
			return utils.ErrPartyFull
		}

		member := &db_models.PartyMember{PartyID: partyID, UserID: userID}
		if err := tx.Create(member).Error; err != nil {
			if isUniqueViolation(err) {
				return utils.ErrAlreadyMember
			}
			return err
		}
		return nil
	})
}

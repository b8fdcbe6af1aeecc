package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"peakparty/internal/models/db_models"
	"peakparty/internal/models/request_models"
	"peakparty/internal/models/response_models"
	"peakparty/internal/repositories"
	"peakparty/pkg/utils"
)

var validSkillLevels = map[string]bool{
	"None":  true,
	"AST 1": true,
	"AST 2": true,
}

type ProfileServiceInterface interface {
	GetOwn(ctx context.Context, userID uuid.UUID) (*response_models.ProfileResponse, error)
	UpsertOwn(ctx context.Context, userID uuid.UUID, request request_models.UpsertProfileRequest) error
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
	accountRepo repositories.AccountRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, accountRepo repositories.AccountRepository) ProfileServiceInterface {
	return &ProfileService{
		profileRepo: profileRepo,
		accountRepo: accountRepo,
	}
}

func (p *ProfileService) GetOwn(ctx context.Context, userID uuid.UUID) (*response_models.ProfileResponse, error) {
	profile, err := p.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return &response_models.ProfileResponse{}, nil
	}

	return &response_models.ProfileResponse{
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		Birthday:   utils.FormatDate(profile.Birthday),
		SkillLevel: profile.SkillLevel,
	}, nil
}

// UpsertOwn saves the caller's own profile; the identity comes from the
// session, never the payload.
func (p *ProfileService) UpsertOwn(ctx context.Context, userID uuid.UUID, request request_models.UpsertProfileRequest) error {
	if request.FirstName == "" || request.LastName == "" {
		return utils.ErrInvalidInput
	}

	birthday, err := utils.ParseDate(request.Birthday)
	if err != nil || birthday.After(time.Now()) {
		return utils.ErrInvalidBirthday
	}

	if !validSkillLevels[request.SkillLevel] {
		return utils.ErrInvalidSkillLevel
	}

	if request.Password != "" && len(request.Password) < minPasswordLength {
		return utils.ErrPasswordTooShort
	}

	profile := &db_models.Profile{
		ID:         userID,
		FirstName:  request.FirstName,
		LastName:   request.LastName,
		Birthday:   birthday,
		SkillLevel: request.SkillLevel,
	}
	if err := p.profileRepo.Upsert(ctx, profile); err != nil {
		return utils.ErrDatabaseError
	}

	if request.Password != "" {
		hash, err := utils.HashPassword(request.Password)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if err := p.accountRepo.UpdatePasswordHash(ctx, userID, hash); err != nil {
			return utils.ErrDatabaseError
		}
	}

	return nil
}

package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peakparty/internal/models/db_models"
	"peakparty/internal/models/request_models"
	"peakparty/pkg/utils"
)

func newProfileEnv(store *memStore) ProfileServiceInterface {
	return NewProfileService(&profileRepoAdapter{s: store}, &accountRepoAdapter{s: store})
}

func TestUpsertOwnValidation(t *testing.T) {
	store := &memStore{}
	svc := newProfileEnv(store)
	userID := uuid.New()

	valid := request_models.UpsertProfileRequest{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Birthday:   "1990-12-10",
		SkillLevel: "AST 1",
	}

	cases := []struct {
		name    string
		mutate  func(r *request_models.UpsertProfileRequest)
		wantErr error
	}{
		{"missing first name", func(r *request_models.UpsertProfileRequest) { r.FirstName = "" }, utils.ErrInvalidInput},
		{"missing last name", func(r *request_models.UpsertProfileRequest) { r.LastName = "" }, utils.ErrInvalidInput},
		{"missing birthday", func(r *request_models.UpsertProfileRequest) { r.Birthday = "" }, utils.ErrInvalidBirthday},
		{"unparseable birthday", func(r *request_models.UpsertProfileRequest) { r.Birthday = "next tuesday" }, utils.ErrInvalidBirthday},
		{"future birthday", func(r *request_models.UpsertProfileRequest) { r.Birthday = "2999-01-01" }, utils.ErrInvalidBirthday},
		{"unknown skill level", func(r *request_models.UpsertProfileRequest) { r.SkillLevel = "AST 9" }, utils.ErrInvalidSkillLevel},
		{"short password", func(r *request_models.UpsertProfileRequest) { r.Password = "abc" }, utils.ErrPasswordTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			request := valid
			tc.mutate(&request)
			err := svc.UpsertOwn(context.Background(), userID, request)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, store.profiles)
		})
	}
}

func TestUpsertOwnCreatesAndUpdates(t *testing.T) {
	store := &memStore{}
	svc := newProfileEnv(store)
	userID := uuid.New()

	require.NoError(t, svc.UpsertOwn(context.Background(), userID, request_models.UpsertProfileRequest{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Birthday:   "1990-12-10",
		SkillLevel: "None",
	}))
	require.Len(t, store.profiles, 1)
	assert.Equal(t, userID, store.profiles[0].ID)
	assert.Equal(t, "None", store.profiles[0].SkillLevel)

	require.NoError(t, svc.UpsertOwn(context.Background(), userID, request_models.UpsertProfileRequest{
		FirstName:  "Ada",
		LastName:   "King",
		Birthday:   "1990-12-10",
		SkillLevel: "AST 2",
	}))
	require.Len(t, store.profiles, 1)
	assert.Equal(t, "King", store.profiles[0].LastName)
	assert.Equal(t, "AST 2", store.profiles[0].SkillLevel)

	profile, err := svc.GetOwn(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.FirstName)
	assert.Equal(t, "1990-12-10", profile.Birthday)
	assert.Equal(t, "AST 2", profile.SkillLevel)
}

func TestUpsertOwnPasswordChange(t *testing.T) {
	store := &memStore{}
	userID := uuid.New()
	oldHash, err := utils.HashPassword("old-password")
	require.NoError(t, err)
	store.accounts = append(store.accounts, db_models.Account{
		BaseModel:    db_models.BaseModel{ID: userID},
		Email:        "ada@example.com",
		PasswordHash: oldHash,
		Verified:     true,
	})

	svc := newProfileEnv(store)
	require.NoError(t, svc.UpsertOwn(context.Background(), userID, request_models.UpsertProfileRequest{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Birthday:   "1990-12-10",
		SkillLevel: "AST 1",
		Password:   "new-password",
	}))

	require.NoError(t, utils.ComparePasswords(store.accounts[0].PasswordHash, "new-password"))
	assert.Error(t, utils.ComparePasswords(store.accounts[0].PasswordHash, "old-password"))
}

func TestGetOwnMissingProfile(t *testing.T) {
	svc := newProfileEnv(&memStore{})
	profile, err := svc.GetOwn(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, profile.FirstName)
	assert.Empty(t, profile.SkillLevel)
}

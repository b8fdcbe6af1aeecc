package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"peakparty/internal/models/db_models"
	"peakparty/internal/models/request_models"
	"peakparty/internal/models/response_models"
	"peakparty/internal/repositories"
	"peakparty/pkg/memcache"
	"peakparty/pkg/utils"
)

const (
	minPasswordLength = 6
	verifyTokenTTL    = 24 * time.Hour
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	VerifyAccount(ctx context.Context, token string) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CurrentSession(ctx context.Context, userID *uuid.UUID) (*response_models.SessionResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	profileRepo repositories.ProfileRepository
	tokens      memcache.VerifyTokenStore
	notify      INotifyService
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	tokens memcache.VerifyTokenStore,
	notify INotifyService,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
		notify:      notify,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	if len(request.Password) < minPasswordLength {
		return utils.ErrPasswordTooShort
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}
	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		if err == utils.ErrEmailAlreadyExists {
			return err
		}
		return utils.ErrDatabaseError
	}

	if request.FirstName != "" || request.LastName != "" {
		profile := &db_models.Profile{
			ID:        newAccount.ID,
			FirstName: request.FirstName,
			LastName:  request.LastName,
		}
		if err := a.profileRepo.Upsert(ctx, profile); err != nil {
			return utils.ErrDatabaseError
		}
	}

	a.sendVerification(newAccount.Email)

	return nil
}

// sendVerification issues the single-use token and delivers the link
// best-effort. A failed delivery is logged, not surfaced: the account exists
// either way and the landing page explains the next step.
func (a *AccountService) sendVerification(email string) {
	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		log.Printf("Verification token generation failed for %s: %v", email, err)
		return
	}
	a.tokens.Set(token, email, verifyTokenTTL)

	link := fmt.Sprintf("%s/accounts/verify?token=%s",
		strings.TrimRight(os.Getenv("APP_BASE_URL"), "/"), url.QueryEscape(token))
	text := fmt.Sprintf("Welcome! Confirm your email to start joining parties: %s", link)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.notify.Send(ctx, email, "Verify your email", text); err != nil {
		log.Printf("Verification notification failed for %s: %v", email, err)
	}
}

func (a *AccountService) VerifyAccount(ctx context.Context, token string) error {
	email := a.tokens.Consume(token)
	if email == "" {
		return utils.ErrInvalidToken
	}

	if err := a.accountRepo.MarkVerified(ctx, email); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}
	if !account.Verified {
		return "", utils.ErrAccountNotVerified
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

// CurrentSession resolves the caller to an identity or Guest.
func (a *AccountService) CurrentSession(ctx context.Context, userID *uuid.UUID) (*response_models.SessionResponse, error) {
	if userID == nil {
		return &response_models.SessionResponse{
			Authenticated: false,
			DisplayName:   "Guest",
		}, nil
	}

	displayName := "Guest"
	profile, err := a.profileRepo.FindByID(ctx, *userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile != nil && profile.DisplayName() != "" {
		displayName = profile.DisplayName()
	}

	return &response_models.SessionResponse{
		Authenticated: true,
		UserID:        userID.String(),
		DisplayName:   displayName,
	}, nil
}

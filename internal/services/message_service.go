package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"peakparty/internal/models/db_models"
	"peakparty/internal/models/response_models"
	"peakparty/internal/repositories"
	"peakparty/pkg/namecache"
	"peakparty/pkg/utils"
)

type MessageServiceInterface interface {
	ListByParty(ctx context.Context, partyID string) ([]response_models.MessageResponse, error)
	PostMessage(ctx context.Context, partyID string, authorID uuid.UUID, content string) error
}

type MessageService struct {
	messageRepo    repositories.MessageRepository
	membershipRepo repositories.MembershipRepository
	partyRepo      repositories.PartyRepository
	profileRepo    repositories.ProfileRepository
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	membershipRepo repositories.MembershipRepository,
	partyRepo repositories.PartyRepository,
	profileRepo repositories.ProfileRepository,
) MessageServiceInterface {
	return &MessageService{
		messageRepo:    messageRepo,
		membershipRepo: membershipRepo,
		partyRepo:      partyRepo,
		profileRepo:    profileRepo,
	}
}

func (s *MessageService) ListByParty(ctx context.Context, partyID string) ([]response_models.MessageResponse, error) {
	id, err := uuid.Parse(partyID)
	if err != nil {
		return nil, utils.ErrInvalidPartyID
	}

	party, err := s.partyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if party == nil {
		return nil, utils.ErrPartyNotFound
	}

	messages, err := s.messageRepo.ListByParty(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// One lookup per distinct author per request, however often they post.
	cache := namecache.New(profileLookup(s.profileRepo))
	authorIDs := make([]uuid.UUID, 0, len(messages))
	for _, m := range messages {
		authorIDs = append(authorIDs, m.AuthorID)
	}
	names, err := cache.ResolveAll(ctx, authorIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, response_models.MessageResponse{
			ID:         m.ID.String(),
			AuthorID:   m.AuthorID.String(),
			AuthorName: names[m.AuthorID],
			Content:    m.Content,
			CreatedAt:  utils.FormatRFC3339(utils.FromUnixSeconds(m.CreatedAt)),
		})
	}
	return out, nil
}

// PostMessage appends to the thread. Blank content is rejected before any
// row is written; membership is required.
func (s *MessageService) PostMessage(ctx context.Context, partyID string, authorID uuid.UUID, content string) error {
	if strings.TrimSpace(content) == "" {
		return utils.ErrEmptyMessage
	}

	id, err := uuid.Parse(partyID)
	if err != nil {
		return utils.ErrInvalidPartyID
	}

	party, err := s.partyRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if party == nil {
		return utils.ErrPartyNotFound
	}

	isMember, err := s.membershipRepo.IsMember(ctx, id, authorID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !isMember {
		return utils.ErrNotMember
	}

	message := &db_models.Message{
		PartyID:  id,
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.messageRepo.Insert(ctx, message); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

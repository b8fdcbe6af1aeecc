package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"peakparty/internal/models/db_models"
	"peakparty/internal/models/response_models"
	"peakparty/internal/repositories"
	"peakparty/pkg/namecache"
	"peakparty/pkg/utils"
)

type PartyServiceInterface interface {
	AggregateByLocation(ctx context.Context, locationID int64, viewer *uuid.UUID) ([]response_models.PartySummaryResponse, error)
	GetPartyDetail(ctx context.Context, partyID string, viewer *uuid.UUID) (*response_models.PartyDetailResponse, error)
	CreateParty(ctx context.Context, userID uuid.UUID, name string, locationID int64, tripDate string, tripDuration int, description string) (string, error)
	JoinParty(ctx context.Context, partyID string, userID uuid.UUID) error
	DeleteParty(ctx context.Context, partyID string, userID uuid.UUID) error
}

type PartyService struct {
	partyRepo      repositories.PartyRepository
	membershipRepo repositories.MembershipRepository
	profileRepo    repositories.ProfileRepository
	accountRepo    repositories.AccountRepository
	locationRepo   repositories.LocationRepository
	notify         INotifyService
}

func NewPartyService(
	partyRepo repositories.PartyRepository,
	membershipRepo repositories.MembershipRepository,
	profileRepo repositories.ProfileRepository,
	accountRepo repositories.AccountRepository,
	locationRepo repositories.LocationRepository,
	notify INotifyService,
) PartyServiceInterface {
	return &PartyService{
		partyRepo:      partyRepo,
		membershipRepo: membershipRepo,
		profileRepo:    profileRepo,
		accountRepo:    accountRepo,
		locationRepo:   locationRepo,
		notify:         notify,
	}
}

// profileLookup adapts the profile repository to the name cache.
func profileLookup(profileRepo repositories.ProfileRepository) namecache.LookupFunc {
	return func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
		profiles, err := profileRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		names := make(map[uuid.UUID]string, len(profiles))
		for i := range profiles {
			names[profiles[i].ID] = profiles[i].DisplayName()
		}
		return names, nil
	}
}

// AggregateByLocation builds the display-ready party list for one location:
// parties first, then leader profiles and membership rows in parallel (the
// two have no data dependency), joined in memory.
func (s *PartyService) AggregateByLocation(ctx context.Context, locationID int64, viewer *uuid.UUID) ([]response_models.PartySummaryResponse, error) {
	location, err := s.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if location == nil {
		return nil, utils.ErrLocationNotFound
	}

	parties, err := s.partyRepo.ListByLocation(ctx, locationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(parties) == 0 {
		return []response_models.PartySummaryResponse{}, nil
	}

	leaderSet := make(map[uuid.UUID]bool, len(parties))
	var leaderIDs []uuid.UUID
	partyIDs := make([]uuid.UUID, 0, len(parties))
	for _, party := range parties {
		partyIDs = append(partyIDs, party.ID)
		if !leaderSet[party.LeaderID] {
			leaderSet[party.LeaderID] = true
			leaderIDs = append(leaderIDs, party.LeaderID)
		}
	}

	var (
		leaderNames map[uuid.UUID]string
		members     []db_models.PartyMember
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cache := namecache.New(profileLookup(s.profileRepo))
		names, err := cache.ResolveAll(gctx, leaderIDs)
		if err != nil {
			return err
		}
		leaderNames = names
		return nil
	})
	g.Go(func() error {
		rows, err := s.membershipRepo.ListByParties(gctx, partyIDs)
		if err != nil {
			return err
		}
		members = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, utils.ErrDatabaseError
	}

	membersByParty := make(map[uuid.UUID][]db_models.PartyMember, len(parties))
	for _, m := range members {
		membersByParty[m.PartyID] = append(membersByParty[m.PartyID], m)
	}

	out := make([]response_models.PartySummaryResponse, 0, len(parties))
	for _, party := range parties {
		roster := membersByParty[party.ID]

		isMember := false
		if viewer != nil {
			for _, m := range roster {
				if m.UserID == *viewer {
					isMember = true
					break
				}
			}
		}

		out = append(out, response_models.PartySummaryResponse{
			ID:          party.ID.String(),
			Name:        party.Name,
			LeaderID:    party.LeaderID.String(),
			LeaderName:  leaderNames[party.LeaderID],
			MemberCount: len(roster),
			MaxMembers:  db_models.MaxPartyMembers,
			IsMember:    isMember,
		})
	}

	return out, nil
}

func (s *PartyService) GetPartyDetail(ctx context.Context, partyID string, viewer *uuid.UUID) (*response_models.PartyDetailResponse, error) {
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

	members, err := s.membershipRepo.ListByParty(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	cache := namecache.New(profileLookup(s.profileRepo))
	nameIDs := make([]uuid.UUID, 0, len(members)+1)
	nameIDs = append(nameIDs, party.LeaderID)
	for _, m := range members {
		nameIDs = append(nameIDs, m.UserID)
	}
	names, err := cache.ResolveAll(ctx, nameIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	roster := make([]response_models.PartyMemberResponse, 0, len(members))
	isMember := false
	for _, m := range members {
		if viewer != nil && m.UserID == *viewer {
			isMember = true
		}
		roster = append(roster, response_models.PartyMemberResponse{
			UserID:      m.UserID.String(),
			DisplayName: names[m.UserID],
			JoinedAt:    utils.FormatRFC3339(utils.FromUnixSeconds(m.CreatedAt)),
		})
	}

	return &response_models.PartyDetailResponse{
		ID:           party.ID.String(),
		Name:         party.Name,
		LocationID:   party.LocationID,
		LeaderID:     party.LeaderID.String(),
		LeaderName:   names[party.LeaderID],
		TripDate:     utils.FormatDate(party.TripDate),
		TripDuration: party.TripDuration,
		Description:  party.Description,
		Members:      roster,
		MemberCount:  len(roster),
		IsMember:     isMember,
		IsOwner:      viewer != nil && *viewer == party.LeaderID,
	}, nil
}

func (s *PartyService) CreateParty(ctx context.Context, userID uuid.UUID, name string, locationID int64, tripDate string, tripDuration int, description string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: party name is required", utils.ErrInvalidInput)
	}
	date, err := utils.ParseDate(tripDate)
	if err != nil {
		return "", fmt.Errorf("%w: trip date is required", utils.ErrInvalidInput)
	}
	if tripDuration <= 0 {
		return "", fmt.Errorf("%w: trip duration must be a positive number", utils.ErrInvalidInput)
	}

	location, err := s.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if location == nil {
		return "", utils.ErrLocationNotFound
	}

	// The existence check gives the descriptive error; the unique index on
	// (location_id, name) catches the race loser with the same result.
	existing, err := s.partyRepo.FindByLocationAndName(ctx, locationID, name)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if existing != nil {
		return "", utils.ErrDuplicatePartyName
	}

	party := &db_models.Party{
		Name:         name,
		LocationID:   locationID,
		LeaderID:     userID,
		TripDate:     date,
		TripDuration: tripDuration,
		Description:  description,
	}
	if err := s.partyRepo.CreateWithLeader(ctx, party); err != nil {
		if err == utils.ErrDuplicatePartyName {
			return "", err
		}
		return "", utils.ErrDatabaseError
	}

	return party.ID.String(), nil
}

func (s *PartyService) JoinParty(ctx context.Context, partyID string, userID uuid.UUID) error {
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

	// Checked here for the fast rejection; re-checked under a row lock
	// inside Join.
	count, err := s.membershipRepo.CountByParty(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if count >= db_models.MaxPartyMembers {
		return utils.ErrPartyFull
	}

	if err := s.membershipRepo.Join(ctx, id, userID); err != nil {
		switch err {
		case utils.ErrPartyFull, utils.ErrAlreadyMember, utils.ErrPartyNotFound:
			return err
		}
		return utils.ErrDatabaseError
	}

	go s.notifyLeader(party, userID)

	return nil
}

// notifyLeader fires the best-effort join notification. Failures are logged
// only; the membership row is never rolled back.
func (s *PartyService) notifyLeader(party *db_models.Party, joinerID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	leader, err := s.accountRepo.FindByID(ctx, party.LeaderID)
	if err != nil || leader == nil {
		log.Printf("Join notification skipped: leader account lookup failed for party %s: %v", party.ID, err)
		return
	}

	joinerName := namecache.UnknownUser
	if profile, err := s.profileRepo.FindByID(ctx, joinerID); err == nil && profile != nil {
		if name := profile.DisplayName(); name != "" {
			joinerName = name
		}
	}

	text := fmt.Sprintf("Hello, %s has joined your party!", joinerName)
	if err := s.notify.Send(ctx, leader.Email, "New Party Member", text); err != nil {
		log.Printf("Join notification failed for party %s: %v", party.ID, err)
	}
}

func (s *PartyService) DeleteParty(ctx context.Context, partyID string, userID uuid.UUID) error {
	id, err := uuid.Parse(partyID)
	if err != nil {
		return utils.ErrInvalidPartyID
	}

	// Authorization re-validated against the live party row immediately
	// before the delete.
	party, err := s.partyRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if party == nil {
		return utils.ErrPartyNotFound
	}
	if party.LeaderID != userID {
		return utils.ErrNotPartyLeader
	}

	if err := s.partyRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

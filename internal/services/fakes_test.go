package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"peakparty/internal/models/db_models"
	"peakparty/pkg/utils"
)

var errBackend = errors.New("backend unavailable")

// memStore is an in-memory stand-in for the repository layer. It mirrors the
// repository contracts: (nil, nil) on not-found reads, sentinel errors from
// the cap and uniqueness checks, cascade on party delete.
type memStore struct {
	locations []db_models.Location
	parties   []db_models.Party
	members   []db_models.PartyMember
	messages  []db_models.Message
	profiles  []db_models.Profile
	accounts  []db_models.Account

	failParties  bool
	failMembers  bool
	failProfiles bool

	emailRaceOnInsert bool

	profileBatchCalls int
	messageInserts    int

	clock int64
}

func (s *memStore) nextTime() int64 {
	s.clock++
	return s.clock
}

// --- LocationRepository ---

func (s *memStore) ListAll(ctx context.Context) ([]db_models.Location, error) {
	return s.locations, nil
}

func (s *memStore) FindByID(ctx context.Context, id int64) (*db_models.Location, error) {
	for i := range s.locations {
		if s.locations[i].ID == id {
			return &s.locations[i], nil
		}
	}
	return nil, nil
}

// --- PartyRepository ---

func (s *memStore) ListByLocation(ctx context.Context, locationID int64) ([]db_models.Party, error) {
	if s.failParties {
		return nil, errBackend
	}
	var out []db_models.Party
	for _, p := range s.parties {
		if p.LocationID == locationID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memStore) FindPartyByID(ctx context.Context, id uuid.UUID) (*db_models.Party, error) {
	for i := range s.parties {
		if s.parties[i].ID == id {
			return &s.parties[i], nil
		}
	}
	return nil, nil
}

func (s *memStore) FindByLocationAndName(ctx context.Context, locationID int64, name string) (*db_models.Party, error) {
	for i := range s.parties {
		if s.parties[i].LocationID == locationID && s.parties[i].Name == name {
			return &s.parties[i], nil
		}
	}
	return nil, nil
}

func (s *memStore) CreateWithLeader(ctx context.Context, party *db_models.Party) error {
	if existing, _ := s.FindByLocationAndName(ctx, party.LocationID, party.Name); existing != nil {
		return utils.ErrDuplicatePartyName
	}
	if party.ID == uuid.Nil {
		party.ID = uuid.New()
	}
	party.CreatedAt = s.nextTime()
	s.parties = append(s.parties, *party)
	s.members = append(s.members, db_models.PartyMember{
		BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: s.nextTime()},
		PartyID:   party.ID,
		UserID:    party.LeaderID,
	})
	return nil
}

func (s *memStore) Delete(ctx context.Context, id uuid.UUID) error {
	var parties []db_models.Party
	for _, p := range s.parties {
		if p.ID != id {
			parties = append(parties, p)
		}
	}
	s.parties = parties

	// cascade, as the FK constraints would
	var members []db_models.PartyMember
	for _, m := range s.members {
		if m.PartyID != id {
			members = append(members, m)
		}
	}
	s.members = members

	var messages []db_models.Message
	for _, m := range s.messages {
		if m.PartyID != id {
			messages = append(messages, m)
		}
	}
	s.messages = messages
	return nil
}

// --- MembershipRepository ---

func (s *memStore) ListByParty(ctx context.Context, partyID uuid.UUID) ([]db_models.PartyMember, error) {
	if s.failMembers {
		return nil, errBackend
	}
	var out []db_models.PartyMember
	for _, m := range s.members {
		if m.PartyID == partyID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, nil
}

func (s *memStore) ListByParties(ctx context.Context, partyIDs []uuid.UUID) ([]db_models.PartyMember, error) {
	if s.failMembers {
		return nil, errBackend
	}
	wanted := make(map[uuid.UUID]bool, len(partyIDs))
	for _, id := range partyIDs {
		wanted[id] = true
	}
	var out []db_models.PartyMember
	for _, m := range s.members {
		if wanted[m.PartyID] {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memStore) CountByParty(ctx context.Context, partyID uuid.UUID) (int64, error) {
	var count int64
	for _, m := range s.members {
		if m.PartyID == partyID {
			count++
		}
	}
	return count, nil
}

func (s *memStore) IsMember(ctx context.Context, partyID, userID uuid.UUID) (bool, error) {
	for _, m := range s.members {
		if m.PartyID == partyID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) Join(ctx context.Context, partyID, userID uuid.UUID) error {
	if party, _ := s.FindPartyByID(ctx, partyID); party == nil {
		return utils.ErrPartyNotFound
	}
	count, _ := s.CountByParty(ctx, partyID)
	if count >= db_models.MaxPartyMembers {
		return utils.ErrPartyFull
	}
	if ok, _ := s.IsMember(ctx, partyID, userID); ok {
		return utils.ErrAlreadyMember
	}
	s.members = append(s.members, db_models.PartyMember{
		BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: s.nextTime()},
		PartyID:   partyID,
		UserID:    userID,
	})
	return nil
}

// --- ProfileRepository ---

func (s *memStore) FindProfileByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			return &s.profiles[i], nil
		}
	}
	return nil, nil
}

func (s *memStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Profile, error) {
	if s.failProfiles {
		return nil, errBackend
	}
	s.profileBatchCalls++
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []db_models.Profile
	for _, p := range s.profiles {
		if wanted[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memStore) Upsert(ctx context.Context, profile *db_models.Profile) error {
	for i := range s.profiles {
		if s.profiles[i].ID == profile.ID {
			s.profiles[i] = *profile
			return nil
		}
	}
	s.profiles = append(s.profiles, *profile)
	return nil
}

// --- AccountRepository ---

func (s *memStore) Insert(ctx context.Context, account *db_models.Account) error {
	for i := range s.accounts {
		if s.accounts[i].Email == account.Email {
			return utils.ErrEmailAlreadyExists
		}
	}
	if s.emailRaceOnInsert {
		// a concurrent signup won the unique index between the caller's
		// existence check and this insert
		return utils.ErrEmailAlreadyExists
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	s.accounts = append(s.accounts, *account)
	return nil
}

func (s *memStore) FindAccountByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return &s.accounts[i], nil
		}
	}
	return nil, nil
}

func (s *memStore) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	for i := range s.accounts {
		if s.accounts[i].Email == email {
			return &s.accounts[i], nil
		}
	}
	return nil, nil
}

func (s *memStore) MarkVerified(ctx context.Context, email string) error {
	for i := range s.accounts {
		if s.accounts[i].Email == email {
			s.accounts[i].Verified = true
		}
	}
	return nil
}

func (s *memStore) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			s.accounts[i].PasswordHash = hash
		}
	}
	return nil
}

// --- MessageRepository (separate type: ListByParty collides with the
// membership method on memStore) ---

type messageStore struct {
	s *memStore
}

func (m *messageStore) ListByParty(ctx context.Context, partyID uuid.UUID) ([]db_models.Message, error) {
	var out []db_models.Message
	for _, msg := range m.s.messages {
		if msg.PartyID == partyID {
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, nil
}

func (m *messageStore) Insert(ctx context.Context, message *db_models.Message) error {
	m.s.messageInserts++
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	message.CreatedAt = m.s.nextTime()
	m.s.messages = append(m.s.messages, *message)
	return nil
}

// partyRepoAdapter renames the uuid FindByID so memStore can carry both the
// location and party variants.
type partyRepoAdapter struct {
	s *memStore
}

func (a *partyRepoAdapter) ListByLocation(ctx context.Context, locationID int64) ([]db_models.Party, error) {
	return a.s.ListByLocation(ctx, locationID)
}

func (a *partyRepoAdapter) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Party, error) {
	return a.s.FindPartyByID(ctx, id)
}

func (a *partyRepoAdapter) FindByLocationAndName(ctx context.Context, locationID int64, name string) (*db_models.Party, error) {
	return a.s.FindByLocationAndName(ctx, locationID, name)
}

func (a *partyRepoAdapter) CreateWithLeader(ctx context.Context, party *db_models.Party) error {
	return a.s.CreateWithLeader(ctx, party)
}

func (a *partyRepoAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	return a.s.Delete(ctx, id)
}

type profileRepoAdapter struct {
	s *memStore
}

func (a *profileRepoAdapter) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	return a.s.FindProfileByID(ctx, id)
}

func (a *profileRepoAdapter) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Profile, error) {
	return a.s.FindByIDs(ctx, ids)
}

func (a *profileRepoAdapter) Upsert(ctx context.Context, profile *db_models.Profile) error {
	return a.s.Upsert(ctx, profile)
}

type accountRepoAdapter struct {
	s *memStore
}

func (a *accountRepoAdapter) Insert(ctx context.Context, account *db_models.Account) error {
	return a.s.Insert(ctx, account)
}

func (a *accountRepoAdapter) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	return a.s.FindAccountByID(ctx, id)
}

func (a *accountRepoAdapter) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return a.s.FindByEmail(ctx, email)
}

func (a *accountRepoAdapter) MarkVerified(ctx context.Context, email string) error {
	return a.s.MarkVerified(ctx, email)
}

func (a *accountRepoAdapter) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return a.s.UpdatePasswordHash(ctx, id, hash)
}

// fakeNotifier records deliveries; Sent is safe to read concurrently with
// the fire-and-forget join notification.
type fakeNotifier struct {
	mu   sync.Mutex
	sent []notifyPayload
	err  error
}

func (f *fakeNotifier) Send(ctx context.Context, to, subject, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, notifyPayload{To: to, Subject: subject, Text: text})
	return nil
}

func (f *fakeNotifier) Sent() []notifyPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]notifyPayload, len(f.sent))
	copy(out, f.sent)
	return out
}

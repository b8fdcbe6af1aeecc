package party_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"peakparty/internal/repositories"
	"peakparty/internal/services"
)

var Module = fx.Provide(
	providePartyRepo, provideMembershipRepo, providePartyService)

func providePartyRepo(db *gorm.DB) repositories.PartyRepository {
	return repositories.NewPartyRepository(db)
}

func provideMembershipRepo(db *gorm.DB) repositories.MembershipRepository {
	return repositories.NewMembershipRepository(db)
}

func providePartyService(
	partyRepo repositories.PartyRepository,
	membershipRepo repositories.MembershipRepository,
	profileRepo repositories.ProfileRepository,
	accountRepo repositories.AccountRepository,
	locationRepo repositories.LocationRepository,
	notify services.INotifyService,
) services.PartyServiceInterface {
	return services.NewPartyService(partyRepo, membershipRepo, profileRepo, accountRepo, locationRepo, notify)
}

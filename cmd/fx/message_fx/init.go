package message_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"peakparty/internal/repositories"
	"peakparty/internal/services"
)

var Module = fx.Provide(
	provideMessageRepo, provideMessageService)

func provideMessageRepo(db *gorm.DB) repositories.MessageRepository {
	return repositories.NewMessageRepository(db)
}

func provideMessageService(
	messageRepo repositories.MessageRepository,
	membershipRepo repositories.MembershipRepository,
	partyRepo repositories.PartyRepository,
	profileRepo repositories.ProfileRepository,
) services.MessageServiceInterface {
	return services.NewMessageService(messageRepo, membershipRepo, partyRepo, profileRepo)
}

package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"peakparty/internal/repositories"
	"peakparty/internal/services"
	"peakparty/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideTokenStore, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenStore() memcache.VerifyTokenStore {
	return memcache.NewVerifyTokens()
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	tokens memcache.VerifyTokenStore,
	notify services.INotifyService,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, profileRepo, tokens, notify)
}

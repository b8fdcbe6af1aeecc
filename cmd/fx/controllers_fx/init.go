package controllers_fx

import (
	"go.uber.org/fx"

	"peakparty/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewLocationsController),
	fx.Provide(controllers.NewPartiesController),
	fx.Provide(controllers.NewMessagesController),
	fx.Provide(controllers.NewProfilesController),
	fx.Provide(controllers.NewAccountController))

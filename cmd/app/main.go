package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"peakparty/cmd/fx/account_fx"
	"peakparty/cmd/fx/controllers_fx"
	"peakparty/cmd/fx/db_fx"
	"peakparty/cmd/fx/location_fx"
	"peakparty/cmd/fx/message_fx"
	"peakparty/cmd/fx/notify_fx"
	"peakparty/cmd/fx/party_fx"
	"peakparty/cmd/fx/profile_fx"
	"peakparty/cmd/fx/route_fx"
	"peakparty/internal/api/controllers"
	"peakparty/internal/infra"
	"peakparty/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		db_fx.Module,
		notify_fx.Module,
		location_fx.Module,
		route_fx.Module,
		account_fx.Module,
		profile_fx.Module,
		party_fx.Module,
		message_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) error {
	return infra.AutoMigrate(db)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	locationsController *controllers.LocationsController,
	partiesController *controllers.PartiesController,
	messagesController *controllers.MessagesController,
	profilesController *controllers.ProfilesController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, locationsController, partiesController, messagesController, profilesController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	locationsController *controllers.LocationsController,
	partiesController *controllers.PartiesController,
	messagesController *controllers.MessagesController,
	profilesController *controllers.ProfilesController,
	accountController *controllers.AccountController) {

	auth := middleware.JWTAuthMiddleware()
	optional := middleware.OptionalJWTMiddleware()

	locationsGroup := r.Group("/locations")
	locationsGroup.GET("", locationsController.GetAllLocations)
	locationsGroup.GET("/:id/route", locationsController.GetRouteOverlay)
	locationsGroup.GET("/:id/parties", optional, partiesController.ListByLocation)

	partiesGroup := r.Group("/parties")
	partiesGroup.POST("", auth, partiesController.CreateParty)
	partiesGroup.GET("/:id", optional, partiesController.GetPartyDetail)
	partiesGroup.POST("/:id/join", auth, partiesController.JoinParty)
	partiesGroup.DELETE("/:id", auth, partiesController.DeleteParty)
	partiesGroup.GET("/:id/messages", optional, messagesController.ListMessages)
	partiesGroup.POST("/:id/messages", auth, messagesController.PostMessage)

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.GET("/verify", accountController.Verify)
	accountsGroup.POST("/login", accountController.Login)
	accountsGroup.POST("/logout", auth, accountController.Logout)

	r.GET("/session", optional, accountController.Session)

	profilesGroup := r.Group("/profiles")
	profilesGroup.GET("/me", auth, profilesController.GetMe)
	profilesGroup.PUT("/me", auth, profilesController.UpdateMe)
}

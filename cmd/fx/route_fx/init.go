package route_fx

import (
	"net/http"
	"time"

	"go.uber.org/fx"

	"peakparty/internal/repositories"
	"peakparty/internal/services"
)

var Module = fx.Provide(
	provideRouteService)

func provideRouteService(locationRepo repositories.LocationRepository) services.RouteServiceInterface {
	client := &http.Client{Timeout: 15 * time.Second}
	return services.NewRouteService(locationRepo, client)
}

package notify_fx

import (
	"net/http"
	"os"
	"time"

	"go.uber.org/fx"

	"peakparty/internal/services"
)

var Module = fx.Provide(
	provideNotifyService)

func provideNotifyService() services.INotifyService {
	client := &http.Client{Timeout: 10 * time.Second}
	return services.NewHTTPNotifyService(os.Getenv("NOTIFY_URL"), client)
}

package httpx

import (
	"github.com/gofiber/fiber/v2"

	"face-gateway/ent"
	"face-gateway/internal/config"
	"face-gateway/internal/device"
	"face-gateway/internal/esx"
	"face-gateway/internal/httpx/devicectl"
	"face-gateway/internal/httpx/events"
	"face-gateway/internal/httpx/kit"
	"face-gateway/internal/httpx/mw"
	"face-gateway/internal/httpx/readings"
	"face-gateway/internal/ingest"
	"face-gateway/internal/redisx"
)

// ReadingsIndex is the search index shared by ingestion fan-out and the
// readings search endpoint.
const ReadingsIndex = "readings"

// Providers bundles the optional backends wired at startup. Nil members
// disable the corresponding feature instead of failing requests.
type Providers struct {
	Config  *config.Config
	Gateway *device.Gateway
	Ingest  *ingest.Service
	ES      *esx.Client
	RDB     *redisx.Client
}

// Register mounts all routes. The appliance-facing endpoints (event webhook
// and heartbeat) carry no auth and no rate limit: the device can do neither
// bearer tokens nor backoff. Operator endpoints require a token with the
// operator role.
func Register(app *fiber.App, client *ent.Client, p *Providers) {
	app.Get("/health", func(c *fiber.Ctx) error { return kit.OK(c, fiber.Map{"status": "ok"}) })

	app.Use(mw.JWTMiddleware(p.Config))

	api := app.Group("/api/v1")

	// Appliance-initiated
	api.Post("/device/events", events.WebhookHandler(p.Ingest))
	api.Get("/device/keep-alive", events.KeepAliveHandler(p.Config.Device.KeepAliveLog))

	// Operator-initiated
	op := api.Group("", mw.RateLimitDefault(p.RDB, 60, 120), mw.RequireOperator())
	op.Post("/device/commands", devicectl.CommandHandler(client, p.Gateway))
	op.Post("/device/users", devicectl.BatchUsersHandler(client, p.Gateway))
	op.Post("/device/face", devicectl.FaceUpdateHandler(client, p.Gateway))
	op.Get("/device/status", devicectl.StatusHandler(p.Gateway))
	op.Get("/readings", readings.ListHandler(client))
	op.Get("/readings/search", readings.SearchHandler(p.ES, ReadingsIndex))
}

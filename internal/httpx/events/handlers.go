// Package events receives recognition pushes from the appliance itself.
package events

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"face-gateway/internal/httpx/kit"
	"face-gateway/internal/ingest"
	"face-gateway/internal/logx"
	"face-gateway/pkg"
)

var eventsLogger = logx.GetScope("events")

// WebhookHandler ingests one recognition push. The appliance only
// understands two answers: 200 means "delivered, show my message", anything
// else means "retry". Business rejections are therefore 200 with
// auth=false; only malformed envelopes get a 400 and only storage failures
// a 500.
//
//	@Summary      Recognition event webhook
//	@Tags         events
//	@Accept       mpfd
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}
//	@Router       /api/v1/device/events [post]
func WebhookHandler(svc *ingest.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		out, err := svc.Process(ctx, string(c.Body()))
		if err != nil {
			if errors.Is(err, ingest.ErrNoPayload) || errors.Is(err, ingest.ErrInvalidEvent) {
				return kit.BadRequest("unreadable event envelope", err.Error())
			}
			return kit.InternalError("event ingestion failed", err.Error())
		}
		return c.Status(fiber.StatusOK).JSON(out)
	}
}

// KeepAliveHandler appends one line per appliance heartbeat to a plain text
// file. The file is the field technician's tool of choice: it survives log
// rotation and can be tailed on the box next to the device.
//
//	@Summary      Device heartbeat
//	@Tags         events
//	@Produce      json
//	@Success      200  {object}  map[string]string
//	@Router       /api/v1/device/keep-alive [get]
func KeepAliveHandler(path string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		line := fmt.Sprintf("Data: %s\n", time.Now().Format(pkg.TimestampLayout))
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err == nil {
			_, err = f.WriteString(line)
			_ = f.Close()
		}
		if err != nil {
			eventsLogger.Sugar().Warnw("keep-alive append failed", "path", path, "err", err)
		}
		// Appliance-shaped answer, not the operator envelope.
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"code":      "200",
			"auth":      "true",
			"timestamp": time.Now().Format(pkg.TimestampLayout),
		})
	}
}

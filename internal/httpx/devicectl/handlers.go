// Package devicectl exposes operator-facing appliance commands.
package devicectl

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"face-gateway/ent"
	"face-gateway/internal/device"
	"face-gateway/internal/httpx/kit"
	"face-gateway/internal/httpx/mw"
	"face-gateway/internal/logx"
)

var ctlLogger = logx.GetScope("devicectl")

// CommandRequest selects one appliance command. Payload fields are only
// read by the options that need them.
type CommandRequest struct {
	Option   string `json:"option"`
	UserID   string `json:"user_id,omitempty"`
	UserName string `json:"user_name,omitempty"`
	Photo    string `json:"photo,omitempty"`
}

// BatchUsersRequest mirrors the appliance's AccessUser.cgi body shape so
// operators can submit the same document they would send to the device.
type BatchUsersRequest struct {
	UserList []device.UserRecord `json:"UserList"`
}

// CommandHandler dispatches a single appliance command.
//
//	@Summary      Issue device command
//	@Description  Relay, snapshot, photo and card commands against the appliance
//	@Tags         device
//	@Accept       json
//	@Produce      json
//	@Param        body  body  devicectl.CommandRequest  true  "command"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      502   {object}  map[string]interface{}
//	@Failure      503   {object}  map[string]interface{}
//	@Router       /api/v1/device/commands [post]
func CommandHandler(client *ent.Client, gw *device.Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CommandRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid command body", err.Error())
		}
		option := strings.ToUpper(strings.TrimSpace(req.Option))
		if option == "" {
			return kit.BadRequest("option is required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 20*time.Second)
		defer cancel()

		out, degraded, err := runCommand(ctx, gw, option, &req)
		audit(c, client, option, out, degraded, err)
		if err != nil {
			return mapDeviceError(err)
		}
		return kit.OK(c, fiber.Map{"response": out, "degraded": degraded})
	}
}

func runCommand(ctx context.Context, gw *device.Gateway, option string, req *CommandRequest) (string, bool, error) {
	switch option {
	case "UNLOCK":
		out, err := gw.Unlock(ctx)
		return out, false, err
	case "LOCK":
		out, err := gw.Lock(ctx)
		return out, false, err
	case "SNAPSHOT":
		out, err := gw.Snapshot(ctx)
		return out, false, err
	case "PHOTO_UPDATE":
		if req.UserID == "" || req.Photo == "" {
			return "", false, kit.BadRequest("user_id and photo are required", nil)
		}
		out, err := gw.UpsertUserPhoto(ctx, req.UserID, req.Photo)
		return out, false, err
	case "CARD_ADD":
		if req.UserID == "" || req.UserName == "" {
			return "", false, kit.BadRequest("user_id and user_name are required", nil)
		}
		out, err := gw.ProvisionAccessCard(ctx, req.UserID, req.UserName)
		return out, false, err
	default:
		return "", false, kit.BadRequest("unknown option", option)
	}
}

// BatchUsersHandler validates and submits a user batch to the appliance.
// Validation failures never reach the device; an unreachable device fails
// before anything is sent, since the appliance applies batches atomically.
//
//	@Summary      Provision user batch
//	@Tags         device
//	@Accept       json
//	@Produce      json
//	@Param        body  body  devicectl.BatchUsersRequest  true  "user batch"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      503   {object}  map[string]interface{}
//	@Router       /api/v1/device/users [post]
func BatchUsersHandler(client *ent.Client, gw *device.Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req BatchUsersRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid batch body", err.Error())
		}
		if err := device.ValidateUserBatch(req.UserList); err != nil {
			var verr *device.ValidationError
			if errors.As(err, &verr) {
				return kit.BadRequest("batch validation failed", verr.Violations)
			}
			return kit.BadRequest("batch validation failed", err.Error())
		}

		ctx, cancel := context.WithTimeout(c.Context(), 25*time.Second)
		defer cancel()

		if !gw.CheckStatus(ctx) {
			audit(c, client, "USER_ADD", "", false, errors.New("liveness gate failed"))
			return kit.DeviceUnreachable("device did not answer liveness check", nil)
		}

		out, err := gw.UpsertUserBatch(ctx, req.UserList)
		audit(c, client, "USER_ADD", out, false, err)
		if err != nil {
			return mapDeviceError(err)
		}
		return kit.OK(c, fiber.Map{"response": out, "count": len(req.UserList)})
	}
}

// FaceUpdateRequest carries a FaceInfoManager update.
type FaceUpdateRequest struct {
	UserID   string   `json:"user_id"`
	UserName string   `json:"user_name"`
	Photos   []string `json:"photos,omitempty"`
}

// FaceUpdateHandler updates a face record, surfacing the form-encoded
// fallback as degraded so callers can tell a partial update from a full one.
//
//	@Summary      Update face record
//	@Tags         device
//	@Accept       json
//	@Produce      json
//	@Param        body  body  devicectl.FaceUpdateRequest  true  "face update"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      502   {object}  map[string]interface{}
//	@Router       /api/v1/device/face [post]
func FaceUpdateHandler(client *ent.Client, gw *device.Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req FaceUpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid face update body", err.Error())
		}
		if req.UserID == "" || req.UserName == "" {
			return kit.BadRequest("user_id and user_name are required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 20*time.Second)
		defer cancel()

		out, degraded, err := gw.UpdateFaceInfo(ctx, req.UserID, req.UserName, req.Photos)
		audit(c, client, "FACE_UPDATE", out, degraded, err)
		if err != nil {
			return mapDeviceError(err)
		}
		return kit.OK(c, fiber.Map{"response": out, "degraded": degraded})
	}
}

// StatusHandler reports appliance liveness.
//
//	@Summary      Device status
//	@Tags         device
//	@Produce      json
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/device/status [get]
func StatusHandler(gw *device.Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 6*time.Second)
		defer cancel()
		return kit.OK(c, fiber.Map{"online": gw.CheckStatus(ctx)})
	}
}

// audit writes one DeviceCommandLog row. Best effort: a full audit trail is
// not worth failing a command that already ran on the appliance.
func audit(c *fiber.Ctx, client *ent.Client, command, out string, degraded bool, err error) {
	status := "ok"
	detail := truncate(out, 500)
	switch {
	case err != nil:
		status = "failed"
		detail = err.Error()
	case degraded:
		status = "degraded"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, werr := client.DeviceCommandLog.Create().
		SetCommand(command).
		SetStatus(status).
		SetDetail(detail).
		SetOperator(mw.Operator(c)).
		Save(ctx)
	if werr != nil {
		ctlLogger.Sugar().Warnw("command audit write failed", "command", command, "err", werr)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// mapDeviceError translates gateway failures into API errors: an appliance
// that cannot be reached is a 503, one that answered and refused is a 502.
func mapDeviceError(err error) error {
	var ae *kit.APIError
	if errors.As(err, &ae) {
		return ae
	}
	var derr *device.Error
	if errors.As(err, &derr) {
		switch derr.Kind {
		case device.KindUnreachable:
			return kit.DeviceUnreachable("device unreachable", derr.Error())
		case device.KindAuthFailed:
			return kit.DeviceRefused("device rejected credentials", derr.Error())
		default:
			return kit.DeviceRefused("device rejected command", derr.Error())
		}
	}
	return kit.InternalError("device command failed", err.Error())
}

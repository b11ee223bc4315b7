package device

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"face-gateway/internal/logx"
)

// Appliance CGI endpoints. Paths are fixed by the device firmware.
const (
	uriUnlock       = "/cgi-bin/configManager.cgi?action=setConfig&AccessControl%5B0%5D.Method=32"
	uriLock         = "/cgi-bin/configManager.cgi?action=setConfig&AccessControl%5B0%5D.Method=0"
	uriSnapshot     = "/cgi-bin/snapshot.cgi"
	uriFaceInsert   = "/cgi-bin/AccessFace.cgi?action=insertMulti"
	uriFaceUpdate   = "/cgi-bin/AccessFace.cgi?action=updateMulti"
	uriUserInsert   = "/cgi-bin/AccessUser.cgi?action=insertMulti"
	uriFaceInfo     = "/cgi-bin/FaceInfoManager.cgi?action=update"
	uriCardProvider = "/cgi-bin/recordUpdater.cgi"
	uriStatus       = "/"
)

// Per-command timeouts. Heavier commands (photo payloads) get the long one.
const (
	commandTimeout  = 15 * time.Second
	snapshotTimeout = 10 * time.Second
	statusTimeout   = 5 * time.Second
)

// UserRecord is an appliance-side identity in the shape AccessUser.cgi
// expects. UserID must be unique within a single batch submission.
type UserRecord struct {
	UserID              string `json:"UserID"`
	UserName            string `json:"UserName"`
	UserType            int    `json:"UserType"`
	UseTime             int    `json:"UseTime"`
	IsFirstEnter        bool   `json:"IsFirstEnter"`
	FirstEnterDoors     []int  `json:"FirstEnterDoors"`
	UserStatus          int    `json:"UserStatus"`
	Authority           int    `json:"Authority"`
	CitizenIDNo         string `json:"CitizenIDNo"`
	Password            string `json:"Password"`
	Doors               []int  `json:"Doors"`
	TimeSections        []int  `json:"TimeSections"`
	SpecialDaysSchedule []int  `json:"SpecialDaysSchedule"`
	ValidFrom           string `json:"ValidFrom"`
	ValidTo             string `json:"ValidTo"`
}

// Gateway issues commands to the access-control appliance through an
// injected Transport.
type Gateway struct {
	transport Transport
	logger    *logx.Logger
}

func NewGateway(transport Transport) *Gateway {
	return &Gateway{transport: transport, logger: logx.GetScope("device.gateway")}
}

// Unlock releases the access-control relay. Idempotent; safe to retry.
func (g *Gateway) Unlock(ctx context.Context) (string, error) {
	return g.simpleGet(ctx, "unlock", uriUnlock)
}

// Lock engages the access-control relay. Idempotent; safe to retry.
func (g *Gateway) Lock(ctx context.Context) (string, error) {
	return g.simpleGet(ctx, "lock", uriLock)
}

func (g *Gateway) simpleGet(ctx context.Context, command, uri string) (string, error) {
	res, err := g.transport.Do(ctx, http.MethodGet, uri, nil, "", commandTimeout)
	if err != nil {
		return "", unreachable(command, err)
	}
	if err := classify(command, res); err != nil {
		return "", err
	}
	return string(res.Body), nil
}

// Snapshot captures a JPEG from the appliance camera and wraps it as a data
// URL for direct embedding.
func (g *Gateway) Snapshot(ctx context.Context) (string, error) {
	res, err := g.transport.Do(ctx, http.MethodGet, uriSnapshot, nil, "", snapshotTimeout)
	if err != nil {
		return "", unreachable("snapshot", err)
	}
	if err := classify("snapshot", res); err != nil {
		return "", err
	}
	ct := res.ContentType
	if ct == "" {
		ct = "image/jpeg"
	}
	payload := string(res.Body)
	if rawSnapshot(g.transport) {
		payload = base64.StdEncoding.EncodeToString(res.Body)
	}
	return "data:" + ct + ";base64," + payload, nil
}

// UpsertUserBatch submits a user batch to AccessUser.cgi insertMulti. The
// appliance applies the batch atomically; a non-2xx response means nothing
// was written. No automatic retry: the caller decides whether to resubmit.
func (g *Gateway) UpsertUserBatch(ctx context.Context, users []UserRecord) (string, error) {
	body, err := json.MarshalIndent(map[string]any{"UserList": users}, "", "    ")
	if err != nil {
		return "", err
	}
	res, err := g.transport.Do(ctx, http.MethodPost, uriUserInsert, body, "application/json", commandTimeout)
	if err != nil {
		return "", unreachable("user_batch", err)
	}
	if err := classify("user_batch", res); err != nil {
		return "", err
	}
	return string(res.Body), nil
}

// UpsertUserPhoto pushes a face photo through AccessFace.cgi. The appliance
// has no true upsert: insertMulti succeeds for new faces and updateMulti for
// existing ones, so both are attempted and their responses concatenated.
func (g *Gateway) UpsertUserPhoto(ctx context.Context, userID, photoBase64 string) (string, error) {
	// Strip a data:image/...;base64, prefix if the caller passed a data URL.
	if i := strings.Index(photoBase64, ","); i >= 0 && strings.HasPrefix(photoBase64, "data:") {
		photoBase64 = photoBase64[i+1:]
	}
	body, err := json.Marshal(map[string]any{
		"FaceList": []map[string]any{{"UserID": userID, "PhotoData": []string{photoBase64}}},
	})
	if err != nil {
		return "", err
	}

	insertRes, err := g.transport.Do(ctx, http.MethodPost, uriFaceInsert, body, "application/json", commandTimeout)
	if err != nil {
		return "", unreachable("face_photo", err)
	}
	if err := classify("face_photo", insertRes); err != nil {
		return "", err
	}

	updateRes, err := g.transport.Do(ctx, http.MethodPost, uriFaceUpdate, body, "application/json", commandTimeout)
	if err != nil {
		return "", unreachable("face_photo", err)
	}
	if err := classify("face_photo", updateRes); err != nil {
		return "", err
	}
	return string(insertRes.Body) + string(updateRes.Body), nil
}

// UpdateFaceInfo updates a user's face record through FaceInfoManager.cgi.
// The structured JSON request is primary; on any non-2xx the gateway retries
// with a minimal form-encoded body carrying only UserID and UserName (photo
// omitted). The returned degraded flag distinguishes the fallback from a
// full success, and the first attempt's status is logged so operators can
// tell "appliance wants the legacy format" from a genuine rejection.
func (g *Gateway) UpdateFaceInfo(ctx context.Context, userID, userName string, photos []string) (response string, degraded bool, err error) {
	payload := map[string]any{
		"UserID": userID,
		"Info":   map[string]any{"UserName": userName, "PhotoData": photos},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", false, err
	}

	res, err := g.transport.Do(ctx, http.MethodPost, uriFaceInfo, body, "application/json", commandTimeout)
	if err != nil {
		return "", false, unreachable("face_info", err)
	}
	if res.Status == http.StatusUnauthorized {
		return "", false, authFailed("face_info", res.Status, string(res.Body))
	}
	if res.Status >= 200 && res.Status < 300 {
		return string(res.Body), false, nil
	}

	g.logger.Warn("face info JSON update rejected; falling back to form encoding",
		zap.String("user_id", userID),
		zap.Int("first_status", res.Status),
	)
	form := url.Values{"UserID": {userID}, "UserName": {userName}}.Encode()
	fres, err := g.transport.Do(ctx, http.MethodPost, uriFaceInfo, []byte(form), "application/x-www-form-urlencoded", snapshotTimeout)
	if err != nil {
		return "", false, unreachable("face_info", err)
	}
	if err := classify("face_info", fres); err != nil {
		return "", false, err
	}
	return string(fres.Body), true, nil
}

// ProvisionAccessCard enrolls an access card bound to the given user on the
// appliance via recordUpdater.cgi.
func (g *Gateway) ProvisionAccessCard(ctx context.Context, userID, name string) (string, error) {
	q := url.Values{}
	q.Set("action", "insert")
	q.Set("name", "AccessControlCard")
	q.Set("CardNo", userID)
	q.Set("CardStatus", "0")
	q.Set("CardName", name)
	q.Set("UserID", userID)
	q.Set("Doors[0]", "0")
	q.Set("Password", "123456HASDSA")
	q.Set("TimeSections[0]", "255")
	q.Set("ValidDateStart", "20151022 093811")
	q.Set("ValidDateEnd", "20501222 093811")
	return g.simpleGet(ctx, "card_provision", uriCardProvider+"?"+q.Encode())
}

// CheckStatus reports whether the appliance answers at all. Used as a
// liveness gate before mutating commands.
func (g *Gateway) CheckStatus(ctx context.Context) bool {
	res, err := g.transport.Do(ctx, http.MethodGet, uriStatus, nil, "", statusTimeout)
	if err != nil {
		return false
	}
	return res.Status < 500
}

func classify(command string, res *Response) error {
	switch {
	case res.Status == http.StatusUnauthorized:
		return authFailed(command, res.Status, string(res.Body))
	case res.Status < 200 || res.Status >= 300:
		return rejected(command, res.Status, string(res.Body))
	}
	return nil
}

package devicectl

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"face-gateway/ent"
	"face-gateway/ent/devicecommandlog"
	"face-gateway/internal/device"
	testutil "face-gateway/internal/httpx/kit/testutil"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestApp(t *testing.T, client *ent.Client, gw *device.Gateway) *fiber.App {
	t.Helper()
	return testutil.NewApp(
		func(app *fiber.App) { app.Post("/device/commands", CommandHandler(client, gw)) },
		func(app *fiber.App) { app.Post("/device/users", BatchUsersHandler(client, gw)) },
		func(app *fiber.App) { app.Post("/device/face", FaceUpdateHandler(client, gw)) },
		func(app *fiber.App) { app.Get("/device/status", StatusHandler(gw)) },
	)
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, 30000)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

// deadTransport fails every call with a connection error.
type deadTransport struct{}

func (deadTransport) Do(context.Context, string, string, []byte, string, time.Duration) (*device.Response, error) {
	return nil, errors.New("connect: connection refused")
}

func auditRows(t *testing.T, client *ent.Client, command string) []*ent.DeviceCommandLog {
	t.Helper()
	rows, err := client.DeviceCommandLog.Query().
		Where(devicecommandlog.Command(command)).
		All(context.Background())
	if err != nil {
		t.Fatalf("query audit: %v", err)
	}
	return rows
}

func TestCommand_UnlockAgainstSimulatedDevice(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client, device.NewGateway(device.NewSimulatedTransport()))

	res := postJSON(t, app, "/device/commands", CommandRequest{Option: "unlock"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data struct {
			Response string `json:"response"`
			Degraded bool   `json:"degraded"`
		}
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Response != "OK\r\n" || env.Data.Degraded {
		t.Fatalf("data: %+v", env.Data)
	}

	rows := auditRows(t, client, "UNLOCK")
	if len(rows) != 1 || rows[0].Status != "ok" {
		t.Fatalf("audit rows: %+v", rows)
	}
}

func TestCommand_UnknownOption(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client, device.NewGateway(device.NewSimulatedTransport()))

	res := postJSON(t, app, "/device/commands", CommandRequest{Option: "SELF_DESTRUCT"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestCommand_UnreachableDeviceIs503(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client, device.NewGateway(deadTransport{}))

	res := postJSON(t, app, "/device/commands", CommandRequest{Option: "UNLOCK"})
	if res.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", res.StatusCode)
	}
	rows := auditRows(t, client, "UNLOCK")
	if len(rows) != 1 || rows[0].Status != "failed" {
		t.Fatalf("audit rows: %+v", rows)
	}
}

func TestCommand_FaceUpdateDegradedIsAudited(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.Header().Set("WWW-Authenticate", `Digest realm="dev", nonce="n", qop="auth"`)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		calls++
		if calls == 1 {
			http.Error(w, "bad payload", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte("OK\r\n"))
	}))
	defer srv.Close()

	client := newTestClient(t)
	app := newTestApp(t, client, device.NewGateway(device.NewRealTransport(srv.URL, "admin", "pw")))

	res := postJSON(t, app, "/device/face", FaceUpdateRequest{UserID: "6", UserName: "Alexandre"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Data struct {
			Degraded bool `json:"degraded"`
		}
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Data.Degraded {
		t.Fatal("fallback should surface as degraded")
	}
	rows := auditRows(t, client, "FACE_UPDATE")
	if len(rows) != 1 || rows[0].Status != "degraded" {
		t.Fatalf("audit rows: %+v", rows)
	}
}

func TestBatchUsers_ValidationStopsBeforeDevice(t *testing.T) {
	client := newTestClient(t)
	// A dead transport proves nothing was sent: validation fails first.
	app := newTestApp(t, client, device.NewGateway(deadTransport{}))

	res := postJSON(t, app, "/device/users", BatchUsersRequest{
		UserList: []device.UserRecord{{UserID: "abc", UserName: "X"}},
	})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var env struct {
		Details []string `json:"details"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Details) == 0 {
		t.Fatalf("expected accumulated violations, got %+v", env)
	}
}

func TestBatchUsers_LivenessGate(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client, device.NewGateway(deadTransport{}))

	res := postJSON(t, app, "/device/users", BatchUsersRequest{
		UserList: []device.UserRecord{{
			UserID: "1", UserName: "A", Password: "p",
			ValidFrom: "2020-01-01 00:00:00", ValidTo: "2050-12-22 09:38:11",
		}},
	})
	if res.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", res.StatusCode)
	}
	rows := auditRows(t, client, "USER_ADD")
	if len(rows) != 1 || rows[0].Status != "failed" {
		t.Fatalf("audit rows: %+v", rows)
	}
}

func TestBatchUsers_SubmitsValidBatch(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client, device.NewGateway(device.NewSimulatedTransport()))

	res := postJSON(t, app, "/device/users", BatchUsersRequest{
		UserList: []device.UserRecord{{
			UserID: "1", UserName: "A", Password: "p",
			ValidFrom: "2020-01-01 00:00:00", ValidTo: "2050-12-22 09:38:11",
		}},
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestStatus_Simulated(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(t, client, device.NewGateway(device.NewSimulatedTransport()))

	req := httptest.NewRequest(http.MethodGet, "/device/status", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var env struct {
		Data struct {
			Online bool `json:"online"`
		}
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Data.Online {
		t.Fatal("simulated device must report online")
	}
}

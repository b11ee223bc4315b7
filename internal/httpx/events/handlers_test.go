package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"face-gateway/ent"
	testutil "face-gateway/internal/httpx/kit/testutil"
	"face-gateway/internal/ingest"
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

func newTestService(t *testing.T, client *ent.Client) *ingest.Service {
	t.Helper()
	guard := ingest.NewGuard(30*time.Second, 1000)
	return ingest.NewService(client, guard, ingest.Options{FacilityID: "1", StoreWindow: 5 * time.Minute})
}

func envelopeFor(userID string) string {
	return "--myboundary\r\n" +
		"Content-Type: application/json\r\n" +
		"Content-Length: 60\r\n" +
		"\r\n" +
		fmt.Sprintf(`{"Events":[{"Data":{"UserID":%q,"ReaderID":"r1"}}]}`, userID) + "\r\n" +
		"--myboundary\r\n"
}

func postEvent(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/device/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "multipart/x-mixed-replace; boundary=myboundary")
	res, err := app.Test(req, 15000)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return res
}

func TestWebhook_RecognizedFace(t *testing.T) {
	client := newTestClient(t)
	_, err := client.Person.Create().SetFacialID("7").SetFullName("Alexandre Silva").Save(context.Background())
	if err != nil {
		t.Fatalf("seed person: %v", err)
	}
	app := testutil.NewApp(func(app *fiber.App) {
		app.Post("/device/events", WebhookHandler(newTestService(t, client)))
	})

	res := postEvent(t, app, envelopeFor("7"))
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var out ingest.Outcome
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Auth != "true" || out.Code != "200" || out.ReadingID == 0 {
		t.Fatalf("outcome: %+v", out)
	}
}

func TestWebhook_BusinessRejectionIsStill200(t *testing.T) {
	client := newTestClient(t)
	app := testutil.NewApp(func(app *fiber.App) {
		app.Post("/device/events", WebhookHandler(newTestService(t, client)))
	})

	res := postEvent(t, app, envelopeFor("999"))
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unknown face must still be 200, got %d", res.StatusCode)
	}
	var out ingest.Outcome
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Auth != "false" {
		t.Fatalf("outcome: %+v", out)
	}
}

func TestWebhook_MalformedEnvelopeIs400(t *testing.T) {
	client := newTestClient(t)
	app := testutil.NewApp(func(app *fiber.App) {
		app.Post("/device/events", WebhookHandler(newTestService(t, client)))
	})

	res := postEvent(t, app, "not a multipart body")
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestKeepAlive_AppendsHeartbeatLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keepalive.txt")
	app := testutil.NewApp(func(app *fiber.App) {
		app.Get("/device/keep-alive", KeepAliveHandler(path))
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/device/keep-alive", nil)
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if res.StatusCode != http.StatusOK {
			t.Fatalf("status=%d", res.StatusCode)
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read heartbeat file: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines=%d content=%q", len(lines), string(b))
	}
	if !strings.HasPrefix(lines[0], "Data: ") {
		t.Fatalf("line format: %q", lines[0])
	}
}

package readings

import (
	"context"
	"database/sql"
	"encoding/json"
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

func seedReading(t *testing.T, client *ent.Client, facialID, name, date, clock, facility string) {
	t.Helper()
	_, err := client.BiometricReading.Create().
		SetFacialID(facialID).
		SetSubjectName(name).
		SetReadDate(date).
		SetReadTime(clock).
		SetFacilityID(facility).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed reading: %v", err)
	}
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return res, body
}

func TestList_NewestFirstWithPaging(t *testing.T) {
	client := newTestClient(t)
	seedReading(t, client, "7", "Alexandre", "2026-08-27", "09:00:00", "1")
	seedReading(t, client, "7", "Alexandre", "2026-08-28", "08:00:00", "1")
	seedReading(t, client, "8", "Bruna", "2026-08-28", "10:30:00", "1")

	app := testutil.NewApp(func(app *fiber.App) { app.Get("/readings", ListHandler(client)) })
	res, body := get(t, app, "/readings?limit=2&with_total=true")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}

	items := body["data"].([]any)
	if len(items) != 2 {
		t.Fatalf("items=%d", len(items))
	}
	first := items[0].(map[string]any)
	if first["subject_name"] != "Bruna" {
		t.Fatalf("newest reading should come first: %+v", first)
	}
	meta := body["meta"].(map[string]any)
	if meta["total"].(float64) != 3 || meta["has_more"] != true {
		t.Fatalf("meta: %+v", meta)
	}
}

func TestList_Filters(t *testing.T) {
	client := newTestClient(t)
	seedReading(t, client, "7", "Alexandre", "2026-08-28", "08:00:00", "1")
	seedReading(t, client, "8", "Bruna", "2026-08-28", "09:00:00", "2")

	app := testutil.NewApp(func(app *fiber.App) { app.Get("/readings", ListHandler(client)) })

	_, body := get(t, app, "/readings?facility=2")
	if items := body["data"].([]any); len(items) != 1 {
		t.Fatalf("facility filter: %d items", len(items))
	}
	_, body = get(t, app, "/readings?name=Alex")
	if items := body["data"].([]any); len(items) != 1 {
		t.Fatalf("name filter: %d items", len(items))
	}
}

func TestList_RejectsNegativeOffset(t *testing.T) {
	client := newTestClient(t)
	app := testutil.NewApp(func(app *fiber.App) { app.Get("/readings", ListHandler(client)) })
	res, _ := get(t, app, "/readings?offset=-1")
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestSearch_RequiresQuery(t *testing.T) {
	app := testutil.NewApp(func(app *fiber.App) { app.Get("/readings/search", SearchHandler(nil, "readings")) })
	res, _ := get(t, app, "/readings/search")
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestSearch_DegradesWithoutBackend(t *testing.T) {
	app := testutil.NewApp(func(app *fiber.App) { app.Get("/readings/search", SearchHandler(nil, "readings")) })
	res, body := get(t, app, "/readings/search?q=Alexandre")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	data := body["data"].(map[string]any)
	if hits, ok := data["hits"].([]any); !ok || len(hits) != 0 {
		t.Fatalf("expected empty hits, got %+v", data)
	}
}

package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"face-gateway/ent"
	"face-gateway/ent/biometricreading"
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

func newTestService(t *testing.T, client *ent.Client) (*Service, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)}
	guard := NewGuard(30*time.Second, 1000)
	guard.now = clock.now
	svc := NewService(client, guard, Options{FacilityID: "1", StoreWindow: 5 * time.Minute})
	svc.now = clock.now
	return svc, clock
}

func registerPerson(t *testing.T, client *ent.Client, facialID, name string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := client.Person.Create().
		SetFacialID(facialID).
		SetFullName(name).
		SetCourt("2nd Criminal Court").
		SetRegime("open").
		SetCaseNumber("0001234-56.2026").
		Save(ctx)
	if err != nil {
		t.Fatalf("register person: %v", err)
	}
}

func envelopeFor(userID string) string {
	return "--myboundary\r\n" +
		"Content-Type: application/json\r\n" +
		"Content-Length: 60\r\n" +
		"\r\n" +
		fmt.Sprintf(`{"Events":[{"Data":{"UserID":%q,"ReaderID":"r1"}}]}`, userID) + "\r\n" +
		"--myboundary\r\n"
}

func countReadings(t *testing.T, client *ent.Client) int {
	t.Helper()
	n, err := client.BiometricReading.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count readings: %v", err)
	}
	return n
}

func TestProcess_UnregisteredFaceRejectedWithoutRow(t *testing.T) {
	client := newTestClient(t)
	svc, _ := newTestService(t, client)

	out, err := svc.Process(context.Background(), envelopeFor("999"))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if out.Auth != "false" || out.Code != "200" {
		t.Fatalf("outcome: %+v", out)
	}
	if countReadings(t, client) != 0 {
		t.Fatal("rejection must not persist a reading")
	}
}

func TestProcess_RecognizedFacePersistsReading(t *testing.T) {
	client := newTestClient(t)
	svc, _ := newTestService(t, client)
	registerPerson(t, client, "7", "Alexandre Silva")

	out, err := svc.Process(context.Background(), envelopeFor("7"))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if out.Auth != "true" || out.Code != "200" {
		t.Fatalf("outcome: %+v", out)
	}
	if out.ReadingID == 0 {
		t.Fatal("accepted outcome must carry the reading id")
	}

	row, err := client.BiometricReading.Query().Only(context.Background())
	if err != nil {
		t.Fatalf("exactly one reading expected: %v", err)
	}
	if row.SubjectName != "Alexandre Silva" || row.FacialID != "7" {
		t.Fatalf("row: %+v", row)
	}
	if row.Kind != "F" || row.PrintReceipt != "N" || row.FacilityID != "1" {
		t.Fatalf("defaults: %+v", row)
	}
	if row.ReadDate != "2026-08-28" || row.ReadTime != "10:00:00" {
		t.Fatalf("clock columns: %s %s", row.ReadDate, row.ReadTime)
	}
	subject, err := row.QuerySubject().Only(context.Background())
	if err != nil || subject.FacialID != "7" {
		t.Fatalf("reading not linked to subject: %v", err)
	}
}

func TestProcess_CacheSuppressesImmediateRepeat(t *testing.T) {
	client := newTestClient(t)
	svc, _ := newTestService(t, client)
	registerPerson(t, client, "7", "Alexandre Silva")

	if _, err := svc.Process(context.Background(), envelopeFor("7")); err != nil {
		t.Fatalf("first: %v", err)
	}
	out, err := svc.Process(context.Background(), envelopeFor("7"))
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if out.Auth != "false" {
		t.Fatalf("repeat should be suppressed: %+v", out)
	}
	if countReadings(t, client) != 1 {
		t.Fatalf("readings=%d", countReadings(t, client))
	}
}

func TestProcess_DurableWindowSurvivesCacheLoss(t *testing.T) {
	client := newTestClient(t)
	svc, clock := newTestService(t, client)
	registerPerson(t, client, "7", "Alexandre Silva")

	if _, err := svc.Process(context.Background(), envelopeFor("7")); err != nil {
		t.Fatalf("first: %v", err)
	}

	// Three minutes later, after a process restart: the cache is empty but
	// the store still remembers the reading.
	clock.advance(3 * time.Minute)
	fresh := NewGuard(30*time.Second, 1000)
	fresh.now = clock.now
	svc.guard = fresh

	out, err := svc.Process(context.Background(), envelopeFor("7"))
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if out.Auth != "false" {
		t.Fatalf("durable window should reject: %+v", out)
	}
	if countReadings(t, client) != 1 {
		t.Fatalf("readings=%d", countReadings(t, client))
	}
}

func TestProcess_AcceptsAgainAfterDurableWindow(t *testing.T) {
	client := newTestClient(t)
	svc, clock := newTestService(t, client)
	registerPerson(t, client, "7", "Alexandre Silva")

	if _, err := svc.Process(context.Background(), envelopeFor("7")); err != nil {
		t.Fatalf("first: %v", err)
	}
	clock.advance(10 * time.Minute)

	out, err := svc.Process(context.Background(), envelopeFor("7"))
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if out.Auth != "true" {
		t.Fatalf("window expired, should accept: %+v", out)
	}
	if countReadings(t, client) != 2 {
		t.Fatalf("readings=%d", countReadings(t, client))
	}
}

func TestProcess_WindowClipsAtMidnight(t *testing.T) {
	client := newTestClient(t)
	svc, clock := newTestService(t, client)
	registerPerson(t, client, "7", "Alexandre Silva")

	// Seed yesterday's late reading directly.
	_, err := client.BiometricReading.Create().
		SetReadDate("2026-08-27").
		SetReadTime("23:58:00").
		SetFacialID("7").
		SetSubjectName("Alexandre Silva").
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// 00:01, three minutes after yesterday's reading: the lexical window
	// only covers today, so the event is accepted.
	clock.t = time.Date(2026, 8, 28, 0, 1, 0, 0, time.UTC)
	out, err := svc.Process(context.Background(), envelopeFor("7"))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if out.Auth != "true" {
		t.Fatalf("yesterday's reading must not block today: %+v", out)
	}
	n, err := client.BiometricReading.Query().
		Where(biometricreading.ReadDate("2026-08-28")).
		Count(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("today's readings=%d err=%v", n, err)
	}
}

func TestProcess_MalformedBodies(t *testing.T) {
	client := newTestClient(t)
	svc, _ := newTestService(t, client)

	if _, err := svc.Process(context.Background(), "no boundary here"); !errors.Is(err, ErrNoPayload) {
		t.Fatalf("expected ErrNoPayload, got %v", err)
	}

	garbled := "--myboundary\r\nh1\r\nh2\r\nh3\r\n{broken\r\n--myboundary\r\n"
	if _, err := svc.Process(context.Background(), garbled); !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
}

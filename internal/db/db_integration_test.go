//go:build integration
// +build integration

package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"face-gateway/internal/config"
)

func Test_Open_With_PostgresContainer(t *testing.T) {
	ctx := context.Background()

	pg, err := postgres.RunContainer(ctx,
		postgres.WithDatabase("app"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithSQLDriver("pgx"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	if err != nil {
		t.Fatalf("get container host: %v", err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("get container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/app?sslmode=disable", host, port.Port())

	cfg := &config.Config{}
	cfg.PG.URL = dsn
	cfg.PG.MaxOpenConns = 5
	cfg.PG.MaxIdleConns = 2

	c, closeFn, err := Open(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer closeFn()

	ctx2, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := c.Schema.Create(ctx2); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	if _, err := c.Person.Query().Count(ctx2); err != nil {
		t.Fatalf("ent ping: %v", err)
	}

	p, err := c.Person.Create().
		SetFacialID("42").
		SetFullName("Integration Subject").
		Save(ctx2)
	if err != nil {
		t.Fatalf("create person: %v", err)
	}
	if p.FacilityID != "1" {
		t.Errorf("expected default facility '1', got %q", p.FacilityID)
	}

	// Readings keep string date/time columns; make sure they round-trip
	// through a real Postgres, not just sqlite.
	r, err := c.BiometricReading.Create().
		SetFacialID("42").
		SetSubjectName("Integration Subject").
		SetReadDate("2026-08-28").
		SetReadTime("10:00:00").
		SetSubject(p).
		Save(ctx2)
	if err != nil {
		t.Fatalf("create reading: %v", err)
	}
	if r.Kind != "F" || r.PrintReceipt != "N" {
		t.Errorf("reading defaults: %+v", r)
	}

	count, err := c.BiometricReading.Query().Count(ctx2)
	if err != nil {
		t.Fatalf("count readings: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 reading, got %d", count)
	}
}

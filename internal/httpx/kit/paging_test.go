package kit

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func parseFrom(t *testing.T, target string) (PagingParams, error) {
	t.Helper()
	var out PagingParams
	var perr error
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		out, perr = ParsePaging(c)
		return c.SendStatus(fiber.StatusOK)
	})
	if _, err := app.Test(httptest.NewRequest("GET", target, nil)); err != nil {
		t.Fatalf("request err: %v", err)
	}
	return out, perr
}

func TestParsePaging_Defaults(t *testing.T) {
	p, err := parseFrom(t, "/t")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Limit != 20 || p.Offset != 0 || p.WithTotal {
		t.Fatalf("params: %+v", p)
	}
}

func TestParsePaging_ClampsLimit(t *testing.T) {
	p, err := parseFrom(t, "/t?limit=5000")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Limit != 100 {
		t.Fatalf("limit=%d", p.Limit)
	}
}

func TestParsePaging_NegativeOffset(t *testing.T) {
	if _, err := parseFrom(t, "/t?offset=-3"); err == nil {
		t.Fatal("negative offset must be rejected")
	}
}

func TestPagingMeta(t *testing.T) {
	p := PagingParams{Limit: 10, Offset: 20}
	total := 55
	meta := p.Meta(10, &total)
	if *meta.NextOffset != 30 || !meta.HasMore || *meta.Total != 55 {
		t.Fatalf("meta: %+v", meta)
	}
	meta = p.Meta(3, nil)
	if meta.HasMore || meta.Count != 3 {
		t.Fatalf("meta: %+v", meta)
	}
}

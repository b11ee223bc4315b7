// Package readings serves the accepted-readings review endpoints.
package readings

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"face-gateway/ent"
	"face-gateway/ent/biometricreading"
	"face-gateway/internal/esx"
	"face-gateway/internal/httpx/kit"
)

// ListHandler returns readings newest first, optionally filtered by
// facility and subject name.
//
//	@Summary      List readings
//	@Tags         readings
//	@Produce      json
//	@Param        facility  query  string  false  "facility id"
//	@Param        name      query  string  false  "subject name substring"
//	@Param        limit     query  int     false  "page size"  default(20)
//	@Param        offset    query  int     false  "offset"     default(0)
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/readings [get]
func ListHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		q := client.BiometricReading.Query()
		if facility := c.Query("facility"); facility != "" {
			q = q.Where(biometricreading.FacilityID(facility))
		}
		if name := strings.TrimSpace(c.Query("name")); name != "" {
			q = q.Where(biometricreading.SubjectNameContains(name))
		}

		var total *int
		if pg.WithTotal {
			n, err := q.Clone().Count(ctx)
			if err != nil {
				return kit.InternalError("count readings failed", err.Error())
			}
			total = &n
		}

		items, err := q.
			Order(ent.Desc(biometricreading.FieldReadDate), ent.Desc(biometricreading.FieldReadTime)).
			Limit(pg.Limit).
			Offset(pg.Offset).
			All(ctx)
		if err != nil {
			return kit.InternalError("query readings failed", err.Error())
		}
		return kit.List(c, items, pg.Meta(len(items), total))
	}
}

// SearchHandler runs a full-text search over the reading index. Without a
// configured search backend it degrades to an empty result rather than an
// error, so the dashboard keeps working on minimal deployments.
//
//	@Summary      Search readings
//	@Tags         readings
//	@Produce      json
//	@Param        q  query  string  true  "query text"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}
//	@Router       /api/v1/readings/search [get]
func SearchHandler(es *esx.Client, index string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := strings.TrimSpace(c.Query("q"))
		if query == "" {
			return kit.BadRequest("q is required", nil)
		}
		pg, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		out, err := esx.SearchReadings(ctx, es, index, query, pg.Offset, pg.Limit)
		if err != nil {
			return kit.InternalError("search failed", err.Error())
		}
		return kit.OK(c, out)
	}
}

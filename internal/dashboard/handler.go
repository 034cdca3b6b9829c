package dashboard

import (
	"time"

	"chequeharmony-backend/internal/allocation"
	"chequeharmony-backend/internal/auth"
	"chequeharmony-backend/internal/models"
	"chequeharmony-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/dashboard/stats
func StatsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cheques := st.Cheques()

		// ADMIN dışındakiler yalnızca kendi şubesini görür
		if auth.CurrentRole(c) != models.RoleAdmin {
			branch := auth.CurrentBranch(c)
			filtered := make([]models.Cheque, 0, len(cheques))
			for _, ch := range cheques {
				if allocation.BelongsTo(ch, branch) {
					filtered = append(filtered, ch)
				}
			}
			cheques = filtered
		}

		return c.JSON(CalculateStats(cheques, time.Now()))
	}
}

// GET /api/dashboard/branch-metrics?date=YYYY-MM-DD. Tarih verilmezse bugün.
func BranchMetricsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		refDate := c.Query("date")
		if refDate == "" {
			refDate = time.Now().Format("2006-01-02")
		} else if _, err := time.Parse("2006-01-02", refDate); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih YYYY-MM-DD biçiminde olmalı")
		}

		metrics := BranchMetrics(st.Branches(), st.Cheques(), st.ChequeBooks(), refDate)

		// ADMIN dışındakiler yalnızca kendi şubesinin satırını görür
		if auth.CurrentRole(c) != models.RoleAdmin {
			branch := auth.CurrentBranch(c)
			filtered := make([]BranchMetric, 0, 1)
			for _, m := range metrics {
				if m.Name == branch {
					filtered = append(filtered, m)
				}
			}
			metrics = filtered
		}

		return c.JSON(metrics)
	}
}

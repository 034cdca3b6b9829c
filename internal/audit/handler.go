package audit

import (
	"chequeharmony-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

func ListAuditLogsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.AuditLogs())
	}
}

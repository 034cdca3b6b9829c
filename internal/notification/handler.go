package notification

import (
	"chequeharmony-backend/internal/auth"
	"chequeharmony-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/notifications. Herkes yalnızca kendi bildirimlerini görür.
func ListNotificationsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.Notifications(auth.CurrentUserID(c)))
	}
}

// POST /api/notifications/:id/read
func MarkReadHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		userID := auth.CurrentUserID(c)
		found := false
		for _, n := range st.Notifications(userID) {
			if n.ID == id {
				found = true
				break
			}
		}
		if !found {
			return fiber.NewError(fiber.StatusNotFound, "Bildirim bulunamadı")
		}

		if err := st.MarkNotificationRead(id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bildirim güncellenemedi")
		}

		return c.JSON(fiber.Map{"read": id})
	}
}

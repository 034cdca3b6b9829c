package settings

import (
	"errors"
	"log"

	"chequeharmony-backend/internal/audit"
	"chequeharmony-backend/internal/auth"
	"chequeharmony-backend/internal/models"
	"chequeharmony-backend/internal/stockalert"
	"chequeharmony-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

func GetSettingsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.Settings())
	}
}

func SaveSettingsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.AppSettings
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if err := st.SaveSettings(body); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ayarlar kaydedilemedi")
		}

		audit.Write(st, "Ayarlar güncellendi", "Uygulama ayarları değişti", auth.CurrentUserID(c))

		return c.JSON(body)
	}
}

func GetNotificationSettingsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.NotificationSettings())
	}
}

func SaveNotificationSettingsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.NotificationSettings
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.DefaultStockThreshold < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Eşik negatif olamaz")
		}

		if err := st.SaveNotificationSettings(body); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bildirim ayarları kaydedilemedi")
		}

		audit.Write(st, "Bildirim ayarları güncellendi", "Bildirim ayarları değişti", auth.CurrentUserID(c))

		// Eşik değişmiş olabilir, defterler yeniden değerlendirilir
		stockalert.Run(st)

		return c.JSON(body)
	}
}

// POST /api/sync/pull. Elektronik tablodaki veriyi indirir ve yerel
// koleksiyonların ÜZERİNE yazar. Birleştirme yapılmaz.
func SyncPullHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := st.LoadFromBackend(c.UserContext()); err != nil {
			if errors.Is(err, store.ErrNoScriptURL) {
				return fiber.NewError(fiber.StatusBadRequest, "Script URL tanımlı değil")
			}
			log.Printf("[ERROR] Senkronizasyon başarısız: %v", err)
			return fiber.NewError(fiber.StatusBadGateway, "Senkronizasyon başarısız, lütfen tekrar deneyin")
		}

		audit.Write(st, "Veri senkronize edildi", "Elektronik tablodan tam çekme", auth.CurrentUserID(c))
		stockalert.Run(st)

		return c.JSON(fiber.Map{"synced": true})
	}
}

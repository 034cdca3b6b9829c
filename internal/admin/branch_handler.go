package admin

import (
	"strings"

	"chequeharmony-backend/internal/audit"
	"chequeharmony-backend/internal/auth"
	"chequeharmony-backend/internal/models"
	"chequeharmony-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type branchRequest struct {
	Name string `json:"name"`
}

func ListBranchesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.Branches())
	}
}

func CreateBranchHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body branchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Şube adı zorunlu")
		}

		branch := models.Branch{ID: uuid.NewString(), Name: body.Name}
		if err := st.SaveBranch(branch); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şube kaydedilemedi")
		}

		audit.Write(st, "Şube eklendi", "Yeni şube: "+branch.Name, auth.CurrentUserID(c))

		return c.Status(fiber.StatusCreated).JSON(branch)
	}
}

func UpdateBranchHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body branchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Şube adı zorunlu")
		}

		for _, b := range st.Branches() {
			if b.ID != id {
				continue
			}

			// Dikkat: çekler şubeye AD ile bağlı; yeniden adlandırma eski
			// kayıtları sessizce yetim bırakır (bilinen davranış)
			b.Name = body.Name
			if err := st.SaveBranch(b); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Şube kaydedilemedi")
			}

			audit.Write(st, "Şube güncellendi", "Şube: "+b.Name, auth.CurrentUserID(c))
			return c.JSON(b)
		}

		return fiber.NewError(fiber.StatusNotFound, "Şube bulunamadı")
	}
}

// Silme, şubeyi referanslayan çek ve defterlere dokunmaz
func DeleteBranchHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		name := ""
		for _, b := range st.Branches() {
			if b.ID == id {
				name = b.Name
				break
			}
		}

		if err := st.DeleteBranch(id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şube silinemedi")
		}

		if name != "" {
			audit.Write(st, "Şube silindi", "Şube: "+name, auth.CurrentUserID(c))
		}

		return c.JSON(fiber.Map{"deleted": id})
	}
}

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

type userRequest struct {
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	Role      models.UserRole `json:"role"`
	Branch    string          `json:"branch"`
	AvatarURL string          `json:"avatarUrl"`
}

func sanitize(u models.User) models.User {
	u.Password = "" // Şifre/hash yanıtlarda yer almaz
	return u
}

func ListUsersHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users := st.Users()
		resp := make([]models.User, 0, len(users))
		for _, u := range users {
			resp = append(resp, sanitize(u))
		}
		return c.JSON(resp)
	}
}

func CreateUserHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body userRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Name == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email ve şifre zorunlu")
		}
		if !validRole(body.Role) {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz rol")
		}

		hash, err := auth.HashPassword(body.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user := models.User{
			ID:        uuid.NewString(),
			Name:      body.Name,
			Email:     body.Email,
			Password:  hash,
			Role:      body.Role,
			Branch:    body.Branch,
			AvatarURL: body.AvatarURL,
		}

		if err := st.SaveUser(user); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı oluşturulamadı")
		}

		audit.Write(st, "Kullanıcı eklendi", "Yeni kullanıcı: "+user.Name+" ("+string(user.Role)+")", auth.CurrentUserID(c))

		return c.Status(fiber.StatusCreated).JSON(sanitize(user))
	}
}

func UpdateUserHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body userRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		for _, u := range st.Users() {
			if u.ID != id {
				continue
			}

			if body.Name != "" {
				u.Name = body.Name
			}
			if body.Email != "" {
				u.Email = strings.TrimSpace(strings.ToLower(body.Email))
			}
			if body.Role != "" {
				if !validRole(body.Role) {
					return fiber.NewError(fiber.StatusBadRequest, "Geçersiz rol")
				}
				u.Role = body.Role
			}
			u.Branch = body.Branch
			if body.AvatarURL != "" {
				u.AvatarURL = body.AvatarURL
			}
			if body.Password != "" {
				hash, err := auth.HashPassword(body.Password)
				if err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
				}
				u.Password = hash
			}

			if err := st.SaveUser(u); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı kaydedilemedi")
			}

			audit.Write(st, "Kullanıcı güncellendi", "Kullanıcı: "+u.Name, auth.CurrentUserID(c))
			return c.JSON(sanitize(u))
		}

		return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
	}
}

func DeleteUserHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if id == auth.CurrentUserID(c) {
			return fiber.NewError(fiber.StatusBadRequest, "Kendi hesabınızı silemezsiniz")
		}

		name := ""
		for _, u := range st.Users() {
			if u.ID == id {
				name = u.Name
				break
			}
		}

		if err := st.DeleteUser(id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı silinemedi")
		}

		if name != "" {
			audit.Write(st, "Kullanıcı silindi", "Kullanıcı: "+name, auth.CurrentUserID(c))
		}

		return c.JSON(fiber.Map{"deleted": id})
	}
}

func validRole(r models.UserRole) bool {
	switch r {
	case models.RoleAdmin, models.RoleManager, models.RoleUser:
		return true
	}
	return false
}

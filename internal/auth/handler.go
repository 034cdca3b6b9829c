package auth

import (
	"strings"

	"chequeharmony-backend/internal/config"
	"chequeharmony-backend/internal/models"
	"chequeharmony-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func LoginHandler(cfg *config.Config, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var user *models.User
		for _, u := range st.Users() {
			if strings.ToLower(u.Email) == body.Email {
				user = &u
				break
			}
		}
		if user == nil || !CheckPassword(user.Password, body.Password) {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}

		token, err := GenerateToken(cfg.JWTSecret, user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":        user.ID,
				"name":      user.Name,
				"email":     user.Email,
				"role":      user.Role,
				"branch":    user.Branch,
				"avatarUrl": user.AvatarURL,
			},
		})
	}
}

func MeHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := CurrentUserID(c)

		for _, u := range st.Users() {
			if u.ID == userID {
				return c.JSON(fiber.Map{
					"id":        u.ID,
					"name":      u.Name,
					"email":     u.Email,
					"role":      u.Role,
					"branch":    u.Branch,
					"avatarUrl": u.AvatarURL,
				})
			}
		}

		// Veritabanında bulunamazsa token içeriğiyle yetinilir
		return c.JSON(fiber.Map{
			"id":     userID,
			"role":   CurrentRole(c),
			"branch": CurrentBranch(c),
		})
	}
}

// CheckPassword: yerel kayıtlar bcrypt hash taşır; e-tablodan çekilen
// eski kayıtlar düz metin olabilir, ikisi de kabul edilir.
func CheckPassword(stored, given string) bool {
	if stored == "" {
		return false
	}
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored == given
}

// HashPassword: kullanıcı kaydederken şifre alanını hash'ler
func HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

package admin

import (
	"strings"
	"time"

	"chequeharmony-backend/internal/audit"
	"chequeharmony-backend/internal/auth"
	"chequeharmony-backend/internal/dashboard"
	"chequeharmony-backend/internal/models"
	"chequeharmony-backend/internal/stockalert"
	"chequeharmony-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type chequeBookRequest struct {
	Name              string            `json:"name"`
	TotalLeaves       int               `json:"totalLeaves"`
	Status            models.BookStatus `json:"status"`
	BranchID          string            `json:"branchId"`
	LowStockThreshold *int              `json:"lowStockThreshold"`
}

type chequeBookResponse struct {
	models.ChequeBook
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// GET /api/admin/chequebooks. Kullanım her okumada yeniden hesaplanır,
// hiçbir yerde saklanmaz.
func ListChequeBooksHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		books := st.ChequeBooks()
		cheques := st.Cheques()

		resp := make([]chequeBookResponse, 0, len(books))
		for _, b := range books {
			used, total := dashboard.ChequeBookUsage(b.Name, cheques, books)
			remaining := total - used
			if remaining < 0 {
				remaining = 0
			}
			resp = append(resp, chequeBookResponse{ChequeBook: b, Used: used, Remaining: remaining})
		}

		return c.JSON(resp)
	}
}

func CreateChequeBookHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body chequeBookRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Defter adı zorunlu")
		}
		if body.TotalLeaves <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Yaprak sayısı pozitif olmalı")
		}

		status := body.Status
		if status == "" {
			status = models.BookActive
		}

		book := models.ChequeBook{
			ID:                uuid.NewString(),
			Name:              body.Name,
			TotalLeaves:       body.TotalLeaves,
			DateAdded:         time.Now().Format(time.RFC3339),
			Status:            status,
			BranchID:          body.BranchID,
			LowStockThreshold: body.LowStockThreshold,
		}

		if err := st.SaveChequeBook(book); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Defter kaydedilemedi")
		}

		audit.Write(st, "Çek defteri eklendi", "Yeni defter: "+book.Name, auth.CurrentUserID(c))

		// Eşik veya yaprak sayısı değişmiş olabilir, stok kontrolü çalışır
		stockalert.Run(st)

		return c.Status(fiber.StatusCreated).JSON(book)
	}
}

func UpdateChequeBookHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body chequeBookRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		for _, b := range st.ChequeBooks() {
			if b.ID != id {
				continue
			}

			if name := strings.TrimSpace(body.Name); name != "" {
				// Defter bağları da AD üzerinden kurulur; yeniden adlandırma
				// chequeBookRef alanlarını yetim bırakır (bilinen davranış)
				b.Name = name
			}
			if body.TotalLeaves > 0 {
				b.TotalLeaves = body.TotalLeaves
			}
			if body.Status != "" {
				b.Status = body.Status
			}
			b.BranchID = body.BranchID
			b.LowStockThreshold = body.LowStockThreshold

			if err := st.SaveChequeBook(b); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Defter kaydedilemedi")
			}

			audit.Write(st, "Çek defteri güncellendi", "Defter: "+b.Name, auth.CurrentUserID(c))
			stockalert.Run(st)

			return c.JSON(b)
		}

		return fiber.NewError(fiber.StatusNotFound, "Defter bulunamadı")
	}
}

func DeleteChequeBookHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		name := ""
		for _, b := range st.ChequeBooks() {
			if b.ID == id {
				name = b.Name
				break
			}
		}

		if err := st.DeleteChequeBook(id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Defter silinemedi")
		}

		if name != "" {
			audit.Write(st, "Çek defteri silindi", "Defter: "+name, auth.CurrentUserID(c))
		}

		return c.JSON(fiber.Map{"deleted": id})
	}
}

package cheque

import (
	"strings"
	"time"

	"chequeharmony-backend/internal/allocation"
	"chequeharmony-backend/internal/auth"
	"chequeharmony-backend/internal/models"
	"chequeharmony-backend/internal/stockalert"
	"chequeharmony-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Admin olmayan kullanıcılar kendi şubelerine sabitlenir; query ile
// başka şube istemeleri sonucu değiştirmez.
func enforcedBranch(c *fiber.Ctx) string {
	role := auth.CurrentRole(c)
	branch := auth.CurrentBranch(c)
	if role != models.RoleAdmin && branch != "" {
		return branch
	}
	return c.Query("branch")
}

func filterCheques(c *fiber.Ctx, st *store.Store) []models.Cheque {
	branch := enforcedBranch(c)
	status := c.Query("status")
	book := c.Query("chequebook")
	query := strings.ToLower(c.Query("q"))
	from := c.Query("from")
	to := c.Query("to")

	filtered := make([]models.Cheque, 0)
	for _, ch := range st.Cheques() {
		if branch != "" && !allocation.BelongsTo(ch, branch) {
			continue
		}
		if status != "" && status != "ALL" && string(ch.Status) != status {
			continue
		}
		if book != "" && ch.ChequeBookRef != book {
			continue
		}
		if from != "" && ch.Date < from {
			continue
		}
		if to != "" && ch.Date > to {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(ch.ChequeNumber + " " + ch.PayeeName + " " + ch.BankName)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		filtered = append(filtered, ch)
	}
	return filtered
}

// GET /api/cheques?q=&status=&branch=&chequebook=&from=&to=
func ListChequesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(filterCheques(c, st))
	}
}

// Tek split'li çekte ana şube split'in şubesidir; birden fazla split
// "Multi" olarak işaretlenir. Split toplamının çek tutarını tutması
// çağıranın sorumluluğundadır, burada doğrulanmaz.
func normalizeBranch(ch *models.Cheque) {
	switch {
	case len(ch.Splits) == 1:
		ch.Branch = ch.Splits[0].Branch
	case len(ch.Splits) > 1:
		ch.Branch = models.BranchMulti
	}
}

func applyDefaults(ch *models.Cheque, now time.Time) {
	if ch.ChequeNumber == "" {
		ch.ChequeNumber = "000000"
	}
	if ch.PayeeName == "" {
		ch.PayeeName = "Unknown"
	}
	if ch.Date == "" {
		ch.Date = now.Format("2006-01-02")
	}
}

// POST /api/cheques
func CreateChequeHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.Cheque
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		now := time.Now()
		body.ID = uuid.NewString()
		body.CreatedAt = now.Format(time.RFC3339)
		body.CreatedBy = auth.CurrentUserID(c)
		body.Status = models.StatusPending // Yeni çek her zaman beklemede başlar
		body.LastStatusChange = now.Format(time.RFC3339)
		applyDefaults(&body, now)
		normalizeBranch(&body)

		if err := st.SaveCheque(body); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çek kaydedilemedi")
		}

		// Yaprak kullanımı değişti, stok kontrolü tetiklenir
		stockalert.Run(st)

		return c.Status(fiber.StatusCreated).JSON(body)
	}
}

// PUT /api/cheques/:id
func UpdateChequeHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var existing *models.Cheque
		for _, ch := range st.Cheques() {
			if ch.ID == id {
				existing = &ch
				break
			}
		}
		if existing == nil {
			return fiber.NewError(fiber.StatusNotFound, "Çek bulunamadı")
		}

		var body models.Cheque
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		now := time.Now()
		body.ID = id
		if body.CreatedAt == "" {
			body.CreatedAt = existing.CreatedAt
		}
		if body.CreatedBy == "" {
			body.CreatedBy = existing.CreatedBy
		}
		if body.Status == "" {
			body.Status = existing.Status
		}
		body.LastStatusChange = now.Format(time.RFC3339)
		applyDefaults(&body, now)
		normalizeBranch(&body)

		if err := st.SaveCheque(body); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çek kaydedilemedi")
		}

		stockalert.Run(st)

		return c.JSON(body)
	}
}

type statusChangeRequest struct {
	Status models.ChequeStatus `json:"status"`
	Note   string              `json:"note"`
}

// POST /api/cheques/:id/status. Durum geçişi zaman damgası basar,
// opsiyonel not salt-ekleme notlar alanına işlenir.
func ChangeStatusHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body statusChangeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if !validStatus(body.Status) {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz çek durumu")
		}

		for _, ch := range st.Cheques() {
			if ch.ID != id {
				continue
			}

			now := time.Now()
			ch.Status = body.Status
			ch.LastStatusChange = now.Format(time.RFC3339)

			if body.Note != "" {
				label := "Durum Notu"
				if body.Status == models.StatusBounced {
					label = "Ret Gerekçesi"
				}
				noteText := "[" + now.Format("2006-01-02 15:04:05") + "] " + label + ": " + body.Note
				if ch.Notes != "" {
					ch.Notes = ch.Notes + "\n" + noteText
				} else {
					ch.Notes = noteText
				}
			}

			if err := st.SaveCheque(ch); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Çek kaydedilemedi")
			}

			stockalert.Run(st)
			return c.JSON(ch)
		}

		return fiber.NewError(fiber.StatusNotFound, "Çek bulunamadı")
	}
}

type batchStatusRequest struct {
	IDs    []string            `json:"ids"`
	Status models.ChequeStatus `json:"status"`
}

// POST /api/cheques/batch-status
func BatchStatusHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body batchStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if !validStatus(body.Status) {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz çek durumu")
		}

		ids := make(map[string]bool, len(body.IDs))
		for _, id := range body.IDs {
			ids[id] = true
		}

		now := time.Now().Format(time.RFC3339)
		updated := 0
		for _, ch := range st.Cheques() {
			if !ids[ch.ID] {
				continue
			}
			ch.Status = body.Status
			ch.LastStatusChange = now
			if err := st.SaveCheque(ch); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Çekler güncellenemedi")
			}
			updated++
		}

		stockalert.Run(st)

		return c.JSON(fiber.Map{"updated": updated})
	}
}

// DELETE /api/cheques/:id. Rota USER rolüne kapalıdır.
func DeleteChequeHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := st.DeleteCheque(id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çek silinemedi")
		}

		// Silinen çek yaprak iade eder, stok yeniden kontrol edilir
		stockalert.Run(st)

		return c.JSON(fiber.Map{"deleted": id})
	}
}

func validStatus(s models.ChequeStatus) bool {
	switch s {
	case models.StatusPending, models.StatusCleared, models.StatusBounced, models.StatusCancelled:
		return true
	}
	return false
}

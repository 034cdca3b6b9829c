package cheque

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"chequeharmony-backend/internal/auth"
	"chequeharmony-backend/internal/models"
	"chequeharmony-backend/internal/stockalert"
	"chequeharmony-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Şablon sütunları: Cheque Number, Amount, Payee Name, Date (YYYY-MM-DD),
// Bank Name, Branch, Chequebook Name, Notes

// POST /api/cheques/import. Multipart "file" alanında CSV bekler.
// Geçerli satırlar PENDING çek olarak topluca kaydedilir, hatalı
// satırlar satır numarasıyla raporlanır.
func ImportChequesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "CSV dosyası eksik (form alanı: file)")
		}

		f, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "CSV dosyası açılamadı")
		}
		defer f.Close()

		reader := csv.NewReader(f)
		reader.FieldsPerRecord = -1 // Eksik sütunlu satırlar aşağıda ele alınır

		rows, err := reader.ReadAll()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "CSV çözümlenemedi")
		}
		if len(rows) <= 1 {
			return fiber.NewError(fiber.StatusBadRequest, "CSV veri satırı içermiyor")
		}

		now := time.Now()
		userID := auth.CurrentUserID(c)
		userBranch := auth.CurrentBranch(c)

		newCheques := make([]models.Cheque, 0, len(rows)-1)
		importErrors := make([]string, 0)

		// İlk satır başlık, atlanır
		for i, row := range rows[1:] {
			rowNum := i + 2

			col := func(idx int) string {
				if idx < len(row) {
					return strings.TrimSpace(row[idx])
				}
				return ""
			}

			amount, err := strconv.ParseFloat(col(1), 64)
			if err != nil || amount < 0 {
				importErrors = append(importErrors, fmt.Sprintf("Satır %d: tutar geçersiz", rowNum))
				continue
			}

			dateStr := col(3)
			if _, err := time.Parse("2006-01-02", dateStr); err != nil {
				importErrors = append(importErrors, fmt.Sprintf("Satır %d: tarih YYYY-MM-DD biçiminde olmalı", rowNum))
				continue
			}

			branch := col(5)
			if branch == "" {
				branch = userBranch
			}
			if branch == "" {
				branch = models.BranchMulti
			}

			ch := models.Cheque{
				ID:            uuid.NewString(),
				ChequeNumber:  col(0),
				Amount:        amount,
				PayeeName:     col(2),
				Date:          dateStr,
				Status:        models.StatusPending, // İçe aktarılan çekler beklemede başlar
				BankName:      col(4),
				Branch:        branch,
				ChequeBookRef: col(6),
				Notes:         col(7),
				CreatedAt:     now.Format(time.RFC3339),
				CreatedBy:     userID,
			}
			applyDefaults(&ch, now)

			newCheques = append(newCheques, ch)
		}

		if len(newCheques) > 0 {
			if err := st.SaveChequesBatch(newCheques); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Çekler kaydedilemedi")
			}
			stockalert.Run(st)
		}

		return c.JSON(fiber.Map{
			"imported": len(newCheques),
			"errors":   importErrors,
		})
	}
}

package cheque

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"chequeharmony-backend/internal/models"
	"chequeharmony-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"ID", "Cheque Number", "Payee", "Amount", "Date", "Status",
	"Last Status Change", "Branch", "Split Details", "Chequebook",
}

func exportRow(ch models.Cheque) []string {
	splitDetails := make([]string, 0, len(ch.Splits))
	for _, sp := range ch.Splits {
		splitDetails = append(splitDetails, fmt.Sprintf("%s:%g", sp.Branch, sp.Amount))
	}

	return []string{
		ch.ID,
		ch.ChequeNumber,
		ch.PayeeName,
		strconv.FormatFloat(ch.Amount, 'f', 3, 64), // Tutarlar 3 hane (dinar kuruşu)
		ch.Date,
		string(ch.Status),
		ch.LastStatusChange,
		ch.Branch,
		strings.Join(splitDetails, " | "),
		ch.ChequeBookRef,
	}
}

// GET /api/cheques/export. Liste filtreleri dışa aktarmada da geçerli.
func ExportCSVHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cheques := filterCheques(c, st)

		var buf bytes.Buffer
		writer := csv.NewWriter(&buf)

		if err := writer.Write(exportHeaders); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "CSV oluşturulamadı")
		}
		for _, ch := range cheques {
			if err := writer.Write(exportRow(ch)); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "CSV oluşturulamadı")
			}
		}
		writer.Flush()

		filename := fmt.Sprintf("cheques_export_%s.csv", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(buf.Bytes())
	}
}

// GET /api/cheques/export-xlsx
func ExportXLSXHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cheques := filterCheques(c, st)

		f := excelize.NewFile()
		sheetName := "Çekler"
		index, err := f.NewSheet(sheetName)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışma sayfası oluşturulamadı")
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1")

		for i, h := range exportHeaders {
			cell := fmt.Sprintf("%c1", 'A'+i)
			f.SetCellValue(sheetName, cell, h)
		}

		for idx, ch := range cheques {
			row := idx + 2
			for i, v := range exportRow(ch) {
				cell := fmt.Sprintf("%c%d", 'A'+i, row)
				f.SetCellValue(sheetName, cell, v)
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "XLSX oluşturulamadı")
		}

		filename := fmt.Sprintf("cheques_export_%s.xlsx", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(buf.Bytes())
	}
}

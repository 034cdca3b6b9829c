// Paket dashboard: şube ve defter bazlı özet hesapları. Tüm değerler
// her çağrıda çek koleksiyonundan baştan hesaplanır; önbellek yoktur.
package dashboard

import (
	"chequeharmony-backend/internal/allocation"
	"chequeharmony-backend/internal/models"
)

// Defter adı hiçbir kayıtla eşleşmezse kullanım hesabı bu varsayılan
// yaprak sayısına düşer; sıfıra bölme ve çökme yaşanmaz.
const fallbackTotalLeaves = 50

type BookStock struct {
	Name      string  `json:"name"`
	Remaining int     `json:"remaining"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

type BranchMetric struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Outstanding  float64     `json:"outstanding"`
	Overdue      float64     `json:"overdue"`
	Upcoming     float64     `json:"upcoming"`
	PendingCount int         `json:"pendingCount"`
	Books        []BookStock `json:"books"`
}

// BranchMetrics: şube başına bekleyen tutar dağılımı ve aktif defter
// stoku. referenceDate YYYY-MM-DD biçimindedir; tarihler saat bilgisi
// taşımadığı için karşılaştırma metin üzerinden yapılır. Referans güne
// denk gelen vade gecikmiş DEĞİL, yaklaşan sayılır.
func BranchMetrics(branches []models.Branch, cheques []models.Cheque, books []models.ChequeBook, referenceDate string) []BranchMetric {
	metrics := make([]BranchMetric, 0, len(branches))

	for _, branch := range branches {
		m := BranchMetric{ID: branch.ID, Name: branch.Name, Books: []BookStock{}}

		for _, c := range cheques {
			if !allocation.BelongsTo(c, branch.Name) || c.Status != models.StatusPending {
				continue
			}

			amount := allocation.AmountFor(c, branch.Name)
			m.Outstanding += amount
			m.PendingCount++

			if c.Date < referenceDate {
				m.Overdue += amount
			} else {
				// Bugün dahil tüm gelecek vadeler "yaklaşan"
				m.Upcoming += amount
			}
		}

		// Şubeye id ile bağlı aktif defterlerin stok durumu
		for _, b := range books {
			if b.Status != models.BookActive || b.BranchID != branch.ID {
				continue
			}

			used, total := ChequeBookUsage(b.Name, cheques, books)
			remaining := total - used
			if remaining < 0 {
				remaining = 0
			}

			percent := 0.0
			if total > 0 {
				percent = float64(remaining) / float64(total) * 100
			}
			if percent < 0 {
				percent = 0
			} else if percent > 100 {
				percent = 100
			}

			m.Books = append(m.Books, BookStock{
				Name:      b.Name,
				Remaining: remaining,
				Total:     total,
				Percent:   percent,
			})
		}

		metrics = append(metrics, m)
	}

	return metrics
}

// ChequeBookUsage: kullanım chequeBookRef alanının defter ADIYLA birebir
// eşleşmesinden sayılır (büyük/küçük harf ve boşluk normalize edilmez).
// Defter bulunamazsa toplam, varsayılan yaprak sayısına düşer.
func ChequeBookUsage(bookName string, cheques []models.Cheque, books []models.ChequeBook) (used, total int) {
	for _, c := range cheques {
		if c.ChequeBookRef == bookName {
			used++
		}
	}

	total = fallbackTotalLeaves
	for _, b := range books {
		if b.Name == bookName {
			total = b.TotalLeaves
			break
		}
	}

	return used, total
}

package dashboard

import (
	"time"

	"chequeharmony-backend/internal/models"
)

// CalculateStats: üst kartlardaki genel sayılar. "Yaklaşan" sayacı
// bugünden itibaren 5 gün içinde vadesi gelen bekleyen çekleri sayar.
func CalculateStats(cheques []models.Cheque, now time.Time) models.DashboardStats {
	today := now.Format("2006-01-02")
	fiveDays := now.AddDate(0, 0, 5).Format("2006-01-02")

	stats := models.DashboardStats{TotalCount: len(cheques)}

	for _, c := range cheques {
		stats.TotalAmount += c.Amount

		switch c.Status {
		case models.StatusCleared:
			stats.ClearedCount++
			stats.ClearedAmount += c.Amount
		case models.StatusPending:
			stats.PendingCount++
			stats.PendingAmount += c.Amount
			if c.Date >= today && c.Date <= fiveDays {
				stats.UpcomingCount++
			}
		case models.StatusBounced:
			stats.BouncedCount++
		}
	}

	return stats
}

package dashboard

import (
	"testing"
	"time"

	"chequeharmony-backend/internal/models"
)

func TestCalculateStats(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	cheques := []models.Cheque{
		{ID: "c1", Amount: 1000, Status: models.StatusPending, Date: "2025-03-12"}, // 5 gün içinde
		{ID: "c2", Amount: 500, Status: models.StatusPending, Date: "2025-03-20"},  // 5 günden uzak
		{ID: "c3", Amount: 250, Status: models.StatusPending, Date: "2025-03-10"},  // bugün de yaklaşan
		{ID: "c4", Amount: 800, Status: models.StatusCleared, Date: "2025-03-01"},
		{ID: "c5", Amount: 300, Status: models.StatusBounced, Date: "2025-02-20"},
	}

	stats := CalculateStats(cheques, now)

	if stats.TotalCount != 5 {
		t.Errorf("toplam adet: %d, beklenen 5", stats.TotalCount)
	}
	if stats.TotalAmount != 2850 {
		t.Errorf("toplam tutar: %v, beklenen 2850", stats.TotalAmount)
	}
	if stats.PendingCount != 3 || stats.PendingAmount != 1750 {
		t.Errorf("bekleyen: %d adet / %v, beklenen 3 / 1750", stats.PendingCount, stats.PendingAmount)
	}
	if stats.ClearedCount != 1 || stats.ClearedAmount != 800 {
		t.Errorf("tahsil: %d adet / %v, beklenen 1 / 800", stats.ClearedCount, stats.ClearedAmount)
	}
	if stats.BouncedCount != 1 {
		t.Errorf("karşılıksız adet: %d, beklenen 1", stats.BouncedCount)
	}
	if stats.UpcomingCount != 2 {
		t.Errorf("yaklaşan adet: %d, beklenen 2 (bugün + 5 gün penceresi)", stats.UpcomingCount)
	}
}

package dashboard

import (
	"testing"

	"chequeharmony-backend/internal/models"
)

func TestBranchMetricsOverdueAndUpcoming(t *testing.T) {
	branches := []models.Branch{{ID: "b1", Name: "Menwar 01"}}
	cheques := []models.Cheque{
		{ID: "c1", Branch: "Menwar 01", Amount: 1000, Status: models.StatusPending, Date: "2025-03-09"},
		{ID: "c2", Branch: "Menwar 01", Amount: 400, Status: models.StatusPending, Date: "2025-03-15"},
		{ID: "c3", Branch: "Menwar 01", Amount: 900, Status: models.StatusCleared, Date: "2025-03-01"},
	}

	metrics := BranchMetrics(branches, cheques, nil, "2025-03-10")
	if len(metrics) != 1 {
		t.Fatalf("1 şube metriği bekleniyordu, geldi: %d", len(metrics))
	}

	m := metrics[0]
	if m.Outstanding != 1400 {
		t.Errorf("bekleyen toplam: %v, beklenen 1400", m.Outstanding)
	}
	if m.Overdue != 1000 {
		t.Errorf("gecikmiş: %v, beklenen 1000", m.Overdue)
	}
	if m.Upcoming != 400 {
		t.Errorf("yaklaşan: %v, beklenen 400", m.Upcoming)
	}
	if m.PendingCount != 2 {
		t.Errorf("bekleyen adet: %d, beklenen 2", m.PendingCount)
	}
}

// Referans güne denk gelen vade gecikmiş değil, yaklaşan sayılır
func TestBranchMetricsBoundaryDate(t *testing.T) {
	branches := []models.Branch{{ID: "b1", Name: "JN24"}}
	cheques := []models.Cheque{
		{ID: "c1", Branch: "JN24", Amount: 250, Status: models.StatusPending, Date: "2025-03-10"},
	}

	m := BranchMetrics(branches, cheques, nil, "2025-03-10")[0]
	if m.Overdue != 0 {
		t.Errorf("sınır tarihte gecikmiş 0 olmalı, geldi: %v", m.Overdue)
	}
	if m.Upcoming != 250 {
		t.Errorf("sınır tarihte yaklaşan 250 olmalı, geldi: %v", m.Upcoming)
	}
}

func TestBranchMetricsSplitCheque(t *testing.T) {
	branches := []models.Branch{
		{ID: "b1", Name: "A"},
		{ID: "b2", Name: "B"},
	}
	cheques := []models.Cheque{
		{
			ID:     "c1",
			Branch: models.BranchMulti,
			Amount: 300,
			Status: models.StatusPending,
			Date:   "2025-04-01",
			Splits: []models.ChequeSplit{
				{Branch: "A", Amount: 100},
				{Branch: "B", Amount: 200},
			},
		},
	}

	metrics := BranchMetrics(branches, cheques, nil, "2025-03-10")

	if metrics[0].Outstanding != 100 {
		t.Errorf("A bekleyen: %v, beklenen 100", metrics[0].Outstanding)
	}
	if metrics[1].Outstanding != 200 {
		t.Errorf("B bekleyen: %v, beklenen 200", metrics[1].Outstanding)
	}
	// Çek her iki şubede de birer kez sayılır
	if metrics[0].PendingCount != 1 || metrics[1].PendingCount != 1 {
		t.Errorf("split çek her iki şubede 1 adet sayılmalı: %d / %d",
			metrics[0].PendingCount, metrics[1].PendingCount)
	}
}

func TestBranchMetricsBookStock(t *testing.T) {
	branches := []models.Branch{{ID: "b1", Name: "Menwar 01"}}
	books := []models.ChequeBook{
		{ID: "bk1", Name: "Aktif Defter", TotalLeaves: 10, Status: models.BookActive, BranchID: "b1"},
		{ID: "bk2", Name: "Arşiv Defter", TotalLeaves: 10, Status: models.BookArchived, BranchID: "b1"},
		{ID: "bk3", Name: "Başka Şube", TotalLeaves: 10, Status: models.BookActive, BranchID: "b2"},
	}
	cheques := []models.Cheque{
		{ID: "c1", Branch: "Menwar 01", Status: models.StatusCleared, Date: "2025-01-01", ChequeBookRef: "Aktif Defter"},
		{ID: "c2", Branch: "Menwar 01", Status: models.StatusPending, Date: "2025-06-01", ChequeBookRef: "Aktif Defter"},
	}

	m := BranchMetrics(branches, cheques, books, "2025-03-10")[0]

	// Arşivli ve başka şubeye bağlı defterler listelenmez
	if len(m.Books) != 1 {
		t.Fatalf("1 defter bekleniyordu, geldi: %d", len(m.Books))
	}
	book := m.Books[0]
	if book.Remaining != 8 || book.Total != 10 {
		t.Errorf("stok: %d/%d, beklenen 8/10", book.Remaining, book.Total)
	}
	if book.Percent != 80 {
		t.Errorf("yüzde: %v, beklenen 80", book.Percent)
	}
}

func TestBookStockClampsAtZero(t *testing.T) {
	branches := []models.Branch{{ID: "b1", Name: "X"}}
	books := []models.ChequeBook{
		{ID: "bk1", Name: "Küçük Defter", TotalLeaves: 2, Status: models.BookActive, BranchID: "b1"},
	}
	// Kullanım toplam yaprağı aşıyor; kalan negatife düşmemeli
	cheques := []models.Cheque{
		{ID: "c1", Branch: "X", Status: models.StatusCleared, Date: "2025-01-01", ChequeBookRef: "Küçük Defter"},
		{ID: "c2", Branch: "X", Status: models.StatusCleared, Date: "2025-01-02", ChequeBookRef: "Küçük Defter"},
		{ID: "c3", Branch: "X", Status: models.StatusCleared, Date: "2025-01-03", ChequeBookRef: "Küçük Defter"},
	}

	m := BranchMetrics(branches, cheques, books, "2025-03-10")[0]
	if m.Books[0].Remaining != 0 {
		t.Errorf("kalan 0'a sabitlenmeli, geldi: %d", m.Books[0].Remaining)
	}
	if m.Books[0].Percent != 0 {
		t.Errorf("yüzde 0'a sabitlenmeli, geldi: %v", m.Books[0].Percent)
	}
}

func TestChequeBookUsage(t *testing.T) {
	books := []models.ChequeBook{
		{ID: "bk1", Name: "Menwar Chequebook", TotalLeaves: 25, Status: models.BookActive},
	}
	cheques := []models.Cheque{
		{ID: "c1", ChequeBookRef: "Menwar Chequebook"},
		{ID: "c2", ChequeBookRef: "Menwar Chequebook"},
		{ID: "c3", ChequeBookRef: "menwar chequebook"}, // büyük/küçük harf normalize edilmez
	}

	used, total := ChequeBookUsage("Menwar Chequebook", cheques, books)
	if used != 2 || total != 25 {
		t.Errorf("kullanım %d/%d, beklenen 2/25", used, total)
	}

	// Kayıtlı olmayan defter adı varsayılan yaprak sayısına düşer
	used, total = ChequeBookUsage("Hayalet Defter", cheques, books)
	if used != 0 || total != fallbackTotalLeaves {
		t.Errorf("bilinmeyen defter %d/%d, beklenen 0/%d", used, total, fallbackTotalLeaves)
	}
}

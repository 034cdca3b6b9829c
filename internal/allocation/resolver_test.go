package allocation

import (
	"testing"

	"chequeharmony-backend/internal/models"
)

func TestAmountForPrimaryBranch(t *testing.T) {
	c := models.Cheque{Branch: "Menwar 01", Amount: 1500}

	if got := AmountFor(c, "Menwar 01"); got != 1500 {
		t.Errorf("ana şube tutarı: %v, beklenen 1500", got)
	}
	if got := AmountFor(c, "JN24"); got != 0 {
		t.Errorf("eşleşmeyen şube 0 döndürmeli, geldi: %v", got)
	}
}

func TestAmountForSplits(t *testing.T) {
	c := models.Cheque{
		Branch: models.BranchMulti,
		Amount: 300,
		Splits: []models.ChequeSplit{
			{Branch: "A", Amount: 100},
			{Branch: "B", Amount: 200},
		},
	}

	if got := AmountFor(c, "A"); got != 100 {
		t.Errorf("A payı: %v, beklenen 100", got)
	}
	if got := AmountFor(c, "B"); got != 200 {
		t.Errorf("B payı: %v, beklenen 200", got)
	}

	// Split varken ana şube alanı devre dışıdır
	if got := AmountFor(c, models.BranchMulti); got != 0 {
		t.Errorf("Multi için 0 beklenir, geldi: %v", got)
	}
	if got := AmountFor(c, "C"); got != 0 {
		t.Errorf("listede olmayan şube için 0 beklenir, geldi: %v", got)
	}

	// Payların toplamı çek tutarını verir
	if sum := AmountFor(c, "A") + AmountFor(c, "B"); sum != c.Amount {
		t.Errorf("pay toplamı %v, çek tutarı %v", sum, c.Amount)
	}
}

func TestBelongsTo(t *testing.T) {
	plain := models.Cheque{Branch: "Menwar 01", Amount: 500}
	if !BelongsTo(plain, "Menwar 01") {
		t.Error("ana şube aidiyeti bekleniyordu")
	}
	if BelongsTo(plain, "JN24") {
		t.Error("eşleşmeyen şube aidiyet saymamalı")
	}

	// Tutarı 0 olan split satırı da aidiyet sayılır
	split := models.Cheque{
		Branch: models.BranchMulti,
		Amount: 100,
		Splits: []models.ChequeSplit{
			{Branch: "A", Amount: 100},
			{Branch: "B", Amount: 0},
		},
	}
	if !BelongsTo(split, "B") {
		t.Error("sıfır tutarlı split aidiyet saymalı")
	}
	if BelongsTo(split, models.BranchMulti) {
		t.Error("split varken ana şube alanı aidiyet saymamalı")
	}
}

package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"chequeharmony-backend/internal/models"
)

// Snapshot: uzak ucun getAll yanıtı. Alan adları Apps Script
// sözleşmesiyle birebir aynıdır.
type Snapshot struct {
	Cheques     []models.Cheque     `json:"cheques"`
	Branches    []models.Branch     `json:"branches"`
	ChequeBooks []models.ChequeBook `json:"chequeBooks"`
	Users       []models.User       `json:"users"`
}

// FetchAll: uzak koleksiyonları topluca çeker. Push'un aksine hata
// çağırana döner; pull sonucu kullanıcıya bildirilir.
func FetchAll(ctx context.Context, scriptURL string) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, scriptURL+"?action=getAll", nil)
	if err != nil {
		return nil, fmt.Errorf("senkron isteği oluşturulamadı: %w", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("senkron isteği başarısız: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("senkron ucu %d döndürdü", resp.StatusCode)
	}

	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("senkron yanıtı çözümlenemedi: %w", err)
	}

	return &snap, nil
}

package store

import (
	"chequeharmony-backend/internal/models"
	"chequeharmony-backend/internal/syncer"
)

func (s *Store) Cheques() []models.Cheque {
	return loadCollection(s, keyCheques, seedCheques)
}

// SaveCheque: id üzerinden upsert. Yerel yazma başarılıysa uzak uca
// SAVE_CHEQUE kuyruklanır; gönderim hatası çağırana yansımaz.
func (s *Store) SaveCheque(c models.Cheque) error {
	cheques := s.Cheques()

	found := false
	for i := range cheques {
		if cheques[i].ID == c.ID {
			cheques[i] = c
			found = true
			break
		}
	}
	if !found {
		cheques = append(cheques, c)
	}

	if err := s.saveRaw(keyCheques, cheques); err != nil {
		return err
	}

	s.push(syncer.ActionSaveCheque, map[string]any{"cheque": c})
	return nil
}

// SaveChequesBatch: toplu içe aktarma; yeni çekler listenin sonuna eklenir
func (s *Store) SaveChequesBatch(newCheques []models.Cheque) error {
	cheques := append(s.Cheques(), newCheques...)

	if err := s.saveRaw(keyCheques, cheques); err != nil {
		return err
	}

	s.push(syncer.ActionSaveBatchCheques, map[string]any{"cheques": newCheques})
	return nil
}

func (s *Store) DeleteCheque(id string) error {
	cheques := s.Cheques()

	filtered := cheques[:0]
	for _, c := range cheques {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}

	if err := s.saveRaw(keyCheques, filtered); err != nil {
		return err
	}

	s.push(syncer.ActionDeleteCheque, map[string]any{"id": id})
	return nil
}

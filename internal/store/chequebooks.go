package store

import (
	"chequeharmony-backend/internal/models"
	"chequeharmony-backend/internal/syncer"
)

func (s *Store) ChequeBooks() []models.ChequeBook {
	return loadCollection(s, keyBooks, seedChequeBooks)
}

func (s *Store) SaveChequeBook(b models.ChequeBook) error {
	books := s.ChequeBooks()

	found := false
	for i := range books {
		if books[i].ID == b.ID {
			books[i] = b
			found = true
			break
		}
	}
	if !found {
		books = append(books, b)
	}

	if err := s.saveRaw(keyBooks, books); err != nil {
		return err
	}

	s.push(syncer.ActionSaveChequeBook, map[string]any{"chequeBook": b})
	return nil
}

func (s *Store) DeleteChequeBook(id string) error {
	books := s.ChequeBooks()

	filtered := books[:0]
	for _, b := range books {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}

	if err := s.saveRaw(keyBooks, filtered); err != nil {
		return err
	}

	s.push(syncer.ActionDeleteChequeBook, map[string]any{"id": id})
	return nil
}

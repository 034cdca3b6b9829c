package store

import (
	"chequeharmony-backend/internal/models"
	"chequeharmony-backend/internal/syncer"
)

func (s *Store) Branches() []models.Branch {
	return loadCollection(s, keyBranches, seedBranches)
}

func (s *Store) SaveBranch(b models.Branch) error {
	branches := s.Branches()

	found := false
	for i := range branches {
		if branches[i].ID == b.ID {
			branches[i] = b
			found = true
			break
		}
	}
	if !found {
		branches = append(branches, b)
	}

	if err := s.saveRaw(keyBranches, branches); err != nil {
		return err
	}

	s.push(syncer.ActionSaveBranch, map[string]any{"branch": b})
	return nil
}

// DeleteBranch: silme, şubeye ad/id ile bağlı çek ve defterlere dokunmaz;
// yetim referanslar görünümde "Atanmamış" olarak düşer.
func (s *Store) DeleteBranch(id string) error {
	branches := s.Branches()

	filtered := branches[:0]
	for _, b := range branches {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}

	if err := s.saveRaw(keyBranches, filtered); err != nil {
		return err
	}

	s.push(syncer.ActionDeleteBranch, map[string]any{"id": id})
	return nil
}

package store

import (
	"chequeharmony-backend/internal/models"
	"chequeharmony-backend/internal/syncer"
)

func (s *Store) Users() []models.User {
	return loadCollection(s, keyUsers, seedUsers)
}

func (s *Store) SaveUser(u models.User) error {
	users := s.Users()

	found := false
	for i := range users {
		if users[i].ID == u.ID {
			users[i] = u
			found = true
			break
		}
	}
	if !found {
		users = append(users, u)
	}

	if err := s.saveRaw(keyUsers, users); err != nil {
		return err
	}

	s.push(syncer.ActionSaveUser, map[string]any{"user": u})
	return nil
}

func (s *Store) DeleteUser(id string) error {
	users := s.Users()

	filtered := users[:0]
	for _, u := range users {
		if u.ID != id {
			filtered = append(filtered, u)
		}
	}

	if err := s.saveRaw(keyUsers, filtered); err != nil {
		return err
	}

	s.push(syncer.ActionDeleteUser, map[string]any{"id": id})
	return nil
}

package store

import (
	"time"

	"chequeharmony-backend/internal/models"

	"github.com/google/uuid"
)

// Notifications: userID boşsa tüm listeyi döndürür (tekilleştirme
// kontrolü tam listeye bakar). Liste en yeni kayıt başta tutulur.
func (s *Store) Notifications(userID string) []models.Notification {
	all := loadCollection(s, keyNotifications, seedNotifications)
	if userID == "" {
		return all
	}

	filtered := make([]models.Notification, 0)
	for _, n := range all {
		if n.UserID == userID {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

// CreateNotification: id, okunmadı bayrağı ve tarih burada atanır,
// kayıt listenin başına eklenir.
func (s *Store) CreateNotification(n models.Notification) error {
	all := s.Notifications("")

	n.ID = uuid.NewString()
	n.Read = false
	n.Date = time.Now().Format(time.RFC3339)

	all = append([]models.Notification{n}, all...)
	return s.saveRaw(keyNotifications, all)
}

// MarkNotificationRead: yalnızca read bayrağını çevirir; bildirim
// hiçbir akışta silinmez.
func (s *Store) MarkNotificationRead(id string) error {
	all := s.Notifications("")

	for i := range all {
		if all[i].ID == id {
			all[i].Read = true
		}
	}
	return s.saveRaw(keyNotifications, all)
}

package store

import (
	"encoding/json"

	"chequeharmony-backend/internal/models"
)

func (s *Store) Settings() models.AppSettings {
	if raw, ok := s.loadRaw(keySettings); ok {
		var settings models.AppSettings
		if err := json.Unmarshal([]byte(raw), &settings); err == nil {
			return settings
		}
	}
	return models.AppSettings{}
}

func (s *Store) SaveSettings(settings models.AppSettings) error {
	return s.saveRaw(keySettings, settings)
}

// ScriptURL: outbox ve pull tarafının adres sağlayıcısı; her çağrıda
// güncel ayar okunur.
func (s *Store) ScriptURL() string {
	return s.Settings().ScriptURL
}

func (s *Store) NotificationSettings() models.NotificationSettings {
	if raw, ok := s.loadRaw(keyNotifSettings); ok {
		var settings models.NotificationSettings
		if err := json.Unmarshal([]byte(raw), &settings); err == nil {
			return settings
		}
	}
	return models.NotificationSettings{
		EmailAlerts:           false,
		SMSAlerts:             false,
		DefaultStockThreshold: defaultStockThreshold,
	}
}

func (s *Store) SaveNotificationSettings(settings models.NotificationSettings) error {
	return s.saveRaw(keyNotifSettings, settings)
}

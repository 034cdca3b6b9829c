package store

import "chequeharmony-backend/internal/models"

// Denetim kaydı en yeni başta tutulur ve son 100 kayıtla sınırlıdır;
// çekirdek mantık tüketmez, sadece bilgilendirme amaçlıdır.
const maxAuditLogs = 100

func (s *Store) AuditLogs() []models.AuditLog {
	return loadCollection(s, keyAudit, func() []models.AuditLog {
		return []models.AuditLog{}
	})
}

func (s *Store) AddAuditLog(entry models.AuditLog) error {
	logs := append([]models.AuditLog{entry}, s.AuditLogs()...)
	if len(logs) > maxAuditLogs {
		logs = logs[:maxAuditLogs]
	}
	return s.saveRaw(keyAudit, logs)
}

// Paket audit: yönetim işlemlerinin salt-ekleme kaydı. Depo son 100
// kaydı tutar; çekirdek mantık bu kayıtları tüketmez.
package audit

import (
	"time"

	"chequeharmony-backend/internal/models"
	"chequeharmony-backend/internal/store"

	"github.com/google/uuid"
)

func Write(st *store.Store, action, details, userID string) error {
	entry := models.AuditLog{
		ID:        uuid.NewString(),
		Action:    action,
		Details:   details,
		Timestamp: time.Now().Format(time.RFC3339),
		UserID:    userID,
	}
	return st.AddAuditLog(entry)
}

// Paket store: koleksiyon başına get/save/delete sunan varlık deposu.
// Her koleksiyon kv tablosunda tek anahtar altında JSON dizisi olarak
// saklanır; ilk erişimde boş anahtarlar varsayılan verilerle tohumlanır.
// Yerel yazma senkron ve asıl kaynaktır; uzak gönderim outbox üzerinden
// best-effort yürür.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"chequeharmony-backend/internal/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Orijinal istemcinin local storage anahtarları olduğu gibi korunur
const (
	keyCheques       = "cheque_harmony_data"
	keySettings      = "cheque_harmony_settings"
	keyNotifSettings = "cheque_harmony_notif_settings"
	keyNotifications = "cheque_harmony_notifications"
	keyBranches      = "cheque_harmony_branches"
	keyBooks         = "cheque_harmony_books"
	keyUsers         = "cheque_harmony_users"
	keyAudit         = "cheque_harmony_audit"
)

// Pusher: uzak uca ateşle-unut gönderim. nil ise senkron kapalıdır.
type Pusher interface {
	Enqueue(action string, payload map[string]any)
}

type Store struct {
	db     *gorm.DB
	outbox Pusher
}

func New(db *gorm.DB, outbox Pusher) *Store {
	return &Store{db: db, outbox: outbox}
}

// SetOutbox: outbox adres sağlayıcısı depodaki ayarları okuduğu için
// depo kurulduktan sonra bağlanır.
func (s *Store) SetOutbox(outbox Pusher) {
	s.outbox = outbox
}

func (s *Store) push(action string, payload map[string]any) {
	if s.outbox != nil {
		s.outbox.Enqueue(action, payload)
	}
}

func (s *Store) loadRaw(key string) (string, bool) {
	var rec database.KVRecord
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		return "", false
	}
	return rec.Value, true
}

func (s *Store) saveRaw(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("koleksiyon serileştirilemedi (%s): %w", key, err)
	}

	rec := database.KVRecord{Key: key, Value: string(b), UpdatedAt: time.Now()}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		return fmt.Errorf("koleksiyon yazılamadı (%s): %w", key, err)
	}
	return nil
}

// loadCollection: anahtar yoksa veya içerik çözümlenemiyorsa (bozuk JSON
// "yok" sayılır) varsayılanlar tohumlanıp kalıcılaştırılır.
func loadCollection[T any](s *Store, key string, seed func() []T) []T {
	if raw, ok := s.loadRaw(key); ok {
		var list []T
		if err := json.Unmarshal([]byte(raw), &list); err == nil {
			if list == nil {
				list = []T{}
			}
			return list
		}
		log.Printf("[WARN] bozuk koleksiyon verisi (%s), varsayılanlar yükleniyor", key)
	}

	defaults := seed()
	if err := s.saveRaw(key, defaults); err != nil {
		log.Printf("[WARN] varsayılanlar yazılamadı (%s): %v", key, err)
	}
	return defaults
}

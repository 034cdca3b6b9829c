// Paket stockalert: aktif çek defterlerinin kalan yaprak sayısını
// eşikle karşılaştırır ve ilgili kullanıcılara tekilleştirilmiş düşük
// stok bildirimi üretir. Her çek/defter kaydından sonra ve açılışta
// bir kez çalıştırılır.
package stockalert

import (
	"fmt"
	"log"

	"chequeharmony-backend/internal/dashboard"
	"chequeharmony-backend/internal/models"
)

// Store: değerlendiricinin ihtiyaç duyduğu koleksiyon erişimi.
// *store.Store bu arayüzü sağlar; testler hafif bir sahte kullanır.
type Store interface {
	Cheques() []models.Cheque
	ChequeBooks() []models.ChequeBook
	Branches() []models.Branch
	Users() []models.User
	Notifications(userID string) []models.Notification
	NotificationSettings() models.NotificationSettings
	CreateNotification(n models.Notification) error
}

// Run: iyi biçimli girdiyle hata üretmez; bildirim yazma hataları
// loglanır ve değerlendirme sürer.
func Run(st Store) {
	books := st.ChequeBooks()
	settings := st.NotificationSettings()
	users := st.Users()
	branches := st.Branches()
	cheques := st.Cheques()
	notifications := st.Notifications("") // Tekilleştirme tüm listeye bakar

	for _, book := range books {
		if book.Status != models.BookActive {
			continue
		}

		used, total := dashboard.ChequeBookUsage(book.Name, cheques, books)
		remaining := total - used

		threshold := settings.DefaultStockThreshold
		if book.LowStockThreshold != nil {
			threshold = *book.LowStockThreshold
		}

		// Eşik karşılaştırması kapsayıcıdır: kalan == eşik de uyarı üretir
		if remaining > threshold {
			continue
		}

		bookBranch := branchNameByID(branches, book.BranchID)

		for _, user := range users {
			if !isTarget(user, bookBranch) {
				continue
			}
			if hasUnreadAlert(notifications, user.ID, book.ID) {
				// Okunmamış uyarı dururken aynı (defter, kullanıcı) için
				// yenisi üretilmez; kullanıcı okuduğunda uyarı yeniden kurulur
				continue
			}

			n := models.Notification{
				UserID:  user.ID,
				Title:   "Düşük Stok Uyarısı",
				Message: fmt.Sprintf("\"%s\" defterinde yalnızca %d yaprak kaldı (eşik: %d).", book.Name, remaining, threshold),
				Type:    models.NotifWarning,
				Metadata: &models.NotificationMetadata{
					Type:         models.MetaStockLow,
					ChequeBookID: book.ID,
				},
			}
			if err := st.CreateNotification(n); err != nil {
				log.Printf("[WARN] stok bildirimi yazılamadı (%s / %s): %v", book.Name, user.ID, err)
			}
		}
	}
}

// Hedef küme: tüm ADMIN'ler + defterin şubesinin MANAGER'ı.
// Defterin şubesi silinmişse yalnızca admin'ler bilgilendirilir.
func isTarget(u models.User, bookBranch string) bool {
	if u.Role == models.RoleAdmin {
		return true
	}
	if u.Role == models.RoleManager && u.Branch != "" && bookBranch != "" {
		return u.Branch == bookBranch
	}
	return false
}

func branchNameByID(branches []models.Branch, id string) string {
	if id == "" {
		return ""
	}
	for _, b := range branches {
		if b.ID == id {
			return b.Name
		}
	}
	return ""
}

func hasUnreadAlert(notifications []models.Notification, userID, bookID string) bool {
	for _, n := range notifications {
		if n.UserID == userID && !n.Read &&
			n.Metadata != nil && n.Metadata.Type == models.MetaStockLow &&
			n.Metadata.ChequeBookID == bookID {
			return true
		}
	}
	return false
}

package store

import (
	"time"

	"chequeharmony-backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// İlk kurulum varsayılanları. Eşik 5 yaprak; deftere özel eşik
// girilmediği sürece bildirim ayarlarındaki genel eşik kullanılır.
const defaultStockThreshold = 5

func hashPassword(plain string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return plain
	}
	return string(h)
}

func seedBranches() []models.Branch {
	names := []string{"Menwar 01", "JN24", "Menwar 02"}
	branches := make([]models.Branch, 0, len(names))
	for _, name := range names {
		branches = append(branches, models.Branch{ID: uuid.NewString(), Name: name})
	}
	return branches
}

func seedChequeBooks() []models.ChequeBook {
	threshold := defaultStockThreshold
	now := time.Now().Format(time.RFC3339)
	return []models.ChequeBook{
		{
			ID:                uuid.NewString(),
			Name:              "Menwar Chequebook",
			TotalLeaves:       50,
			DateAdded:         now,
			Status:            models.BookActive,
			LowStockThreshold: &threshold,
		},
		{
			ID:                uuid.NewString(),
			Name:              "Zakia Chequebook",
			TotalLeaves:       50,
			DateAdded:         now,
			Status:            models.BookActive,
			LowStockThreshold: &threshold,
		},
	}
}

func seedUsers() []models.User {
	return []models.User{
		{
			ID:        "u1",
			Name:      "Alex Morgan",
			Email:     "alex@chequeharmony.com",
			Password:  hashPassword("admin"),
			Role:      models.RoleAdmin,
			Branch:    "Menwar 01",
			AvatarURL: "https://picsum.photos/200",
		},
		{
			ID:       "u2",
			Name:     "Sarah Manager",
			Email:    "sarah@chequeharmony.com",
			Password: hashPassword("user123"),
			Role:     models.RoleManager,
			Branch:   "JN24",
		},
		{
			ID:       "u3",
			Name:     "John User",
			Email:    "john@chequeharmony.com",
			Password: hashPassword("user123"),
			Role:     models.RoleUser,
			Branch:   "Menwar 02",
		},
	}
}

func seedNotifications() []models.Notification {
	now := time.Now()
	return []models.Notification{
		{
			ID:      "n1",
			Title:   "Vade Yaklaşıyor",
			Message: "#4552 numaralı çekin (Global Supplies) vadesi yarın doluyor.",
			Type:    models.NotifWarning,
			Read:    false,
			Date:    now.Format(time.RFC3339),
			UserID:  "u1",
		},
		{
			ID:      "n2",
			Title:   "E-Tablo Senkronu",
			Message: "Son değişiklikleriniz e-tabloya aktarıldı.",
			Type:    models.NotifSuccess,
			Read:    true,
			Date:    now.Add(-24 * time.Hour).Format(time.RFC3339),
			UserID:  "u1",
		},
		{
			ID:      "n3",
			Title:   "Çek Karşılıksız",
			Message: "#000125 numaralı çek banka bildirimiyle KARŞILIKSIZ olarak işaretlendi.",
			Type:    models.NotifError,
			Read:    false,
			Date:    now.Add(-48 * time.Hour).Format(time.RFC3339),
			UserID:  "u1",
		},
	}
}

func seedCheques() []models.Cheque {
	now := time.Now()
	day := 24 * time.Hour
	createdAt := now.Format(time.RFC3339)

	return []models.Cheque{
		{
			ID:            "c1",
			ChequeNumber:  "000123",
			Amount:        5000.00,
			PayeeName:     "Global Supplies Ltd",
			Date:          now.Add(2 * day).Format("2006-01-02"),
			Status:        models.StatusPending,
			Branch:        "Menwar 01",
			ChequeBookRef: "Menwar Chequebook",
			CreatedAt:     createdAt,
			CreatedBy:     "u1",
		},
		{
			ID:            "c2",
			ChequeNumber:  "000124",
			Amount:        1250.50,
			PayeeName:     "Office Depot",
			Date:          now.Add(-5 * day).Format("2006-01-02"),
			Status:        models.StatusCleared,
			Branch:        "JN24",
			ChequeBookRef: "Menwar Chequebook",
			CreatedAt:     createdAt,
			CreatedBy:     "u1",
		},
		{
			ID:            "c3",
			ChequeNumber:  "000125",
			Amount:        3200.00,
			PayeeName:     "Tech Solutions Inc",
			Date:          now.Add(-1 * day).Format("2006-01-02"),
			Status:        models.StatusBounced,
			Branch:        "Menwar 02",
			ChequeBookRef: "Zakia Chequebook",
			CreatedAt:     createdAt,
			CreatedBy:     "u1",
		},
		{
			ID:            "c4",
			ChequeNumber:  "000126",
			Amount:        750.00,
			PayeeName:     "Cleaning Services Co",
			Date:          now.Add(10 * day).Format("2006-01-02"),
			Status:        models.StatusPending,
			Branch:        "Menwar 01",
			ChequeBookRef: "Zakia Chequebook",
			CreatedAt:     createdAt,
			CreatedBy:     "u1",
		},
	}
}

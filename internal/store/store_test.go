package store

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"chequeharmony-backend/internal/database"
	"chequeharmony-backend/internal/models"
	"chequeharmony-backend/internal/syncer"
)

// fakePusher: outbox'a giden işlemleri kaydeder
type fakePusher struct {
	ops []syncer.Operation
}

func (f *fakePusher) Enqueue(action string, payload map[string]any) {
	f.ops = append(f.ops, syncer.Operation{Action: action, Payload: payload})
}

func newTestStore(t *testing.T) (*Store, *fakePusher) {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}

	pusher := &fakePusher{}
	return New(db, pusher), pusher
}

func TestSeedOnFirstAccess(t *testing.T) {
	st, _ := newTestStore(t)

	branches := st.Branches()
	if len(branches) != 3 {
		t.Fatalf("3 varsayılan şube bekleniyordu, geldi: %d", len(branches))
	}

	// Tohumlama kalıcıdır: ikinci okuma aynı id'leri döndürür
	again := st.Branches()
	if again[0].ID != branches[0].ID {
		t.Error("tohumlanan veri kalıcı olmalı, id değişti")
	}

	users := st.Users()
	if len(users) != 3 {
		t.Fatalf("3 varsayılan kullanıcı bekleniyordu, geldi: %d", len(users))
	}
	// Tohum şifreleri düz metin saklanmaz
	for _, u := range users {
		if u.Password == "admin" || u.Password == "user123" {
			t.Errorf("kullanıcı %s şifresi düz metin saklanmış", u.ID)
		}
	}
}

func TestMalformedCollectionReseeds(t *testing.T) {
	st, _ := newTestStore(t)

	// Bozuk JSON "anahtar yok" gibi davranır ve varsayılanlar yüklenir
	rec := database.KVRecord{Key: keyBranches, Value: "{bozuk json", UpdatedAt: time.Now()}
	if err := st.db.Create(&rec).Error; err != nil {
		t.Fatalf("bozuk kayıt yazılamadı: %v", err)
	}

	branches := st.Branches()
	if len(branches) != 3 {
		t.Fatalf("bozuk veri sonrası 3 varsayılan şube bekleniyordu, geldi: %d", len(branches))
	}
}

func TestSaveChequeUpsert(t *testing.T) {
	st, pusher := newTestStore(t)

	cheques := st.Cheques()
	initial := len(cheques)

	// Var olan id güncellenir, liste büyümez
	existing := cheques[0]
	existing.Amount = 9999
	if err := st.SaveCheque(existing); err != nil {
		t.Fatalf("güncelleme başarısız: %v", err)
	}
	if got := st.Cheques(); len(got) != initial || got[0].Amount != 9999 {
		t.Errorf("upsert güncellemesi beklendiği gibi değil: adet %d, tutar %v", len(got), got[0].Amount)
	}

	// Yeni id eklenir
	if err := st.SaveCheque(models.Cheque{ID: "yeni", Amount: 100, Status: models.StatusPending}); err != nil {
		t.Fatalf("ekleme başarısız: %v", err)
	}
	if got := len(st.Cheques()); got != initial+1 {
		t.Errorf("yeni çek sonrası adet %d, beklenen %d", got, initial+1)
	}

	// Her yerel yazma uzak uca kuyruklanır
	if len(pusher.ops) != 2 {
		t.Fatalf("2 senkron işlemi bekleniyordu, geldi: %d", len(pusher.ops))
	}
	for _, op := range pusher.ops {
		if op.Action != syncer.ActionSaveCheque {
			t.Errorf("işlem adı: %s, beklenen %s", op.Action, syncer.ActionSaveCheque)
		}
	}
}

func TestDeleteChequePushesID(t *testing.T) {
	st, pusher := newTestStore(t)

	initial := len(st.Cheques())
	if err := st.DeleteCheque("c1"); err != nil {
		t.Fatalf("silme başarısız: %v", err)
	}
	if got := len(st.Cheques()); got != initial-1 {
		t.Errorf("silme sonrası adet %d, beklenen %d", got, initial-1)
	}

	last := pusher.ops[len(pusher.ops)-1]
	if last.Action != syncer.ActionDeleteCheque {
		t.Errorf("işlem adı: %s, beklenen %s", last.Action, syncer.ActionDeleteCheque)
	}
	if last.Payload["id"] != "c1" {
		t.Errorf("silme payload'ı id taşımalı, geldi: %v", last.Payload)
	}
}

func TestNotificationsPrependAndMarkRead(t *testing.T) {
	st, _ := newTestStore(t)

	err := st.CreateNotification(models.Notification{
		UserID:  "u1",
		Title:   "Test",
		Message: "mesaj",
		Type:    models.NotifInfo,
	})
	if err != nil {
		t.Fatalf("bildirim yazılamadı: %v", err)
	}

	all := st.Notifications("")
	if all[0].Title != "Test" {
		t.Error("yeni bildirim listenin başında olmalı")
	}
	if all[0].ID == "" || all[0].Read {
		t.Error("id atanmalı ve bildirim okunmamış başlamalı")
	}

	if err := st.MarkNotificationRead(all[0].ID); err != nil {
		t.Fatalf("okundu işaretlenemedi: %v", err)
	}
	if got := st.Notifications(""); !got[0].Read {
		t.Error("bildirim okundu olarak işaretlenmeliydi")
	}
	// Okundu işareti kaydı silmez
	if len(st.Notifications("")) != len(all) {
		t.Error("okundu işareti bildirim sayısını değiştirmemeli")
	}
}

func TestNotificationsFilterByUser(t *testing.T) {
	st, _ := newTestStore(t)

	st.CreateNotification(models.Notification{UserID: "uX", Title: "a"})
	st.CreateNotification(models.Notification{UserID: "uY", Title: "b"})

	for _, n := range st.Notifications("uX") {
		if n.UserID != "uX" {
			t.Errorf("uX filtresi yabancı kayıt döndürdü: %s", n.UserID)
		}
	}
}

func TestAuditLogCap(t *testing.T) {
	st, _ := newTestStore(t)

	for i := 0; i < 105; i++ {
		err := st.AddAuditLog(models.AuditLog{
			ID:        fmt.Sprintf("a%d", i),
			Action:    "Test",
			Timestamp: time.Now().Format(time.RFC3339),
		})
		if err != nil {
			t.Fatalf("denetim kaydı yazılamadı: %v", err)
		}
	}

	logs := st.AuditLogs()
	if len(logs) != 100 {
		t.Fatalf("denetim kaydı 100 ile sınırlı olmalı, geldi: %d", len(logs))
	}
	// En yeni kayıt başta, en eskiler düşer
	if logs[0].ID != "a104" {
		t.Errorf("en yeni kayıt başta olmalı, geldi: %s", logs[0].ID)
	}
}

func TestLoadFromBackendOverwrites(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("action") != "getAll" {
			t.Errorf("beklenmeyen action: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"cheques": [{"id": "uzak-1", "amount": 42, "status": "PENDING", "branch": "Uzak Şube"}],
			"branches": [{"id": "rb1", "name": "Uzak Şube"}],
			"chequeBooks": [],
			"users": [{"id": "ru1", "name": "Uzak Admin", "email": "r@r.com", "role": "ADMIN"}]
		}`)
	}))
	defer server.Close()

	st, _ := newTestStore(t)

	// Yerelde tohum verisi var; pull hepsinin üzerine yazar
	if len(st.Cheques()) == 0 {
		t.Fatal("tohum çekleri bekleniyordu")
	}

	if err := st.SaveSettings(models.AppSettings{ScriptURL: server.URL}); err != nil {
		t.Fatalf("ayar yazılamadı: %v", err)
	}
	if err := st.LoadFromBackend(context.Background()); err != nil {
		t.Fatalf("pull başarısız: %v", err)
	}

	cheques := st.Cheques()
	if len(cheques) != 1 || cheques[0].ID != "uzak-1" {
		t.Errorf("çekler uzak veriyle değişmeliydi: %+v", cheques)
	}
	branches := st.Branches()
	if len(branches) != 1 || branches[0].Name != "Uzak Şube" {
		t.Errorf("şubeler uzak veriyle değişmeliydi: %+v", branches)
	}
	users := st.Users()
	if len(users) != 1 || users[0].ID != "ru1" {
		t.Errorf("kullanıcılar uzak veriyle değişmeliydi: %+v", users)
	}
}

func TestLoadFromBackendRequiresScriptURL(t *testing.T) {
	st, _ := newTestStore(t)

	if err := st.LoadFromBackend(context.Background()); err != ErrNoScriptURL {
		t.Errorf("adres yokken ErrNoScriptURL beklenir, geldi: %v", err)
	}
}

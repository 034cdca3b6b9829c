package main

import (
	"context"
	"log"
	"strings"
	"time"

	"chequeharmony-backend/internal/admin"
	"chequeharmony-backend/internal/audit"
	"chequeharmony-backend/internal/auth"
	"chequeharmony-backend/internal/cheque"
	"chequeharmony-backend/internal/config"
	"chequeharmony-backend/internal/dashboard"
	"chequeharmony-backend/internal/database"
	"chequeharmony-backend/internal/models"
	"chequeharmony-backend/internal/notification"
	"chequeharmony-backend/internal/settings"
	"chequeharmony-backend/internal/stockalert"
	"chequeharmony-backend/internal/store"
	"chequeharmony-backend/internal/syncer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	st := store.New(database.DB, nil)
	st.SetOutbox(syncer.NewOutbox(st.ScriptURL))

	// Ortamdan gelen script URL'i yalnızca ayar henüz boşsa yazılır;
	// panelden kaydedilen değer her zaman önceliklidir
	if cfg.SyncScriptURL != "" && st.Settings().ScriptURL == "" {
		if err := st.SaveSettings(models.AppSettings{ScriptURL: cfg.SyncScriptURL}); err != nil {
			log.Println("[WARN] Script URL ayarlara yazılamadı:", err)
		}
	}

	// Açılışta bir kez elektronik tablodan çekilir; hata sunucuyu durdurmaz
	if st.ScriptURL() != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := st.LoadFromBackend(ctx); err != nil {
			log.Println("[WARN] Açılış senkronizasyonu başarısız:", err)
		}
		cancel()
	}

	stockalert.Run(st)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg, st))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler(st))

	// Çekler
	protected.Get("/cheques", cheque.ListChequesHandler(st))
	protected.Post("/cheques", cheque.CreateChequeHandler(st))
	protected.Get("/cheques/export", cheque.ExportCSVHandler(st))
	protected.Get("/cheques/export-xlsx", cheque.ExportXLSXHandler(st))
	protected.Post("/cheques/import", cheque.ImportChequesHandler(st))
	protected.Post("/cheques/batch-status", cheque.BatchStatusHandler(st))
	protected.Put("/cheques/:id", cheque.UpdateChequeHandler(st))
	protected.Post("/cheques/:id/status", cheque.ChangeStatusHandler(st))
	protected.Delete("/cheques/:id", auth.RequireRole(models.RoleAdmin, models.RoleManager), cheque.DeleteChequeHandler(st))

	// Dashboard
	protected.Get("/dashboard/stats", dashboard.StatsHandler(st))
	protected.Get("/dashboard/branch-metrics", dashboard.BranchMetricsHandler(st))

	// Bildirimler
	protected.Get("/notifications", notification.ListNotificationsHandler(st))
	protected.Post("/notifications/:id/read", notification.MarkReadHandler(st))

	// E-tablodan tam çekme; herkes tetikleyebilir, ayarlar admin'e kalır
	protected.Post("/sync/pull", settings.SyncPullHandler(st))

	// Şube listesi form doldurma için herkese açık (auth'lu)
	protected.Get("/branches", admin.ListBranchesHandler(st))
	protected.Get("/chequebooks", admin.ListChequeBooksHandler(st))

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	// Şube yönetimi
	adminRoutes.Get("/branches", admin.ListBranchesHandler(st))
	adminRoutes.Post("/branches", admin.CreateBranchHandler(st))
	adminRoutes.Put("/branches/:id", admin.UpdateBranchHandler(st))
	adminRoutes.Delete("/branches/:id", admin.DeleteBranchHandler(st))

	// Çek defteri yönetimi
	adminRoutes.Get("/chequebooks", admin.ListChequeBooksHandler(st))
	adminRoutes.Post("/chequebooks", admin.CreateChequeBookHandler(st))
	adminRoutes.Put("/chequebooks/:id", admin.UpdateChequeBookHandler(st))
	adminRoutes.Delete("/chequebooks/:id", admin.DeleteChequeBookHandler(st))

	// Kullanıcı yönetimi
	adminRoutes.Get("/users", admin.ListUsersHandler(st))
	adminRoutes.Post("/users", admin.CreateUserHandler(st))
	adminRoutes.Put("/users/:id", admin.UpdateUserHandler(st))
	adminRoutes.Delete("/users/:id", admin.DeleteUserHandler(st))

	// Ayarlar & senkronizasyon
	adminRoutes.Get("/settings", settings.GetSettingsHandler(st))
	adminRoutes.Put("/settings", settings.SaveSettingsHandler(st))
	adminRoutes.Get("/notification-settings", settings.GetNotificationSettingsHandler(st))
	adminRoutes.Put("/notification-settings", settings.SaveNotificationSettingsHandler(st))

	// Audit logs
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler(st))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}

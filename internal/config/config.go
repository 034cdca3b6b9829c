package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort      string
	DatabasePath  string // Yerel SQLite dosyası (kv deposu)
	JWTSecret     string
	CORSOrigins   string
	SyncScriptURL string // Opsiyonel: ilk açılışta ayarlara yazılacak senkron adresi
}

func Load() *Config {
	viper.AutomaticEnv()
	viper.SetDefault("HTTP_PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "./data/chequeharmony.db")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	cfg := &Config{
		HTTPPort:      viper.GetString("HTTP_PORT"),
		DatabasePath:  viper.GetString("DATABASE_PATH"),
		JWTSecret:     viper.GetString("JWT_SECRET"),
		CORSOrigins:   viper.GetString("CORS_ALLOWED_ORIGINS"),
		SyncScriptURL: viper.GetString("SYNC_SCRIPT_URL"),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}
	if cfg.SyncScriptURL == "" {
		log.Println("[WARN] SYNC_SCRIPT_URL tanımlı değil, e-tablo senkronizasyonu ayarlardan adres girilene kadar kapalı.")
	}

	return cfg
}

package database

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"chequeharmony-backend/internal/config"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// KVRecord: koleksiyon başına tek satır; value alanı koleksiyonun
// JSON dizisini olduğu gibi taşır (tarayıcı local storage düzeninin
// sunucu tarafı karşılığı).
type KVRecord struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (KVRecord) TableName() string {
	return "kv_records"
}

// Open: verilen dosya yolunda SQLite bağlantısı açar ve kv tablosunu hazırlar.
func Open(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Tek kullanıcılı yerel depo; tek bağlantı yeterli
	sqlDB.SetMaxOpenConns(1)
	_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")
	_, _ = sqlDB.Exec("PRAGMA synchronous = NORMAL;")

	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		return nil, err
	}

	return db, nil
}

func Init(cfg *config.Config) {
	var err error

	DB, err = Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Veritabanı açılamadı: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı:", cfg.DatabasePath)
}

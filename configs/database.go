package configs

import (
	"fmt"
	"os"
	"time"

	"uyetakip.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB PostgreSQL bağlantısını kurar. Bağlantı bilgileri ortam
// değişkenlerinden okunur (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME,
// DB_SSLMODE).
func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=Europe/Istanbul",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "uyetakip"),
		getEnv("DB_SSLMODE", "disable"),
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kurulamadı", zap.Error(err))
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = gormDB
	configslog.SLog.Info("Veritabanı bağlantısı kuruldu")
	return db, nil
}

// GetDB mevcut bağlantıyı döndürür. InitDB (veya testlerde SetDB)
// çağrılmadan kullanılmamalıdır.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.SLog.Fatal("GetDB: veritabanı bağlantısı başlatılmamış")
	}
	return db
}

// SetDB bağlantıyı dışarıdan atar; testlerde in-memory SQLite vermek için.
func SetDB(gormDB *gorm.DB) {
	db = gormDB
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package services

import (
	"testing"
	"time"

	"uyetakip.link/configs"
	"uyetakip.link/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB in-memory SQLite üzerinde tüm şemayı kurar ve bağlantıyı
// global konfigürasyona atar. Her test kendi temiz veritabanını alır.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// :memory: veritabanı bağlantı başına ayrıdır; havuz tek bağlantıya
	// sabitlenmezse tablolar "kaybolur".
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.IlceGorev{},
		&models.Uye{},
		&models.Mahalle{},
		&models.UyeMahalle{},
		&models.Komisyon{},
		&models.UyeKomisyon{},
		&models.Etkinlik{},
		&models.EtkinlikKomisyon{},
		&models.EtkinlikYoklama{},
	))

	configs.SetDB(db)
	return db
}

func olusturGorev(t *testing.T, db *gorm.DB, ad string, sira int) models.IlceGorev {
	t.Helper()
	gorev := models.IlceGorev{Ad: ad, Sira: sira}
	require.NoError(t, db.Create(&gorev).Error)
	return gorev
}

func olusturUye(t *testing.T, db *gorm.DB, ad, soyad string, gorevID *uint) models.Uye {
	t.Helper()
	uye := models.Uye{Ad: ad, Soyad: soyad, IlceGorevID: gorevID}
	require.NoError(t, db.Create(&uye).Error)
	return uye
}

func olusturKomisyon(t *testing.T, db *gorm.DB, ad string, uyeIDs ...uint) models.Komisyon {
	t.Helper()
	komisyon := models.Komisyon{Ad: ad}
	require.NoError(t, db.Create(&komisyon).Error)
	for _, uyeID := range uyeIDs {
		uyelik := models.UyeKomisyon{UyeID: uyeID, KomisyonID: komisyon.ID}
		require.NoError(t, db.Create(&uyelik).Error)
	}
	return komisyon
}

func yarin() time.Time {
	return time.Now().Add(24 * time.Hour).Truncate(time.Second)
}

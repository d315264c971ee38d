package migrations

import (
	"errors"

	"uyetakip.link/configs/configslog"
	"uyetakip.link/models"

	"gorm.io/gorm"
)

// MigrateMahalleTables mahalle ve üye-mahalle sorumluluk tablolarını
// oluşturur.
func MigrateMahalleTables(db *gorm.DB) error {
	configslog.SLog.Info("Mahalle tabloları migrate ediliyor...")

	if err := db.AutoMigrate(&models.Mahalle{}, &models.UyeMahalle{}); err != nil {
		errMsg := "Mahalle tabloları migrate edilemedi: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("Mahalle tabloları migrate işlemi tamamlandı.")
	return nil
}

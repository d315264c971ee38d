package migrations

import (
	"errors"

	"uyetakip.link/configs/configslog"
	"uyetakip.link/models"

	"gorm.io/gorm"
)

// MigrateKomisyonTables komisyon ve üyelik tablolarını oluşturur.
func MigrateKomisyonTables(db *gorm.DB) error {
	configslog.SLog.Info("Komisyon tabloları migrate ediliyor...")

	if err := db.AutoMigrate(&models.Komisyon{}, &models.UyeKomisyon{}); err != nil {
		errMsg := "Komisyon tabloları migrate edilemedi: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("Komisyon tabloları migrate işlemi tamamlandı.")
	return nil
}

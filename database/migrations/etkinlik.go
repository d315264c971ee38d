package migrations

import (
	"errors"

	"uyetakip.link/configs/configslog"
	"uyetakip.link/models"

	"gorm.io/gorm"
)

// MigrateEtkinlikTables etkinlik ve etkinlik-komisyon bağ tablolarını
// oluşturur.
func MigrateEtkinlikTables(db *gorm.DB) error {
	configslog.SLog.Info("Etkinlik tabloları migrate ediliyor...")

	if err := db.AutoMigrate(&models.Etkinlik{}, &models.EtkinlikKomisyon{}); err != nil {
		errMsg := "Etkinlik tabloları migrate edilemedi: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("Etkinlik tabloları migrate işlemi tamamlandı.")
	return nil
}

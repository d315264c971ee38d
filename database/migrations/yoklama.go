package migrations

import (
	"errors"

	"uyetakip.link/configs/configslog"
	"uyetakip.link/models"

	"gorm.io/gorm"
)

// MigrateYoklamaTable yoklama tablosunu oluşturur. Etkinlik ve Uye
// tablolarından sonra çalıştırılmalıdır.
func MigrateYoklamaTable(db *gorm.DB) error {
	configslog.SLog.Info("EtkinlikYoklama tablosu migrate ediliyor...")

	if err := db.AutoMigrate(&models.EtkinlikYoklama{}); err != nil {
		errMsg := "EtkinlikYoklama tablosu migrate edilemedi: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("EtkinlikYoklama tablosu migrate işlemi tamamlandı.")
	return nil
}

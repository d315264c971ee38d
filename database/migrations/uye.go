package migrations

import (
	"errors"

	"uyetakip.link/configs/configslog"
	"uyetakip.link/models"

	"gorm.io/gorm"
)

// MigrateUyeTable üye tablosunu oluşturur. IlceGorev tablosuna foreign key
// içerdiği için ondan sonra çalıştırılmalıdır.
func MigrateUyeTable(db *gorm.DB) error {
	configslog.SLog.Info("Uye tablosu migrate ediliyor...")

	if err := db.AutoMigrate(&models.Uye{}); err != nil {
		errMsg := "Uye tablosu migrate edilemedi: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("Uye tablosu migrate işlemi tamamlandı.")
	return nil
}

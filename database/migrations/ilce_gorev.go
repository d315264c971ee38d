package migrations

import (
	"errors"

	"uyetakip.link/configs/configslog"
	"uyetakip.link/models"

	"gorm.io/gorm"
)

func MigrateIlceGorevTable(db *gorm.DB) error {
	configslog.SLog.Info("IlceGorev tablosu migrate ediliyor...")

	if err := db.AutoMigrate(&models.IlceGorev{}); err != nil {
		errMsg := "IlceGorev tablosu migrate edilemedi: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("IlceGorev tablosu migrate işlemi tamamlandı.")
	return nil
}

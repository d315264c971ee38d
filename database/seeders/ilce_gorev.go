package seeders

import (
	"errors"

	"uyetakip.link/configs/configslog"
	"uyetakip.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedIlceGorevler standart ilçe görev setini ekler. Var olan görevlere
// dokunulmaz, tekrar çalıştırılması güvenlidir.
func SeedIlceGorevler(db *gorm.DB) error {
	gorevler := []models.IlceGorev{
		{Ad: "İlçe Başkanı", Aciklama: "İlçe yönetiminin başkanı", Sira: 1},
		{Ad: "Yönetim Kurulu", Aciklama: "İlçe yönetim kurulu üyesi", Sira: 2},
		{Ad: "Yürütme Kurulu", Aciklama: "İlçe yürütme kurulu üyesi", Sira: 3},
		{Ad: "Meclis Üyesi", Aciklama: "İlçe meclis üyesi", Sira: 4},
		{Ad: "İlçe İdari İşler", Aciklama: "İlçe idari işler sorumlusu", Sira: 5},
	}

	var createdCount int64
	configslog.SLog.Info("İlçe görevleri seed işlemi başlıyor...")

	for _, gorev := range gorevler {
		var mevcut models.IlceGorev
		result := db.Where("ad = ?", gorev.Ad).First(&mevcut)

		if result.Error == nil {
			configslog.SLog.Debugf("Görev '%s' zaten mevcut, oluşturma atlanıyor.", gorev.Ad)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Görev kontrol edilirken veritabanı hatası",
				zap.String("ad", gorev.Ad), zap.Error(result.Error))
			return result.Error
		}

		if err := db.Create(&gorev).Error; err != nil {
			configslog.Log.Error("Görev oluşturulamadı",
				zap.String("ad", gorev.Ad), zap.Error(err))
			return err
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni ilçe görevi seed edildi.", createdCount)
	} else {
		configslog.SLog.Info("Tüm ilçe görevleri zaten mevcut, yeni ekleme yapılmadı.")
	}
	return nil
}

package seeders

import (
	"errors"

	"uyetakip.link/configs/configslog"
	"uyetakip.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type uyeSeed struct {
	Ad    string
	Soyad string
	Gorev string
}

// ilkYonetim kuruluş dönemindeki ilçe yönetimi. Seed tekrar çalıştığında
// mevcut üyelerin yalnızca görev ataması güncellenir.
var ilkYonetim = []uyeSeed{
	{Ad: "Fatih", Soyad: "Karaismailoğlu", Gorev: "İlçe Başkanı"},
	{Ad: "Yaşar Kemal", Soyad: "Küçükdoğan", Gorev: "Yürütme Kurulu"},
	{Ad: "Osman", Soyad: "Yıldız", Gorev: "Yürütme Kurulu"},
	{Ad: "Kadir", Soyad: "Onat", Gorev: "Yürütme Kurulu"},
	{Ad: "Ayşe", Soyad: "Yardım", Gorev: "Yürütme Kurulu"},
	{Ad: "Mücahit", Soyad: "Pehlivan", Gorev: "Yürütme Kurulu"},
	{Ad: "Ramazan", Soyad: "Memiş", Gorev: "Yürütme Kurulu"},
	{Ad: "Mehmet Şefik", Soyad: "Seven", Gorev: "Yürütme Kurulu"},
	{Ad: "Esra", Soyad: "Tüken", Gorev: "Yürütme Kurulu"},
	{Ad: "Burak", Soyad: "Aykut", Gorev: "Yürütme Kurulu"},
	{Ad: "Neslişah Tuğba", Soyad: "Vural", Gorev: "Yürütme Kurulu"},
	{Ad: "Alparslan", Soyad: "Avşaroğlu", Gorev: "Yönetim Kurulu"},
	{Ad: "Hatice", Soyad: "Bozkurt", Gorev: "Yönetim Kurulu"},
	{Ad: "Levent", Soyad: "Özerdem", Gorev: "Yönetim Kurulu"},
	{Ad: "Mert", Soyad: "Karaer", Gorev: "Yönetim Kurulu"},
	{Ad: "İlyas", Soyad: "Yıldız", Gorev: "Yönetim Kurulu"},
	{Ad: "Ahmet", Soyad: "Çalbay", Gorev: "Yönetim Kurulu"},
	{Ad: "Birgül", Soyad: "Nuhut", Gorev: "Yönetim Kurulu"},
	{Ad: "Arif", Soyad: "Kararoğlu", Gorev: "Yönetim Kurulu"},
	{Ad: "Fuat", Soyad: "Güney", Gorev: "Yönetim Kurulu"},
	{Ad: "İdris", Soyad: "Bastık", Gorev: "Yönetim Kurulu"},
	{Ad: "Turgut", Soyad: "Ağaya", Gorev: "Yönetim Kurulu"},
	{Ad: "Abdurrahim", Soyad: "Esen", Gorev: "Yönetim Kurulu"},
	{Ad: "Fırat", Soyad: "Barış", Gorev: "Yönetim Kurulu"},
	{Ad: "Ertuğrul", Soyad: "Müyesseroğlu", Gorev: "Yönetim Kurulu"},
	{Ad: "İbrahim Halid", Soyad: "Bayrak", Gorev: "Yönetim Kurulu"},
	{Ad: "Elif Burcu", Soyad: "Taş", Gorev: "Yönetim Kurulu"},
	{Ad: "Serdal", Soyad: "Güvercin", Gorev: "Yönetim Kurulu"},
	{Ad: "Ayşe Nevin", Soyad: "Dikol", Gorev: "Yönetim Kurulu"},
	{Ad: "Adem", Soyad: "Gök", Gorev: "Yönetim Kurulu"},
	{Ad: "Bedirhan", Soyad: "Çelik", Gorev: "Yönetim Kurulu"},
	{Ad: "Cihangir Bilal", Soyad: "Can", Gorev: "Yönetim Kurulu"},
	{Ad: "Ekrem", Soyad: "İnal", Gorev: "Yönetim Kurulu"},
	{Ad: "Faysal", Soyad: "Yılmaz", Gorev: "Yönetim Kurulu"},
	{Ad: "Fikret", Soyad: "Oğur", Gorev: "Yönetim Kurulu"},
	{Ad: "Hediye", Soyad: "Aray", Gorev: "Yönetim Kurulu"},
	{Ad: "İbrahim", Soyad: "Hacısalihoğlu", Gorev: "Yönetim Kurulu"},
	{Ad: "İbrahim Kerim", Soyad: "Narin", Gorev: "Yönetim Kurulu"},
	{Ad: "Kadir", Soyad: "Musaoğlu", Gorev: "Yönetim Kurulu"},
	{Ad: "Kemal", Soyad: "Duranoğlu", Gorev: "Yönetim Kurulu"},
	{Ad: "Mahmut", Soyad: "Şirin", Gorev: "Yönetim Kurulu"},
	{Ad: "Mehmet", Soyad: "Dağseven", Gorev: "Yönetim Kurulu"},
	{Ad: "Mehmet", Soyad: "Mazı", Gorev: "Yönetim Kurulu"},
	{Ad: "Muhittin", Soyad: "Bingöl", Gorev: "Yönetim Kurulu"},
	{Ad: "Nebahat", Soyad: "Uysal", Gorev: "Yönetim Kurulu"},
}

// SeedUyeler yönetim kadrosunu görev atamalarıyla birlikte ekler.
// SeedIlceGorevler'den sonra çalıştırılmalıdır.
func SeedUyeler(db *gorm.DB) error {
	configslog.SLog.Info("Üye seed işlemi başlıyor...")

	// Görev adı -> ID haritası
	gorevIDs := make(map[string]uint)
	for _, seed := range ilkYonetim {
		if _, ok := gorevIDs[seed.Gorev]; ok {
			continue
		}
		var gorev models.IlceGorev
		if err := db.Where("ad = ?", seed.Gorev).First(&gorev).Error; err != nil {
			configslog.Log.Error("Seed için görev bulunamadı",
				zap.String("ad", seed.Gorev), zap.Error(err))
			return err
		}
		gorevIDs[seed.Gorev] = gorev.ID
	}

	var createdCount, updatedCount int64
	for _, seed := range ilkYonetim {
		gorevID := gorevIDs[seed.Gorev]

		var mevcut models.Uye
		result := db.Where("ad = ? AND soyad = ?", seed.Ad, seed.Soyad).First(&mevcut)
		if result.Error == nil {
			if mevcut.IlceGorevID != nil && *mevcut.IlceGorevID == gorevID {
				continue
			}
			if err := db.Model(&mevcut).Update("ilce_gorev_id", gorevID).Error; err != nil {
				configslog.Log.Error("Üye görev ataması güncellenemedi",
					zap.String("ad", seed.Ad), zap.String("soyad", seed.Soyad), zap.Error(err))
				return err
			}
			updatedCount++
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		uye := models.Uye{Ad: seed.Ad, Soyad: seed.Soyad, IlceGorevID: &gorevID}
		if err := db.Create(&uye).Error; err != nil {
			configslog.Log.Error("Üye oluşturulamadı",
				zap.String("ad", seed.Ad), zap.String("soyad", seed.Soyad), zap.Error(err))
			return err
		}
		createdCount++
	}

	configslog.SLog.Infof("Üye seed tamamlandı: %d yeni, %d güncellenen.", createdCount, updatedCount)
	return nil
}

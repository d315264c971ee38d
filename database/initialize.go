package database

import (
	"uyetakip.link/configs/configslog"
	"uyetakip.link/database/migrations"
	"uyetakip.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize migrasyon ve seed adımlarını tek transaction içinde çalıştırır.
// Herhangi bir adım başarısız olursa tamamı geri alınır.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	} else {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	} else {
		configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
	}

	configslog.SLog.Info("İşlem commit ediliyor...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

// RunMigrationsInOrder tabloları foreign key bağımlılıklarına göre sırayla
// oluşturur.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	configslog.SLog.Info(" -> IlceGorev migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateIlceGorevTable(db); err != nil {
		configslog.Log.Error("IlceGorev tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> IlceGorev migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Uye migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateUyeTable(db); err != nil {
		configslog.Log.Error("Uye tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Uye migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Mahalle migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateMahalleTables(db); err != nil {
		configslog.Log.Error("Mahalle tabloları migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Mahalle migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Komisyon migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateKomisyonTables(db); err != nil {
		configslog.Log.Error("Komisyon tabloları migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Komisyon migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Etkinlik migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateEtkinlikTables(db); err != nil {
		configslog.Log.Error("Etkinlik tabloları migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Etkinlik migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Yoklama migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateYoklamaTable(db); err != nil {
		configslog.Log.Error("EtkinlikYoklama tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Yoklama migrasyonları tamamlandı.")

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

// CheckAndRunSeeders başlangıç verilerini yükler. Seeder'lar idempotenttir.
func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> IlceGorev seeder çalıştırılıyor...")
	if err := seeders.SeedIlceGorevler(db); err != nil {
		configslog.Log.Error("İlçe görevleri seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> IlceGorev seeder tamamlandı.")

	configslog.SLog.Info(" -> Uye seeder çalıştırılıyor...")
	if err := seeders.SeedUyeler(db); err != nil {
		configslog.Log.Error("Üyeler seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Uye seeder tamamlandı.")

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}

package repositories

import (
	"context"
	"errors"

	"uyetakip.link/configs"
	"uyetakip.link/configs/configslog"
	"uyetakip.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IKomisyonRepository komisyon ve komisyon üyeliği işlemleri için arayüz.
type IKomisyonRepository interface {
	Create(ctx context.Context, komisyon *models.Komisyon) error
	FindAll(ctx context.Context) ([]models.Komisyon, error)
	FindByID(ctx context.Context, id uint) (*models.Komisyon, error)
	Update(ctx context.Context, komisyon *models.Komisyon) error
	Delete(ctx context.Context, id uint) error

	UpsertUyelik(ctx context.Context, uyelik *models.UyeKomisyon) error
	FindUyelikByID(ctx context.Context, uyelikID uint) (*models.UyeKomisyon, error)
	FindUyelikler(ctx context.Context, komisyonID uint) ([]models.UyeKomisyon, error)
	UpdateUyelikGorev(ctx context.Context, uyelikID uint, gorev string) (*models.UyeKomisyon, error)
	DeleteUyelik(ctx context.Context, uyelikID uint) error
}

type KomisyonRepository struct {
	db *gorm.DB
}

func NewKomisyonRepository() IKomisyonRepository {
	return &KomisyonRepository{db: configs.GetDB()}
}

func NewKomisyonRepositoryTx(tx *gorm.DB) IKomisyonRepository {
	return &KomisyonRepository{db: tx}
}

func (r *KomisyonRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *KomisyonRepository) Create(ctx context.Context, komisyon *models.Komisyon) error {
	if komisyon == nil {
		return errors.New("geçersiz komisyon")
	}
	return r.getDB(ctx).Create(komisyon).Error
}

func (r *KomisyonRepository) FindAll(ctx context.Context) ([]models.Komisyon, error) {
	var komisyonlar []models.Komisyon
	err := r.getDB(ctx).
		Preload("Uyeler.Uye").
		Order("created_at desc").
		Find(&komisyonlar).Error
	if err != nil {
		configslog.Log.Error("KomisyonRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return komisyonlar, nil
}

// FindByID komisyonu üyeleri ve etkinlik geçmişiyle getirir. Etkinlikler
// tarihe göre yeniden eskiye, üyelikler ekleniş sırasına göre döner.
func (r *KomisyonRepository) FindByID(ctx context.Context, id uint) (*models.Komisyon, error) {
	if id == 0 {
		return nil, errors.New("geçersiz komisyon ID")
	}
	var komisyon models.Komisyon
	err := r.getDB(ctx).
		Preload("Uyeler", func(db *gorm.DB) *gorm.DB {
			return db.Order("uye_komisyons.created_at asc")
		}).
		Preload("Uyeler.Uye.IlceGorev").
		Preload("Etkinlikler", func(db *gorm.DB) *gorm.DB {
			return db.Joins("JOIN etkinliks ON etkinliks.id = etkinlik_komisyons.etkinlik_id").
				Order("etkinliks.tarih desc")
		}).
		Preload("Etkinlikler.Etkinlik").
		Preload("Etkinlikler.Etkinlik.Yoklamalar", "durum = ?", models.DurumGeldi).
		First(&komisyon, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("KomisyonRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &komisyon, nil
}

func (r *KomisyonRepository) Update(ctx context.Context, komisyon *models.Komisyon) error {
	if komisyon == nil || komisyon.ID == 0 {
		return errors.New("geçersiz komisyon")
	}
	return r.getDB(ctx).Model(&models.Komisyon{}).Where("id = ?", komisyon.ID).
		Updates(map[string]interface{}{
			"ad":       komisyon.Ad,
			"aciklama": komisyon.Aciklama,
		}).Error
}

func (r *KomisyonRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("geçersiz komisyon ID")
	}
	db := r.getDB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("komisyon_id = ?", id).Delete(&models.UyeKomisyon{}).Error; err != nil {
			return err
		}
		if err := tx.Where("komisyon_id = ?", id).Delete(&models.EtkinlikKomisyon{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Komisyon{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// UpsertUyelik (uye, komisyon) çifti için üyeliği bulur veya oluşturur;
// varsa görev alanını günceller.
func (r *KomisyonRepository) UpsertUyelik(ctx context.Context, uyelik *models.UyeKomisyon) error {
	if uyelik == nil || uyelik.UyeID == 0 || uyelik.KomisyonID == 0 {
		return errors.New("geçersiz üyelik verisi")
	}
	return r.getDB(ctx).
		Where(models.UyeKomisyon{UyeID: uyelik.UyeID, KomisyonID: uyelik.KomisyonID}).
		Assign(map[string]interface{}{"gorev": uyelik.Gorev}).
		FirstOrCreate(uyelik).Error
}

func (r *KomisyonRepository) FindUyelikByID(ctx context.Context, uyelikID uint) (*models.UyeKomisyon, error) {
	if uyelikID == 0 {
		return nil, errors.New("geçersiz üyelik ID")
	}
	var uyelik models.UyeKomisyon
	err := r.getDB(ctx).First(&uyelik, uyelikID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("KomisyonRepository.FindUyelikByID: DB error", zap.Uint("id", uyelikID), zap.Error(err))
		return nil, err
	}
	return &uyelik, nil
}

func (r *KomisyonRepository) FindUyelikler(ctx context.Context, komisyonID uint) ([]models.UyeKomisyon, error) {
	if komisyonID == 0 {
		return nil, errors.New("geçersiz komisyon ID")
	}
	var uyelikler []models.UyeKomisyon
	err := r.getDB(ctx).Where("komisyon_id = ?", komisyonID).Find(&uyelikler).Error
	if err != nil {
		configslog.Log.Error("KomisyonRepository.FindUyelikler: DB error", zap.Uint("komisyonID", komisyonID), zap.Error(err))
		return nil, err
	}
	return uyelikler, nil
}

func (r *KomisyonRepository) UpdateUyelikGorev(ctx context.Context, uyelikID uint, gorev string) (*models.UyeKomisyon, error) {
	if uyelikID == 0 {
		return nil, errors.New("geçersiz üyelik ID")
	}
	db := r.getDB(ctx)
	if err := db.Model(&models.UyeKomisyon{}).Where("id = ?", uyelikID).
		Update("gorev", gorev).Error; err != nil {
		return nil, err
	}
	var uyelik models.UyeKomisyon
	if err := db.Preload("Uye.IlceGorev").First(&uyelik, uyelikID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &uyelik, nil
}

func (r *KomisyonRepository) DeleteUyelik(ctx context.Context, uyelikID uint) error {
	if uyelikID == 0 {
		return errors.New("geçersiz üyelik ID")
	}
	result := r.getDB(ctx).Delete(&models.UyeKomisyon{}, uyelikID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IKomisyonRepository = (*KomisyonRepository)(nil)

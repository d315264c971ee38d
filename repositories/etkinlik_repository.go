package repositories

import (
	"context"
	"errors"

	"uyetakip.link/configs"
	"uyetakip.link/configs/configslog"
	"uyetakip.link/models"
	"uyetakip.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IEtkinlikRepository etkinlik ve etkinlik-komisyon bağları için arayüz.
type IEtkinlikRepository interface {
	Create(ctx context.Context, etkinlik *models.Etkinlik) error
	FindAll(ctx context.Context, params queryparams.ListParams) ([]models.Etkinlik, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Etkinlik, error)
	FindByIDWithRoster(ctx context.Context, id uint) (*models.Etkinlik, error)
	Update(ctx context.Context, etkinlik *models.Etkinlik) error
	Delete(ctx context.Context, id uint) error

	FindKomisyonIDs(ctx context.Context, etkinlikID uint) ([]uint, error)
	CreateKomisyonBagi(ctx context.Context, etkinlikID, komisyonID uint) error
	DeleteKomisyonBagi(ctx context.Context, etkinlikID, komisyonID uint) error
}

type EtkinlikRepository struct {
	db *gorm.DB
}

func NewEtkinlikRepository() IEtkinlikRepository {
	return &EtkinlikRepository{db: configs.GetDB()}
}

func NewEtkinlikRepositoryTx(tx *gorm.DB) IEtkinlikRepository {
	return &EtkinlikRepository{db: tx}
}

func (r *EtkinlikRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *EtkinlikRepository) Create(ctx context.Context, etkinlik *models.Etkinlik) error {
	if etkinlik == nil {
		return errors.New("geçersiz etkinlik")
	}
	return r.getDB(ctx).Create(etkinlik).Error
}

// FindAll etkinlikleri komisyonları ve yoklamalarıyla, tarihe göre yeniden
// eskiye getirir.
func (r *EtkinlikRepository) FindAll(ctx context.Context, params queryparams.ListParams) ([]models.Etkinlik, int64, error) {
	db := r.getDB(ctx)

	var total int64
	if err := db.Model(&models.Etkinlik{}).Count(&total).Error; err != nil {
		configslog.Log.Error("EtkinlikRepository.FindAll: count error", zap.Error(err))
		return nil, 0, err
	}

	query := db.
		Preload("Komisyonlar.Komisyon").
		Preload("Yoklamalar.Uye.IlceGorev").
		Order("tarih desc")
	if params.PerPage > 0 {
		query = query.Offset(params.Offset()).Limit(params.PerPage)
	}

	var etkinlikler []models.Etkinlik
	if err := query.Find(&etkinlikler).Error; err != nil {
		configslog.Log.Error("EtkinlikRepository.FindAll: DB error", zap.Error(err))
		return nil, 0, err
	}
	return etkinlikler, total, nil
}

func (r *EtkinlikRepository) FindByID(ctx context.Context, id uint) (*models.Etkinlik, error) {
	if id == 0 {
		return nil, errors.New("geçersiz etkinlik ID")
	}
	var etkinlik models.Etkinlik
	err := r.getDB(ctx).
		Preload("Komisyonlar.Komisyon").
		Preload("Yoklamalar.Uye.IlceGorev").
		Preload("Yoklamalar.Uye.Komisyonlar.Komisyon").
		Preload("Yoklamalar.Uye.SorumluMahalleler.Mahalle").
		First(&etkinlik, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EtkinlikRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &etkinlik, nil
}

// FindByIDWithRoster davetli listesi çözümlemesi için gereken tüm zinciri
// yükler: etkinlik -> komisyonlar -> komisyon üyeleri -> üye detayları.
func (r *EtkinlikRepository) FindByIDWithRoster(ctx context.Context, id uint) (*models.Etkinlik, error) {
	if id == 0 {
		return nil, errors.New("geçersiz etkinlik ID")
	}
	var etkinlik models.Etkinlik
	err := r.getDB(ctx).
		Preload("Komisyonlar.Komisyon.Uyeler.Uye.IlceGorev").
		Preload("Komisyonlar.Komisyon.Uyeler.Uye.Komisyonlar.Komisyon").
		Preload("Komisyonlar.Komisyon.Uyeler.Uye.SorumluMahalleler.Mahalle").
		First(&etkinlik, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EtkinlikRepository.FindByIDWithRoster: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &etkinlik, nil
}

func (r *EtkinlikRepository) Update(ctx context.Context, etkinlik *models.Etkinlik) error {
	if etkinlik == nil || etkinlik.ID == 0 {
		return errors.New("geçersiz etkinlik")
	}
	return r.getDB(ctx).Model(&models.Etkinlik{}).Where("id = ?", etkinlik.ID).
		Updates(map[string]interface{}{
			"ad":                       etkinlik.Ad,
			"aciklama":                 etkinlik.Aciklama,
			"tarih":                    etkinlik.Tarih,
			"konum":                    etkinlik.Konum,
			"zorunlu":                  etkinlik.Zorunlu,
			"ilce_yonetim_kurulu_ekle": etkinlik.IlceYonetimKuruluEkle,
		}).Error
}

func (r *EtkinlikRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("geçersiz etkinlik ID")
	}
	db := r.getDB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("etkinlik_id = ?", id).Delete(&models.EtkinlikKomisyon{}).Error; err != nil {
			return err
		}
		if err := tx.Where("etkinlik_id = ?", id).Delete(&models.EtkinlikYoklama{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Etkinlik{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *EtkinlikRepository) FindKomisyonIDs(ctx context.Context, etkinlikID uint) ([]uint, error) {
	if etkinlikID == 0 {
		return nil, errors.New("geçersiz etkinlik ID")
	}
	var ids []uint
	err := r.getDB(ctx).Model(&models.EtkinlikKomisyon{}).
		Where("etkinlik_id = ?", etkinlikID).
		Pluck("komisyon_id", &ids).Error
	if err != nil {
		configslog.Log.Error("EtkinlikRepository.FindKomisyonIDs: DB error", zap.Uint("etkinlikID", etkinlikID), zap.Error(err))
		return nil, err
	}
	return ids, nil
}

func (r *EtkinlikRepository) CreateKomisyonBagi(ctx context.Context, etkinlikID, komisyonID uint) error {
	if etkinlikID == 0 || komisyonID == 0 {
		return errors.New("geçersiz etkinlik-komisyon bağı")
	}
	bag := models.EtkinlikKomisyon{EtkinlikID: etkinlikID, KomisyonID: komisyonID}
	return r.getDB(ctx).Create(&bag).Error
}

func (r *EtkinlikRepository) DeleteKomisyonBagi(ctx context.Context, etkinlikID, komisyonID uint) error {
	return r.getDB(ctx).
		Where("etkinlik_id = ? AND komisyon_id = ?", etkinlikID, komisyonID).
		Delete(&models.EtkinlikKomisyon{}).Error
}

var _ IEtkinlikRepository = (*EtkinlikRepository)(nil)

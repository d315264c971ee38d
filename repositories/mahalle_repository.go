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

// IMahalleRepository mahalle veritabanı işlemleri için arayüz.
type IMahalleRepository interface {
	Create(ctx context.Context, mahalle *models.Mahalle) error
	FindAll(ctx context.Context) ([]models.Mahalle, error)
	FindByID(ctx context.Context, id uint) (*models.Mahalle, error)
	Update(ctx context.Context, mahalle *models.Mahalle) error
	Delete(ctx context.Context, id uint) error
}

type MahalleRepository struct {
	db *gorm.DB
}

func NewMahalleRepository() IMahalleRepository {
	return &MahalleRepository{db: configs.GetDB()}
}

func NewMahalleRepositoryTx(tx *gorm.DB) IMahalleRepository {
	return &MahalleRepository{db: tx}
}

func (r *MahalleRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *MahalleRepository) Create(ctx context.Context, mahalle *models.Mahalle) error {
	if mahalle == nil {
		return errors.New("geçersiz mahalle")
	}
	return r.getDB(ctx).Create(mahalle).Error
}

func (r *MahalleRepository) FindAll(ctx context.Context) ([]models.Mahalle, error) {
	var mahalleler []models.Mahalle
	err := r.getDB(ctx).
		Preload("MahalleBaskan").
		Preload("SorumluUyeler.Uye").
		Order("created_at desc").
		Find(&mahalleler).Error
	if err != nil {
		configslog.Log.Error("MahalleRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return mahalleler, nil
}

func (r *MahalleRepository) FindByID(ctx context.Context, id uint) (*models.Mahalle, error) {
	if id == 0 {
		return nil, errors.New("geçersiz mahalle ID")
	}
	var mahalle models.Mahalle
	err := r.getDB(ctx).
		Preload("MahalleBaskan").
		Preload("SorumluUyeler.Uye").
		First(&mahalle, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("MahalleRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &mahalle, nil
}

func (r *MahalleRepository) Update(ctx context.Context, mahalle *models.Mahalle) error {
	if mahalle == nil || mahalle.ID == 0 {
		return errors.New("geçersiz mahalle")
	}
	return r.getDB(ctx).Model(&models.Mahalle{}).Where("id = ?", mahalle.ID).
		Updates(map[string]interface{}{
			"ad":                mahalle.Ad,
			"aciklama":          mahalle.Aciklama,
			"lokal_yeri":        mahalle.LokalYeri,
			"mahalle_baskan_id": mahalle.MahalleBaskanID,
		}).Error
}

func (r *MahalleRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("geçersiz mahalle ID")
	}
	db := r.getDB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mahalle_id = ?", id).Delete(&models.UyeMahalle{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Mahalle{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

var _ IMahalleRepository = (*MahalleRepository)(nil)

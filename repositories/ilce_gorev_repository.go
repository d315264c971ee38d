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

// IIlceGorevRepository ilçe görevi veritabanı işlemleri için arayüz.
type IIlceGorevRepository interface {
	Create(ctx context.Context, gorev *models.IlceGorev) error
	FindAll(ctx context.Context) ([]models.IlceGorev, error)
	FindByID(ctx context.Context, id uint) (*models.IlceGorev, error)
	FindByAd(ctx context.Context, ad string) (*models.IlceGorev, error)
	Update(ctx context.Context, gorev *models.IlceGorev) error
	Delete(ctx context.Context, id uint) error
}

type IlceGorevRepository struct {
	db *gorm.DB
}

func NewIlceGorevRepository() IIlceGorevRepository {
	return &IlceGorevRepository{db: configs.GetDB()}
}

// NewIlceGorevRepositoryTx transaction içinde çalışan örnek döndürür.
func NewIlceGorevRepositoryTx(tx *gorm.DB) IIlceGorevRepository {
	return &IlceGorevRepository{db: tx}
}

func (r *IlceGorevRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *IlceGorevRepository) Create(ctx context.Context, gorev *models.IlceGorev) error {
	return r.getDB(ctx).Create(gorev).Error
}

// FindAll görevleri sira alanına göre artan sırada döndürür.
func (r *IlceGorevRepository) FindAll(ctx context.Context) ([]models.IlceGorev, error) {
	var gorevler []models.IlceGorev
	err := r.getDB(ctx).Order("sira asc").Find(&gorevler).Error
	if err != nil {
		configslog.Log.Error("IlceGorevRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return gorevler, nil
}

func (r *IlceGorevRepository) FindByID(ctx context.Context, id uint) (*models.IlceGorev, error) {
	if id == 0 {
		return nil, errors.New("geçersiz görev ID")
	}
	var gorev models.IlceGorev
	err := r.getDB(ctx).Preload("Uyeler").First(&gorev, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("IlceGorevRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &gorev, nil
}

func (r *IlceGorevRepository) FindByAd(ctx context.Context, ad string) (*models.IlceGorev, error) {
	var gorev models.IlceGorev
	err := r.getDB(ctx).Where("ad = ?", ad).First(&gorev).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("IlceGorevRepository.FindByAd: DB error", zap.String("ad", ad), zap.Error(err))
		return nil, err
	}
	return &gorev, nil
}

func (r *IlceGorevRepository) Update(ctx context.Context, gorev *models.IlceGorev) error {
	if gorev == nil || gorev.ID == 0 {
		return errors.New("geçersiz görev")
	}
	return r.getDB(ctx).Save(gorev).Error
}

func (r *IlceGorevRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("geçersiz görev ID")
	}
	result := r.getDB(ctx).Delete(&models.IlceGorev{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IIlceGorevRepository = (*IlceGorevRepository)(nil)

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

// IYoklamaRepository yoklama kayıtları için arayüz. Tüm yazmalar
// (etkinlik_id, uye_id) unique anahtarı üzerinden upsert semantiğiyle çalışır.
type IYoklamaRepository interface {
	Upsert(ctx context.Context, yoklama *models.EtkinlikYoklama) error
	CreateBelirsiz(ctx context.Context, etkinlikID uint, uyeIDs []uint) error
	FindByEtkinlik(ctx context.Context, etkinlikID uint) ([]models.EtkinlikYoklama, error)
	FindByEtkinlikVeUyeler(ctx context.Context, etkinlikID uint, uyeIDs []uint) ([]models.EtkinlikYoklama, error)
	FindByEtkinlikVeUye(ctx context.Context, etkinlikID, uyeID uint) (*models.EtkinlikYoklama, error)
	FindUyeIDsByEtkinlik(ctx context.Context, etkinlikID uint) ([]uint, error)
	DeleteByEtkinlikVeUye(ctx context.Context, etkinlikID, uyeID uint) error
	DeleteByEtkinlikVeUyeler(ctx context.Context, etkinlikID uint, uyeIDs []uint) error
}

type YoklamaRepository struct {
	db *gorm.DB
}

func NewYoklamaRepository() IYoklamaRepository {
	return &YoklamaRepository{db: configs.GetDB()}
}

func NewYoklamaRepositoryTx(tx *gorm.DB) IYoklamaRepository {
	return &YoklamaRepository{db: tx}
}

func (r *YoklamaRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Upsert (etkinlik, üye) çifti için kaydı bulur ve durumu yazar; kayıt yoksa
// oluşturur. Aynı çifte ikinci yazma yeni satır üretmez.
func (r *YoklamaRepository) Upsert(ctx context.Context, yoklama *models.EtkinlikYoklama) error {
	if yoklama == nil || yoklama.EtkinlikID == 0 || yoklama.UyeID == 0 {
		return errors.New("geçersiz yoklama verisi")
	}
	return r.getDB(ctx).
		Where(models.EtkinlikYoklama{EtkinlikID: yoklama.EtkinlikID, UyeID: yoklama.UyeID}).
		Assign(map[string]interface{}{
			"durum":   yoklama.Durum,
			"mazeret": yoklama.Mazeret,
		}).
		FirstOrCreate(yoklama).Error
}

// CreateBelirsiz verilen üyeler için belirsiz durumda kayıt açar; mevcut
// kayıtlara dokunmaz.
func (r *YoklamaRepository) CreateBelirsiz(ctx context.Context, etkinlikID uint, uyeIDs []uint) error {
	if etkinlikID == 0 {
		return errors.New("geçersiz etkinlik ID")
	}
	db := r.getDB(ctx)
	for _, uyeID := range uyeIDs {
		yoklama := models.EtkinlikYoklama{
			EtkinlikID: etkinlikID,
			UyeID:      uyeID,
			Durum:      models.DurumBelirsiz,
		}
		err := db.Where(models.EtkinlikYoklama{EtkinlikID: etkinlikID, UyeID: uyeID}).
			FirstOrCreate(&yoklama).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *YoklamaRepository) FindByEtkinlik(ctx context.Context, etkinlikID uint) ([]models.EtkinlikYoklama, error) {
	if etkinlikID == 0 {
		return nil, errors.New("geçersiz etkinlik ID")
	}
	var yoklamalar []models.EtkinlikYoklama
	err := r.getDB(ctx).Where("etkinlik_id = ?", etkinlikID).Find(&yoklamalar).Error
	if err != nil {
		configslog.Log.Error("YoklamaRepository.FindByEtkinlik: DB error", zap.Uint("etkinlikID", etkinlikID), zap.Error(err))
		return nil, err
	}
	return yoklamalar, nil
}

func (r *YoklamaRepository) FindByEtkinlikVeUyeler(ctx context.Context, etkinlikID uint, uyeIDs []uint) ([]models.EtkinlikYoklama, error) {
	if etkinlikID == 0 {
		return nil, errors.New("geçersiz etkinlik ID")
	}
	if len(uyeIDs) == 0 {
		return nil, nil
	}
	var yoklamalar []models.EtkinlikYoklama
	err := r.getDB(ctx).
		Where("etkinlik_id = ? AND uye_id IN ?", etkinlikID, uyeIDs).
		Find(&yoklamalar).Error
	if err != nil {
		configslog.Log.Error("YoklamaRepository.FindByEtkinlikVeUyeler: DB error", zap.Uint("etkinlikID", etkinlikID), zap.Error(err))
		return nil, err
	}
	return yoklamalar, nil
}

func (r *YoklamaRepository) FindByEtkinlikVeUye(ctx context.Context, etkinlikID, uyeID uint) (*models.EtkinlikYoklama, error) {
	if etkinlikID == 0 || uyeID == 0 {
		return nil, errors.New("geçersiz ID")
	}
	var yoklama models.EtkinlikYoklama
	err := r.getDB(ctx).
		Where("etkinlik_id = ? AND uye_id = ?", etkinlikID, uyeID).
		First(&yoklama).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("YoklamaRepository.FindByEtkinlikVeUye: DB error",
			zap.Uint("etkinlikID", etkinlikID), zap.Uint("uyeID", uyeID), zap.Error(err))
		return nil, err
	}
	return &yoklama, nil
}

// FindUyeIDsByEtkinlik etkinlikte kaydı olan üye ID'lerini döndürür;
// artımlı davetli listesi farkı için kullanılır.
func (r *YoklamaRepository) FindUyeIDsByEtkinlik(ctx context.Context, etkinlikID uint) ([]uint, error) {
	if etkinlikID == 0 {
		return nil, errors.New("geçersiz etkinlik ID")
	}
	var ids []uint
	err := r.getDB(ctx).Model(&models.EtkinlikYoklama{}).
		Where("etkinlik_id = ?", etkinlikID).
		Pluck("uye_id", &ids).Error
	if err != nil {
		configslog.Log.Error("YoklamaRepository.FindUyeIDsByEtkinlik: DB error", zap.Uint("etkinlikID", etkinlikID), zap.Error(err))
		return nil, err
	}
	return ids, nil
}

// DeleteByEtkinlikVeUye kaydı siler; kayıt yoksa ErrNotFound döner,
// sessiz no-op değildir.
func (r *YoklamaRepository) DeleteByEtkinlikVeUye(ctx context.Context, etkinlikID, uyeID uint) error {
	if etkinlikID == 0 || uyeID == 0 {
		return errors.New("geçersiz ID")
	}
	result := r.getDB(ctx).
		Where("etkinlik_id = ? AND uye_id = ?", etkinlikID, uyeID).
		Delete(&models.EtkinlikYoklama{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *YoklamaRepository) DeleteByEtkinlikVeUyeler(ctx context.Context, etkinlikID uint, uyeIDs []uint) error {
	if etkinlikID == 0 {
		return errors.New("geçersiz etkinlik ID")
	}
	if len(uyeIDs) == 0 {
		return nil
	}
	return r.getDB(ctx).
		Where("etkinlik_id = ? AND uye_id IN ?", etkinlikID, uyeIDs).
		Delete(&models.EtkinlikYoklama{}).Error
}

var _ IYoklamaRepository = (*YoklamaRepository)(nil)

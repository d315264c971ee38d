package repositories

import (
	"context"
	"errors"

	"uyetakip.link/configs"
	"uyetakip.link/configs/configslog"
	"uyetakip.link/models"
	"uyetakip.link/pkg/queryparams"
	"uyetakip.link/pkg/turkishsearch"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IUyeRepository üye veritabanı işlemleri için arayüz.
type IUyeRepository interface {
	Create(ctx context.Context, uye *models.Uye) error
	FindAll(ctx context.Context, params queryparams.ListParams) ([]models.Uye, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Uye, error)
	FindByIDWithYoklamalar(ctx context.Context, id uint) (*models.Uye, error)
	FindByGorevAdlari(ctx context.Context, gorevAdlari []string) ([]models.Uye, error)
	Update(ctx context.Context, uye *models.Uye) error
	Delete(ctx context.Context, id uint) error
	ReplaceSorumluMahalleler(ctx context.Context, uyeID uint, mahalleIDs []uint) error
}

type UyeRepository struct {
	db *gorm.DB
}

func NewUyeRepository() IUyeRepository {
	return &UyeRepository{db: configs.GetDB()}
}

func NewUyeRepositoryTx(tx *gorm.DB) IUyeRepository {
	return &UyeRepository{db: tx}
}

func (r *UyeRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// uyePreloads tüm liste/detay uçlarının beklediği ilişkiler.
func uyePreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("IlceGorev").
		Preload("Komisyonlar.Komisyon").
		Preload("SorumluMahalleler.Mahalle")
}

func (r *UyeRepository) Create(ctx context.Context, uye *models.Uye) error {
	if uye == nil {
		return errors.New("geçersiz üye")
	}
	return r.getDB(ctx).Create(uye).Error
}

// FindAll üyeleri ilişkileriyle birlikte getirir. Ad filtresi Türkçe harf
// katlamasıyla uygulanır; sıralama servis katmanında yapılır (görev önceliği
// + Türkçe ad sırası SQL ile ifade edilemiyor).
func (r *UyeRepository) FindAll(ctx context.Context, params queryparams.ListParams) ([]models.Uye, int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Uye{})
	if params.Name != "" {
		fragment, args := turkishsearch.SQLFilter("ad || ' ' || soyad", params.Name)
		query = query.Where(fragment, args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("UyeRepository.FindAll: count error", zap.Error(err))
		return nil, 0, err
	}

	query = uyePreloads(query).Order("created_at desc")
	if params.PerPage > 0 {
		query = query.Offset(params.Offset()).Limit(params.PerPage)
	}

	var uyeler []models.Uye
	if err := query.Find(&uyeler).Error; err != nil {
		configslog.Log.Error("UyeRepository.FindAll: DB error", zap.Error(err))
		return nil, 0, err
	}
	return uyeler, total, nil
}

func (r *UyeRepository) FindByID(ctx context.Context, id uint) (*models.Uye, error) {
	if id == 0 {
		return nil, errors.New("geçersiz üye ID")
	}
	var uye models.Uye
	err := uyePreloads(r.getDB(ctx)).First(&uye, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UyeRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &uye, nil
}

// FindByIDWithYoklamalar üyeyi yoklama geçmişi ve her kaydın etkinliğiyle
// getirir; yoklamalar etkinlik tarihine göre yeniden eskiye sıralanır.
func (r *UyeRepository) FindByIDWithYoklamalar(ctx context.Context, id uint) (*models.Uye, error) {
	if id == 0 {
		return nil, errors.New("geçersiz üye ID")
	}
	var uye models.Uye
	err := uyePreloads(r.getDB(ctx)).
		Preload("Yoklamalar", func(db *gorm.DB) *gorm.DB {
			return db.Joins("JOIN etkinliks ON etkinliks.id = etkinlik_yoklamas.etkinlik_id").
				Order("etkinliks.tarih desc")
		}).
		Preload("Yoklamalar.Etkinlik").
		Preload("Yoklamalar.Etkinlik.Komisyonlar.Komisyon").
		First(&uye, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UyeRepository.FindByIDWithYoklamalar: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &uye, nil
}

// FindByGorevAdlari görev adı verilen kümede olan üyeleri getirir.
// İlçe yönetim kadrosunun davetli listesine eklenmesinde kullanılır.
func (r *UyeRepository) FindByGorevAdlari(ctx context.Context, gorevAdlari []string) ([]models.Uye, error) {
	if len(gorevAdlari) == 0 {
		return nil, nil
	}
	var uyeler []models.Uye
	err := uyePreloads(r.getDB(ctx)).
		Joins("JOIN ilce_gorevs ON ilce_gorevs.id = uyes.ilce_gorev_id").
		Where("ilce_gorevs.ad IN ?", gorevAdlari).
		Find(&uyeler).Error
	if err != nil {
		configslog.Log.Error("UyeRepository.FindByGorevAdlari: DB error", zap.Error(err))
		return nil, err
	}
	return uyeler, nil
}

func (r *UyeRepository) Update(ctx context.Context, uye *models.Uye) error {
	if uye == nil || uye.ID == 0 {
		return errors.New("geçersiz üye")
	}
	// Save ile ilişki yazmamak için yalnızca sütunları güncelle.
	return r.getDB(ctx).Model(&models.Uye{}).Where("id = ?", uye.ID).
		Updates(map[string]interface{}{
			"ad":            uye.Ad,
			"soyad":         uye.Soyad,
			"telefon":       uye.Telefon,
			"email":         uye.Email,
			"adres":         uye.Adres,
			"ilce_gorev_id": uye.IlceGorevID,
		}).Error
}

func (r *UyeRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("geçersiz üye ID")
	}
	db := r.getDB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		// Ara tablolar ve yoklamalar üyeyle birlikte gider.
		if err := tx.Where("uye_id = ?", id).Delete(&models.UyeMahalle{}).Error; err != nil {
			return err
		}
		if err := tx.Where("uye_id = ?", id).Delete(&models.UyeKomisyon{}).Error; err != nil {
			return err
		}
		if err := tx.Where("uye_id = ?", id).Delete(&models.EtkinlikYoklama{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Uye{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ReplaceSorumluMahalleler üyenin mahalle sorumluluklarını verilen listeyle
// değiştirir (önce tümü silinir, sonra yenileri yazılır).
func (r *UyeRepository) ReplaceSorumluMahalleler(ctx context.Context, uyeID uint, mahalleIDs []uint) error {
	if uyeID == 0 {
		return errors.New("geçersiz üye ID")
	}
	db := r.getDB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("uye_id = ?", uyeID).Delete(&models.UyeMahalle{}).Error; err != nil {
			return err
		}
		for _, mahalleID := range mahalleIDs {
			link := models.UyeMahalle{UyeID: uyeID, MahalleID: mahalleID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

var _ IUyeRepository = (*UyeRepository)(nil)

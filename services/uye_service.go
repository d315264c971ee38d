package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"uyetakip.link/configs"
	"uyetakip.link/configs/configslog"
	"uyetakip.link/models"
	"uyetakip.link/pkg/queryparams"
	"uyetakip.link/pkg/turkishsort"
	"uyetakip.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UyeServiceError özel servis hataları
type UyeServiceError string

func (e UyeServiceError) Error() string { return string(e) }

const (
	ErrUyeBulunamadi     UyeServiceError = "üye bulunamadı"
	ErrUyeAdGerekli      UyeServiceError = "ad gereklidir"
	ErrUyeSoyadGerekli   UyeServiceError = "soyad gereklidir"
	ErrUyeOlusturulamadi UyeServiceError = "üye oluşturulamadı"
	ErrUyeGuncellenemedi UyeServiceError = "üye güncellenemedi"
	ErrUyeSilinemedi     UyeServiceError = "üye silinemedi"
)

// UyeGirdi oluşturma/güncelleme isteklerinin gövdesi.
type UyeGirdi struct {
	Ad          string `json:"ad" validate:"required"`
	Soyad       string `json:"soyad" validate:"required"`
	Telefon     string `json:"telefon"`
	Email       string `json:"email" validate:"omitempty,email"`
	Adres       string `json:"adres"`
	IlceGorevID *uint  `json:"ilceGorevId"`
	MahalleIDs  []uint `json:"mahalleler"`
}

// UyeIstatistik üyenin yoklama geçmişinden türetilen kişisel özet.
// KatilimOrani yalnızca zorunlu etkinlikler üzerinden hesaplanır; etkinlik
// bazındaki oranla aynı formül değildir.
type UyeIstatistik struct {
	Toplam         int `json:"toplam"`
	Katildi        int `json:"katildi"`
	Mazeretli      int `json:"mazeretli"`
	Gelmedi        int `json:"gelmedi"`
	ZorunluToplam  int `json:"zorunluToplam"`
	ZorunluKatildi int `json:"zorunluKatildi"`
	KatilimOrani   int `json:"katilimOrani"`
}

// UyeDetay üye kaydı ile kişisel istatistiklerini birlikte taşır.
type UyeDetay struct {
	models.Uye
	Stats UyeIstatistik `json:"stats"`
}

// IUyeService üye işlemleri için arayüz.
type IUyeService interface {
	ListUyeler(ctx context.Context, params queryparams.ListParams) ([]models.Uye, int64, error)
	GetUyeDetay(ctx context.Context, id uint) (*UyeDetay, error)
	CreateUye(ctx context.Context, girdi UyeGirdi) (*models.Uye, error)
	UpdateUye(ctx context.Context, id uint, girdi UyeGirdi) (*models.Uye, error)
	DeleteUye(ctx context.Context, id uint) error
}

type UyeService struct {
	repo repositories.IUyeRepository
	db   *gorm.DB
}

func NewUyeService() IUyeService {
	return &UyeService{
		repo: repositories.NewUyeRepository(),
		db:   configs.GetDB(),
	}
}

func validateUyeGirdi(girdi UyeGirdi) error {
	if strings.TrimSpace(girdi.Ad) == "" {
		return ErrUyeAdGerekli
	}
	if strings.TrimSpace(girdi.Soyad) == "" {
		return ErrUyeSoyadGerekli
	}
	return nil
}

// gorevOncelik yönetim kadrosu görevlerini listede öne çeker. Sıra,
// yapılandırılmış kadro listesindeki konumdur; kadro dışı görevler sona gider.
func gorevOncelik(uye models.Uye) int {
	if uye.IlceGorev == nil {
		return 999
	}
	for i, ad := range configs.LeadershipRoleNames() {
		if uye.IlceGorev.Ad == ad {
			return i + 1
		}
	}
	return 999
}

// ListUyeler üyeleri görev önceliği, ardından Türkçe ad sırasına göre döndürür.
func (s *UyeService) ListUyeler(ctx context.Context, params queryparams.ListParams) ([]models.Uye, int64, error) {
	uyeler, total, err := s.repo.FindAll(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	sort.SliceStable(uyeler, func(i, j int) bool {
		oi, oj := gorevOncelik(uyeler[i]), gorevOncelik(uyeler[j])
		if oi != oj {
			return oi < oj
		}
		return turkishsort.Compare(uyeler[i].TamAd(), uyeler[j].TamAd()) < 0
	})
	return uyeler, total, nil
}

// GetUyeDetay üyeyi yoklama geçmişi ve kişisel istatistikleriyle döndürür.
func (s *UyeService) GetUyeDetay(ctx context.Context, id uint) (*UyeDetay, error) {
	uye, err := s.repo.FindByIDWithYoklamalar(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUyeBulunamadi
		}
		return nil, err
	}

	stats := UyeIstatistik{Toplam: len(uye.Yoklamalar)}
	for _, yoklama := range uye.Yoklamalar {
		switch yoklama.Durum {
		case models.DurumGeldi:
			stats.Katildi++
		case models.DurumMazeretli:
			stats.Mazeretli++
		case models.DurumGelmedi:
			stats.Gelmedi++
		}
		// Kişisel katılım oranına yalnızca zorunlu etkinlikler girer.
		if yoklama.Etkinlik.Zorunlu {
			stats.ZorunluToplam++
			if yoklama.Durum == models.DurumGeldi {
				stats.ZorunluKatildi++
			}
		}
	}
	if stats.ZorunluToplam > 0 {
		stats.KatilimOrani = int(float64(stats.ZorunluKatildi)/float64(stats.ZorunluToplam)*100 + 0.5)
	}

	return &UyeDetay{Uye: *uye, Stats: stats}, nil
}

func (s *UyeService) CreateUye(ctx context.Context, girdi UyeGirdi) (*models.Uye, error) {
	if err := validateUyeGirdi(girdi); err != nil {
		return nil, err
	}

	uye := models.Uye{
		Ad:          strings.TrimSpace(girdi.Ad),
		Soyad:       strings.TrimSpace(girdi.Soyad),
		Telefon:     strings.TrimSpace(girdi.Telefon),
		Email:       strings.TrimSpace(girdi.Email),
		Adres:       strings.TrimSpace(girdi.Adres),
		IlceGorevID: girdi.IlceGorevID,
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewUyeRepositoryTx(tx)
		if err := repo.Create(ctx, &uye); err != nil {
			return err
		}
		if len(girdi.MahalleIDs) > 0 {
			return repo.ReplaceSorumluMahalleler(ctx, uye.ID, girdi.MahalleIDs)
		}
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("CreateUye: tx error", zap.Error(txErr))
		return nil, fmt.Errorf("%w: %v", ErrUyeOlusturulamadi, txErr)
	}

	return s.repo.FindByID(ctx, uye.ID)
}

func (s *UyeService) UpdateUye(ctx context.Context, id uint, girdi UyeGirdi) (*models.Uye, error) {
	if err := validateUyeGirdi(girdi); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUyeBulunamadi
		}
		return nil, err
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewUyeRepositoryTx(tx)
		uye := models.Uye{
			BaseModel:   models.BaseModel{ID: id},
			Ad:          strings.TrimSpace(girdi.Ad),
			Soyad:       strings.TrimSpace(girdi.Soyad),
			Telefon:     strings.TrimSpace(girdi.Telefon),
			Email:       strings.TrimSpace(girdi.Email),
			Adres:       strings.TrimSpace(girdi.Adres),
			IlceGorevID: girdi.IlceGorevID,
		}
		if err := repo.Update(ctx, &uye); err != nil {
			return err
		}
		// Mahalle sorumlulukları tam listeyle değiştirilir.
		return repo.ReplaceSorumluMahalleler(ctx, id, girdi.MahalleIDs)
	})
	if txErr != nil {
		configslog.Log.Error("UpdateUye: tx error", zap.Uint("id", id), zap.Error(txErr))
		return nil, fmt.Errorf("%w: %v", ErrUyeGuncellenemedi, txErr)
	}

	return s.repo.FindByID(ctx, id)
}

func (s *UyeService) DeleteUye(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUyeBulunamadi
	}
	if err != nil {
		configslog.Log.Error("DeleteUye error", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUyeSilinemedi, err)
	}
	return nil
}

var _ IUyeService = (*UyeService)(nil)

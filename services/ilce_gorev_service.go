package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"uyetakip.link/configs/configslog"
	"uyetakip.link/models"
	"uyetakip.link/repositories"

	"go.uber.org/zap"
)

// IlceGorevServiceError özel servis hataları
type IlceGorevServiceError string

func (e IlceGorevServiceError) Error() string { return string(e) }

const (
	ErrGorevBulunamadi IlceGorevServiceError = "görev bulunamadı"
	ErrGorevAdGerekli  IlceGorevServiceError = "görev adı gereklidir"
	ErrGorevAdiMevcut  IlceGorevServiceError = "bu görev adı zaten mevcut"
	ErrGorevSilinemedi IlceGorevServiceError = "ilçe görevi silinemedi"
)

// GorevGirdi oluşturma/güncelleme isteklerinin gövdesi.
type GorevGirdi struct {
	Ad       string `json:"ad" validate:"required"`
	Aciklama string `json:"aciklama"`
	Sira     *int   `json:"sira"`
}

// IIlceGorevService ilçe görevi işlemleri için arayüz.
type IIlceGorevService interface {
	ListGorevler(ctx context.Context) ([]models.IlceGorev, error)
	GetGorevByID(ctx context.Context, id uint) (*models.IlceGorev, error)
	CreateGorev(ctx context.Context, girdi GorevGirdi) (*models.IlceGorev, error)
	UpdateGorev(ctx context.Context, id uint, girdi GorevGirdi) (*models.IlceGorev, error)
	DeleteGorev(ctx context.Context, id uint) error
	SeedVarsayilanGorevler(ctx context.Context) ([]models.IlceGorev, error)
}

type IlceGorevService struct {
	repo repositories.IIlceGorevRepository
}

func NewIlceGorevService() IIlceGorevService {
	return &IlceGorevService{repo: repositories.NewIlceGorevRepository()}
}

func (s *IlceGorevService) ListGorevler(ctx context.Context) ([]models.IlceGorev, error) {
	return s.repo.FindAll(ctx)
}

func (s *IlceGorevService) GetGorevByID(ctx context.Context, id uint) (*models.IlceGorev, error) {
	gorev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGorevBulunamadi
		}
		return nil, err
	}
	return gorev, nil
}

// adKullanimda unique index ihlalini beklemek yerine adı önceden kontrol eder;
// çakışma kullanıcıya anlamlı bir doğrulama hatası olarak döner.
func (s *IlceGorevService) adKullanimda(ctx context.Context, ad string, haricID uint) (bool, error) {
	mevcut, err := s.repo.FindByAd(ctx, ad)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return mevcut.ID != haricID, nil
}

func (s *IlceGorevService) CreateGorev(ctx context.Context, girdi GorevGirdi) (*models.IlceGorev, error) {
	ad := strings.TrimSpace(girdi.Ad)
	if ad == "" {
		return nil, ErrGorevAdGerekli
	}
	kullanimda, err := s.adKullanimda(ctx, ad, 0)
	if err != nil {
		return nil, err
	}
	if kullanimda {
		return nil, ErrGorevAdiMevcut
	}

	gorev := models.IlceGorev{Ad: ad, Aciklama: strings.TrimSpace(girdi.Aciklama)}
	if girdi.Sira != nil {
		gorev.Sira = *girdi.Sira
	}
	if err := s.repo.Create(ctx, &gorev); err != nil {
		configslog.Log.Error("CreateGorev error", zap.Error(err))
		return nil, err
	}
	return &gorev, nil
}

func (s *IlceGorevService) UpdateGorev(ctx context.Context, id uint, girdi GorevGirdi) (*models.IlceGorev, error) {
	ad := strings.TrimSpace(girdi.Ad)
	if ad == "" {
		return nil, ErrGorevAdGerekli
	}
	gorev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGorevBulunamadi
		}
		return nil, err
	}
	kullanimda, err := s.adKullanimda(ctx, ad, id)
	if err != nil {
		return nil, err
	}
	if kullanimda {
		return nil, ErrGorevAdiMevcut
	}

	gorev.Ad = ad
	gorev.Aciklama = strings.TrimSpace(girdi.Aciklama)
	if girdi.Sira != nil {
		gorev.Sira = *girdi.Sira
	}
	gorev.Uyeler = nil // Save ilişkiyi yeniden yazmasın
	if err := s.repo.Update(ctx, gorev); err != nil {
		configslog.Log.Error("UpdateGorev error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return gorev, nil
}

func (s *IlceGorevService) DeleteGorev(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrGorevBulunamadi
	}
	if err != nil {
		configslog.Log.Error("DeleteGorev error", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrGorevSilinemedi, err)
	}
	return nil
}

// SeedVarsayilanGorevler standart ilçe görevlerini ekler; var olanlara
// dokunmaz, tekrar çağrılması güvenlidir.
func (s *IlceGorevService) SeedVarsayilanGorevler(ctx context.Context) ([]models.IlceGorev, error) {
	varsayilanlar := []models.IlceGorev{
		{Ad: "İlçe Başkanı", Aciklama: "İlçe yönetiminin başkanı", Sira: 1},
		{Ad: "Yönetim Kurulu", Aciklama: "İlçe yönetim kurulu üyesi", Sira: 2},
		{Ad: "Yürütme Kurulu", Aciklama: "İlçe yürütme kurulu üyesi", Sira: 3},
		{Ad: "Meclis Üyesi", Aciklama: "İlçe meclis üyesi", Sira: 4},
		{Ad: "İlçe İdari İşler", Aciklama: "İlçe idari işler sorumlusu", Sira: 5},
	}

	var sonuc []models.IlceGorev
	for _, gorev := range varsayilanlar {
		mevcut, err := s.repo.FindByAd(ctx, gorev.Ad)
		if err == nil {
			sonuc = append(sonuc, *mevcut)
			continue
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		if err := s.repo.Create(ctx, &gorev); err != nil {
			configslog.Log.Error("SeedVarsayilanGorevler error", zap.String("ad", gorev.Ad), zap.Error(err))
			return nil, err
		}
		sonuc = append(sonuc, gorev)
	}
	return sonuc, nil
}

var _ IIlceGorevService = (*IlceGorevService)(nil)

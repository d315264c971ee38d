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

// MahalleServiceError özel servis hataları
type MahalleServiceError string

func (e MahalleServiceError) Error() string { return string(e) }

const (
	ErrMahalleBulunamadi MahalleServiceError = "mahalle bulunamadı"
	ErrMahalleAdGerekli  MahalleServiceError = "mahalle adı gereklidir"
	ErrMahalleSilinemedi MahalleServiceError = "mahalle silinemedi"
)

// MahalleGirdi oluşturma/güncelleme isteklerinin gövdesi.
type MahalleGirdi struct {
	Ad              string `json:"ad" validate:"required"`
	Aciklama        string `json:"aciklama"`
	LokalYeri       string `json:"lokalYeri"`
	MahalleBaskanID *uint  `json:"mahalleBaskanId"`
}

// IMahalleService mahalle işlemleri için arayüz.
type IMahalleService interface {
	ListMahalleler(ctx context.Context) ([]models.Mahalle, error)
	GetMahalleByID(ctx context.Context, id uint) (*models.Mahalle, error)
	CreateMahalle(ctx context.Context, girdi MahalleGirdi) (*models.Mahalle, error)
	UpdateMahalle(ctx context.Context, id uint, girdi MahalleGirdi) (*models.Mahalle, error)
	DeleteMahalle(ctx context.Context, id uint) error
}

type MahalleService struct {
	repo repositories.IMahalleRepository
}

func NewMahalleService() IMahalleService {
	return &MahalleService{repo: repositories.NewMahalleRepository()}
}

func (s *MahalleService) ListMahalleler(ctx context.Context) ([]models.Mahalle, error) {
	return s.repo.FindAll(ctx)
}

func (s *MahalleService) GetMahalleByID(ctx context.Context, id uint) (*models.Mahalle, error) {
	mahalle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMahalleBulunamadi
		}
		return nil, err
	}
	return mahalle, nil
}

func (s *MahalleService) CreateMahalle(ctx context.Context, girdi MahalleGirdi) (*models.Mahalle, error) {
	if strings.TrimSpace(girdi.Ad) == "" {
		return nil, ErrMahalleAdGerekli
	}
	mahalle := models.Mahalle{
		Ad:              strings.TrimSpace(girdi.Ad),
		Aciklama:        strings.TrimSpace(girdi.Aciklama),
		LokalYeri:       strings.TrimSpace(girdi.LokalYeri),
		MahalleBaskanID: girdi.MahalleBaskanID,
	}
	if err := s.repo.Create(ctx, &mahalle); err != nil {
		configslog.Log.Error("CreateMahalle error", zap.Error(err))
		return nil, err
	}
	return s.repo.FindByID(ctx, mahalle.ID)
}

func (s *MahalleService) UpdateMahalle(ctx context.Context, id uint, girdi MahalleGirdi) (*models.Mahalle, error) {
	if strings.TrimSpace(girdi.Ad) == "" {
		return nil, ErrMahalleAdGerekli
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMahalleBulunamadi
		}
		return nil, err
	}
	mahalle := models.Mahalle{
		BaseModel:       models.BaseModel{ID: id},
		Ad:              strings.TrimSpace(girdi.Ad),
		Aciklama:        strings.TrimSpace(girdi.Aciklama),
		LokalYeri:       strings.TrimSpace(girdi.LokalYeri),
		MahalleBaskanID: girdi.MahalleBaskanID,
	}
	if err := s.repo.Update(ctx, &mahalle); err != nil {
		configslog.Log.Error("UpdateMahalle error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *MahalleService) DeleteMahalle(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrMahalleBulunamadi
	}
	if err != nil {
		configslog.Log.Error("DeleteMahalle error", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrMahalleSilinemedi, err)
	}
	return nil
}

var _ IMahalleService = (*MahalleService)(nil)

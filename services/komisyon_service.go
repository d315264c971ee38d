package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"uyetakip.link/configs"
	"uyetakip.link/configs/configslog"
	"uyetakip.link/models"
	"uyetakip.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// KomisyonServiceError özel servis hataları
type KomisyonServiceError string

func (e KomisyonServiceError) Error() string { return string(e) }

const (
	ErrKomisyonBulunamadi       KomisyonServiceError = "komisyon bulunamadı"
	ErrKomisyonAdGerekli        KomisyonServiceError = "komisyon adı gereklidir"
	ErrKomisyonUyeGerekli       KomisyonServiceError = "üye seçimi gereklidir"
	ErrKomisyonUyelikBulunamadi KomisyonServiceError = "komisyon üyeliği bulunamadı"
	ErrKomisyonYetkisizIslem    KomisyonServiceError = "yetkisiz işlem"
	ErrKomisyonSilinemedi       KomisyonServiceError = "komisyon silinemedi"
)

// KomisyonGirdi oluşturma/güncelleme isteklerinin gövdesi.
type KomisyonGirdi struct {
	Ad       string `json:"ad" validate:"required"`
	Aciklama string `json:"aciklama"`
}

// IKomisyonService komisyon ve komisyon üyeliği işlemleri için arayüz.
type IKomisyonService interface {
	ListKomisyonlar(ctx context.Context) ([]models.Komisyon, error)
	GetKomisyonByID(ctx context.Context, id uint) (*models.Komisyon, error)
	CreateKomisyon(ctx context.Context, girdi KomisyonGirdi) (*models.Komisyon, error)
	UpdateKomisyon(ctx context.Context, id uint, girdi KomisyonGirdi) (*models.Komisyon, error)
	DeleteKomisyon(ctx context.Context, id uint) error

	EkleUye(ctx context.Context, komisyonID, uyeID uint, gorev string) (*models.UyeKomisyon, error)
	GuncelleUyeGorev(ctx context.Context, komisyonID, uyelikID uint, gorev string) (*models.UyeKomisyon, error)
	CikarUye(ctx context.Context, komisyonID, uyelikID uint) error
}

type KomisyonService struct {
	repo repositories.IKomisyonRepository
	db   *gorm.DB
}

func NewKomisyonService() IKomisyonService {
	return &KomisyonService{
		repo: repositories.NewKomisyonRepository(),
		db:   configs.GetDB(),
	}
}

func (s *KomisyonService) ListKomisyonlar(ctx context.Context) ([]models.Komisyon, error) {
	return s.repo.FindAll(ctx)
}

func (s *KomisyonService) GetKomisyonByID(ctx context.Context, id uint) (*models.Komisyon, error) {
	komisyon, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrKomisyonBulunamadi
		}
		return nil, err
	}
	return komisyon, nil
}

func (s *KomisyonService) CreateKomisyon(ctx context.Context, girdi KomisyonGirdi) (*models.Komisyon, error) {
	if strings.TrimSpace(girdi.Ad) == "" {
		return nil, ErrKomisyonAdGerekli
	}
	komisyon := models.Komisyon{
		Ad:       strings.TrimSpace(girdi.Ad),
		Aciklama: strings.TrimSpace(girdi.Aciklama),
	}
	if err := s.repo.Create(ctx, &komisyon); err != nil {
		configslog.Log.Error("CreateKomisyon error", zap.Error(err))
		return nil, err
	}
	return &komisyon, nil
}

func (s *KomisyonService) UpdateKomisyon(ctx context.Context, id uint, girdi KomisyonGirdi) (*models.Komisyon, error) {
	if strings.TrimSpace(girdi.Ad) == "" {
		return nil, ErrKomisyonAdGerekli
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrKomisyonBulunamadi
		}
		return nil, err
	}
	komisyon := models.Komisyon{
		BaseModel: models.BaseModel{ID: id},
		Ad:        strings.TrimSpace(girdi.Ad),
		Aciklama:  strings.TrimSpace(girdi.Aciklama),
	}
	if err := s.repo.Update(ctx, &komisyon); err != nil {
		configslog.Log.Error("UpdateKomisyon error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetKomisyonByID(ctx, id)
}

func (s *KomisyonService) DeleteKomisyon(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrKomisyonBulunamadi
	}
	if err != nil {
		configslog.Log.Error("DeleteKomisyon error", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrKomisyonSilinemedi, err)
	}
	return nil
}

// EkleUye üyeyi komisyona ekler; üye zaten komisyondaysa görev alanını
// günceller (upsert).
func (s *KomisyonService) EkleUye(ctx context.Context, komisyonID, uyeID uint, gorev string) (*models.UyeKomisyon, error) {
	if uyeID == 0 {
		return nil, ErrKomisyonUyeGerekli
	}
	uyelik := models.UyeKomisyon{
		UyeID:      uyeID,
		KomisyonID: komisyonID,
		Gorev:      strings.TrimSpace(gorev),
	}
	if err := s.repo.UpsertUyelik(ctx, &uyelik); err != nil {
		configslog.Log.Error("EkleUye error",
			zap.Uint("komisyonID", komisyonID), zap.Uint("uyeID", uyeID), zap.Error(err))
		return nil, err
	}
	return &uyelik, nil
}

// GuncelleUyeGorev üyelik kaydının görev alanını değiştirir. Üyelik başka
// bir komisyona aitse işlem reddedilir.
func (s *KomisyonService) GuncelleUyeGorev(ctx context.Context, komisyonID, uyelikID uint, gorev string) (*models.UyeKomisyon, error) {
	mevcut, err := s.repo.FindUyelikByID(ctx, uyelikID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrKomisyonYetkisizIslem
		}
		return nil, err
	}
	if mevcut.KomisyonID != komisyonID {
		return nil, ErrKomisyonYetkisizIslem
	}
	return s.repo.UpdateUyelikGorev(ctx, uyelikID, strings.TrimSpace(gorev))
}

// CikarUye üyelik kaydını siler; kayıt başka komisyona aitse reddedilir.
func (s *KomisyonService) CikarUye(ctx context.Context, komisyonID, uyelikID uint) error {
	mevcut, err := s.repo.FindUyelikByID(ctx, uyelikID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrKomisyonYetkisizIslem
		}
		return err
	}
	if mevcut.KomisyonID != komisyonID {
		return ErrKomisyonYetkisizIslem
	}
	return s.repo.DeleteUyelik(ctx, uyelikID)
}

var _ IKomisyonService = (*KomisyonService)(nil)

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"uyetakip.link/configs"
	"uyetakip.link/configs/configslog"
	"uyetakip.link/models"
	"uyetakip.link/pkg/queryparams"
	"uyetakip.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EtkinlikServiceError özel servis hataları
type EtkinlikServiceError string

func (e EtkinlikServiceError) Error() string { return string(e) }

const (
	ErrEtkinlikBulunamadi     EtkinlikServiceError = "etkinlik bulunamadı"
	ErrEtkinlikAdGerekli      EtkinlikServiceError = "etkinlik adı gereklidir"
	ErrEtkinlikTarihGerekli   EtkinlikServiceError = "tarih gereklidir"
	ErrEtkinlikOlusturulamadi EtkinlikServiceError = "etkinlik oluşturulamadı"
	ErrEtkinlikGuncellenemedi EtkinlikServiceError = "etkinlik güncellenemedi"
	ErrEtkinlikSilinemedi     EtkinlikServiceError = "etkinlik silinemedi"
)

// EtkinlikGirdi oluşturma/güncelleme isteklerinin gövdesi. Zorunlu alanı
// gönderilmezse true varsayılır (eski API davranışı).
type EtkinlikGirdi struct {
	Ad                    string    `json:"ad"`
	Aciklama              string    `json:"aciklama"`
	Tarih                 time.Time `json:"tarih"`
	Konum                 string    `json:"konum"`
	Zorunlu               *bool     `json:"zorunlu"`
	IlceYonetimKuruluEkle bool      `json:"ilceYonetimKuruluEkle"`
	KomisyonIDs           []uint    `json:"komisyonlar"`
}

// IEtkinlikService etkinlik işlemleri için arayüz.
type IEtkinlikService interface {
	ListEtkinlikler(ctx context.Context, params queryparams.ListParams) ([]models.Etkinlik, int64, error)
	GetEtkinlikByID(ctx context.Context, id uint) (*models.Etkinlik, error)
	CreateEtkinlik(ctx context.Context, girdi EtkinlikGirdi) (*models.Etkinlik, error)
	UpdateEtkinlik(ctx context.Context, id uint, girdi EtkinlikGirdi) (*models.Etkinlik, error)
	DeleteEtkinlik(ctx context.Context, id uint) error
}

type EtkinlikService struct {
	repo         repositories.IEtkinlikRepository
	komisyonRepo repositories.IKomisyonRepository
	uyeRepo      repositories.IUyeRepository
	yoklamaRepo  repositories.IYoklamaRepository
	db           *gorm.DB
}

func NewEtkinlikService() IEtkinlikService {
	return &EtkinlikService{
		repo:         repositories.NewEtkinlikRepository(),
		komisyonRepo: repositories.NewKomisyonRepository(),
		uyeRepo:      repositories.NewUyeRepository(),
		yoklamaRepo:  repositories.NewYoklamaRepository(),
		db:           configs.GetDB(),
	}
}

func validateEtkinlikGirdi(girdi EtkinlikGirdi, tarihZorunlu bool) error {
	if strings.TrimSpace(girdi.Ad) == "" {
		return ErrEtkinlikAdGerekli
	}
	if tarihZorunlu && girdi.Tarih.IsZero() {
		return ErrEtkinlikTarihGerekli
	}
	return nil
}

func (s *EtkinlikService) ListEtkinlikler(ctx context.Context, params queryparams.ListParams) ([]models.Etkinlik, int64, error) {
	return s.repo.FindAll(ctx, params)
}

func (s *EtkinlikService) GetEtkinlikByID(ctx context.Context, id uint) (*models.Etkinlik, error) {
	etkinlik, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEtkinlikBulunamadi
		}
		return nil, err
	}
	return etkinlik, nil
}

// istenenDavetliIDs seçilen komisyonların üyeleri ile (bayrak açıksa) ilçe
// yönetim kadrosundan oluşan hedef davetli kümesini hesaplar.
func istenenDavetliIDs(ctx context.Context, komisyonRepo repositories.IKomisyonRepository, uyeRepo repositories.IUyeRepository, komisyonIDs []uint, kadroEkle bool) (map[uint]struct{}, error) {
	hedef := make(map[uint]struct{})
	for _, komisyonID := range komisyonIDs {
		uyelikler, err := komisyonRepo.FindUyelikler(ctx, komisyonID)
		if err != nil {
			return nil, err
		}
		for _, uyelik := range uyelikler {
			hedef[uyelik.UyeID] = struct{}{}
		}
	}
	if kadroEkle {
		kadro, err := uyeRepo.FindByGorevAdlari(ctx, configs.LeadershipRoleNames())
		if err != nil {
			return nil, err
		}
		for _, uye := range kadro {
			hedef[uye.ID] = struct{}{}
		}
	}
	return hedef, nil
}

// CreateEtkinlik etkinliği oluşturur, komisyonları bağlar ve davetli her üye
// için belirsiz durumda yoklama kaydı açar. Tüm adımlar tek transaction'dadır.
func (s *EtkinlikService) CreateEtkinlik(ctx context.Context, girdi EtkinlikGirdi) (*models.Etkinlik, error) {
	if err := validateEtkinlikGirdi(girdi, true); err != nil {
		return nil, err
	}

	zorunlu := true
	if girdi.Zorunlu != nil {
		zorunlu = *girdi.Zorunlu
	}

	etkinlik := models.Etkinlik{
		Ad:                    strings.TrimSpace(girdi.Ad),
		Aciklama:              strings.TrimSpace(girdi.Aciklama),
		Tarih:                 girdi.Tarih,
		Konum:                 strings.TrimSpace(girdi.Konum),
		Zorunlu:               zorunlu,
		IlceYonetimKuruluEkle: girdi.IlceYonetimKuruluEkle,
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		etkinlikRepo := repositories.NewEtkinlikRepositoryTx(tx)
		komisyonRepo := repositories.NewKomisyonRepositoryTx(tx)
		uyeRepo := repositories.NewUyeRepositoryTx(tx)
		yoklamaRepo := repositories.NewYoklamaRepositoryTx(tx)

		if err := etkinlikRepo.Create(ctx, &etkinlik); err != nil {
			return err
		}
		for _, komisyonID := range girdi.KomisyonIDs {
			if err := etkinlikRepo.CreateKomisyonBagi(ctx, etkinlik.ID, komisyonID); err != nil {
				return err
			}
		}

		hedef, err := istenenDavetliIDs(ctx, komisyonRepo, uyeRepo, girdi.KomisyonIDs, girdi.IlceYonetimKuruluEkle)
		if err != nil {
			return err
		}
		return yoklamaRepo.CreateBelirsiz(ctx, etkinlik.ID, anahtarListesi(hedef))
	})
	if txErr != nil {
		configslog.Log.Error("CreateEtkinlik: tx error", zap.Error(txErr))
		return nil, fmt.Errorf("%w: %v", ErrEtkinlikOlusturulamadi, txErr)
	}

	return s.GetEtkinlikByID(ctx, etkinlik.ID)
}

// UpdateEtkinlik etkinlik alanlarını günceller ve davetli listesini ARTIMLI
// olarak eşitler: listeden çıkan üyelerin kayıtları silinir, yeni girenlere
// belirsiz kayıt açılır, listede kalan üyelerin mevcut yoklamaları korunur.
// (Eski sistemdeki "tümünü sil, yeniden oluştur" davranışı her düzenlemede
// tutulmuş yoklamayı yok ediyordu.)
func (s *EtkinlikService) UpdateEtkinlik(ctx context.Context, id uint, girdi EtkinlikGirdi) (*models.Etkinlik, error) {
	if err := validateEtkinlikGirdi(girdi, false); err != nil {
		return nil, err
	}

	mevcut, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEtkinlikBulunamadi
		}
		return nil, err
	}

	zorunlu := true
	if girdi.Zorunlu != nil {
		zorunlu = *girdi.Zorunlu
	}
	tarih := mevcut.Tarih
	if !girdi.Tarih.IsZero() {
		tarih = girdi.Tarih
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		etkinlikRepo := repositories.NewEtkinlikRepositoryTx(tx)
		komisyonRepo := repositories.NewKomisyonRepositoryTx(tx)
		uyeRepo := repositories.NewUyeRepositoryTx(tx)
		yoklamaRepo := repositories.NewYoklamaRepositoryTx(tx)

		guncel := models.Etkinlik{
			BaseModel:             models.BaseModel{ID: id},
			Ad:                    strings.TrimSpace(girdi.Ad),
			Aciklama:              strings.TrimSpace(girdi.Aciklama),
			Tarih:                 tarih,
			Konum:                 strings.TrimSpace(girdi.Konum),
			Zorunlu:               zorunlu,
			IlceYonetimKuruluEkle: girdi.IlceYonetimKuruluEkle,
		}
		if err := etkinlikRepo.Update(ctx, &guncel); err != nil {
			return err
		}

		// Komisyon bağlarını eşitle.
		mevcutKomisyonlar, err := etkinlikRepo.FindKomisyonIDs(ctx, id)
		if err != nil {
			return err
		}
		istenen := make(map[uint]struct{}, len(girdi.KomisyonIDs))
		for _, komisyonID := range girdi.KomisyonIDs {
			istenen[komisyonID] = struct{}{}
		}
		eski := make(map[uint]struct{}, len(mevcutKomisyonlar))
		for _, komisyonID := range mevcutKomisyonlar {
			eski[komisyonID] = struct{}{}
			if _, kaliyor := istenen[komisyonID]; !kaliyor {
				if err := etkinlikRepo.DeleteKomisyonBagi(ctx, id, komisyonID); err != nil {
					return err
				}
			}
		}
		for komisyonID := range istenen {
			if _, vardi := eski[komisyonID]; !vardi {
				if err := etkinlikRepo.CreateKomisyonBagi(ctx, id, komisyonID); err != nil {
					return err
				}
			}
		}

		// Davetli listesini eşitle.
		hedef, err := istenenDavetliIDs(ctx, komisyonRepo, uyeRepo, girdi.KomisyonIDs, girdi.IlceYonetimKuruluEkle)
		if err != nil {
			return err
		}
		mevcutUyeler, err := yoklamaRepo.FindUyeIDsByEtkinlik(ctx, id)
		if err != nil {
			return err
		}

		var cikanlar []uint
		for _, uyeID := range mevcutUyeler {
			if _, kaliyor := hedef[uyeID]; !kaliyor {
				cikanlar = append(cikanlar, uyeID)
			}
			delete(hedef, uyeID) // kalanı "yeni eklenen" olarak bırak
		}
		if err := yoklamaRepo.DeleteByEtkinlikVeUyeler(ctx, id, cikanlar); err != nil {
			return err
		}
		return yoklamaRepo.CreateBelirsiz(ctx, id, anahtarListesi(hedef))
	})
	if txErr != nil {
		configslog.Log.Error("UpdateEtkinlik: tx error", zap.Uint("id", id), zap.Error(txErr))
		return nil, fmt.Errorf("%w: %v", ErrEtkinlikGuncellenemedi, txErr)
	}

	return s.GetEtkinlikByID(ctx, id)
}

func (s *EtkinlikService) DeleteEtkinlik(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrEtkinlikBulunamadi
	}
	if err != nil {
		configslog.Log.Error("DeleteEtkinlik error", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrEtkinlikSilinemedi, err)
	}
	return nil
}

func anahtarListesi(kume map[uint]struct{}) []uint {
	ids := make([]uint, 0, len(kume))
	for id := range kume {
		ids = append(ids, id)
	}
	return ids
}

var _ IEtkinlikService = (*EtkinlikService)(nil)

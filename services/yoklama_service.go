package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"uyetakip.link/configs"
	"uyetakip.link/configs/configslog"
	"uyetakip.link/models"
	"uyetakip.link/pkg/turkishsort"
	"uyetakip.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// YoklamaServiceError özel servis hataları
type YoklamaServiceError string

func (e YoklamaServiceError) Error() string { return string(e) }

const (
	ErrYoklamaEtkinlikBulunamadi YoklamaServiceError = "etkinlik bulunamadı"
	ErrYoklamaUyeBulunamadi      YoklamaServiceError = "üye bulunamadı"
	ErrYoklamaKaydiBulunamadi    YoklamaServiceError = "yoklama kaydı bulunamadı"
	ErrYoklamaUyeIDGerekli       YoklamaServiceError = "üye ID gereklidir"
	ErrYoklamaDurumGerekli       YoklamaServiceError = "durum gereklidir"
	ErrYoklamaMazeretGerekli     YoklamaServiceError = "mazeret gerekçesi gereklidir"
	ErrYoklamaGecersizDurum      YoklamaServiceError = "geçersiz yoklama durumu"
	ErrYoklamaTopluDurumKisitli  YoklamaServiceError = "toplu yoklamada yalnızca Geldi veya Gelmedi kullanılabilir"
	ErrYoklamaKaydedilemedi      YoklamaServiceError = "yoklama kaydedilemedi"
)

// YoklamaBilgi bir üyenin etkinlikteki yoklama kaydının API temsili.
// Durum alanı etikettir ("Geldi", "Mazeretli: <gerekçe>" vb.).
type YoklamaBilgi struct {
	ID        uint      `json:"id"`
	Katildi   bool      `json:"katildi"`
	Durum     string    `json:"durum"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UyeYoklama davetli listesindeki bir üye ve (varsa) yoklama kaydı.
// Yoklama nil ise üye belirsizdir.
type UyeYoklama struct {
	models.Uye
	Yoklama *YoklamaBilgi `json:"yoklama"`
}

// YoklamaIstatistik etkinlik bazında özet sayılar. Belirsiz bağımsız
// sayılmaz; toplamdan diğer üç durumun kalanıdır, dolayısıyla
// Toplam = Geldi + Mazeretli + Gelmedi + Belirsiz her zaman sağlanır.
type YoklamaIstatistik struct {
	Toplam       int `json:"toplam"`
	Geldi        int `json:"geldi"`
	Mazeretli    int `json:"mazeretli"`
	Gelmedi      int `json:"gelmedi"`
	Belirsiz     int `json:"belirsiz"`
	KatilimOrani int `json:"katilimOrani"`
}

// EtkinlikOzet yoklama listesi yanıtındaki etkinlik başlığı.
type EtkinlikOzet struct {
	ID       uint      `json:"id"`
	Ad       string    `json:"ad"`
	Tarih    time.Time `json:"tarih"`
	Konum    string    `json:"konum,omitempty"`
	Aciklama string    `json:"aciklama,omitempty"`
}

// YoklamaListesi GET yanıtının tamamı: etkinlik, davetli üyeler ve özet.
type YoklamaListesi struct {
	Etkinlik EtkinlikOzet      `json:"etkinlik"`
	Uyeler   []UyeYoklama      `json:"uyeler"`
	Stats    YoklamaIstatistik `json:"stats"`
}

// YoklamaGirdi toplu yoklama isteğindeki tek kalem.
type YoklamaGirdi struct {
	UyeID uint   `json:"uyeId"`
	Durum string `json:"durum"`
}

// IYoklamaService etkinlik yoklaması işlemleri için arayüz.
type IYoklamaService interface {
	GetYoklamaListesi(ctx context.Context, etkinlikID uint) (*YoklamaListesi, error)
	KaydetYoklama(ctx context.Context, etkinlikID, uyeID uint, durumEtiket string) (*models.EtkinlikYoklama, error)
	TopluKaydetYoklama(ctx context.Context, etkinlikID uint, girdiler []YoklamaGirdi) (int, error)
	SilYoklama(ctx context.Context, etkinlikID, uyeID uint) error
}

// YoklamaService davetli listesi çözümleme, yoklama birleştirme ve
// istatistik hesabını tek noktada toplar.
type YoklamaService struct {
	etkinlikRepo repositories.IEtkinlikRepository
	uyeRepo      repositories.IUyeRepository
	yoklamaRepo  repositories.IYoklamaRepository
	db           *gorm.DB
}

func NewYoklamaService() IYoklamaService {
	return &YoklamaService{
		etkinlikRepo: repositories.NewEtkinlikRepository(),
		uyeRepo:      repositories.NewUyeRepository(),
		yoklamaRepo:  repositories.NewYoklamaRepository(),
		db:           configs.GetDB(),
	}
}

// --- Davetli listesi çözümleme ---

// cozumleDavetliler etkinliğin davetli üye kümesini hesaplar: bağlı
// komisyonların tüm üyeleri, artı bayrak açıksa ilçe yönetim kadrosu.
// Aynı üye birden fazla yoldan gelirse bir kez sayılır.
func (s *YoklamaService) cozumleDavetliler(ctx context.Context, etkinlik *models.Etkinlik) ([]models.Uye, error) {
	gorulen := make(map[uint]struct{})
	var davetliler []models.Uye

	for _, ek := range etkinlik.Komisyonlar {
		for _, uyelik := range ek.Komisyon.Uyeler {
			if _, ok := gorulen[uyelik.Uye.ID]; ok {
				continue
			}
			gorulen[uyelik.Uye.ID] = struct{}{}
			davetliler = append(davetliler, uyelik.Uye)
		}
	}

	if etkinlik.IlceYonetimKuruluEkle {
		kadro, err := s.uyeRepo.FindByGorevAdlari(ctx, configs.LeadershipRoleNames())
		if err != nil {
			return nil, err
		}
		for _, uye := range kadro {
			if _, ok := gorulen[uye.ID]; ok {
				continue
			}
			gorulen[uye.ID] = struct{}{}
			davetliler = append(davetliler, uye)
		}
	}

	return davetliler, nil
}

// GetYoklamaListesi etkinliğin davetli listesini yoklama durumlarıyla
// birleştirip istatistiklerle döndürür. Davetlisi olmayan etkinlik boş liste
// verir, hata değildir.
func (s *YoklamaService) GetYoklamaListesi(ctx context.Context, etkinlikID uint) (*YoklamaListesi, error) {
	etkinlik, err := s.etkinlikRepo.FindByIDWithRoster(ctx, etkinlikID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrYoklamaEtkinlikBulunamadi
		}
		return nil, err
	}

	davetliler, err := s.cozumleDavetliler(ctx, etkinlik)
	if err != nil {
		return nil, err
	}

	uyeIDs := make([]uint, 0, len(davetliler))
	for _, uye := range davetliler {
		uyeIDs = append(uyeIDs, uye.ID)
	}

	kayitlar, err := s.yoklamaRepo.FindByEtkinlikVeUyeler(ctx, etkinlikID, uyeIDs)
	if err != nil {
		return nil, err
	}

	kayitMap := make(map[uint]models.EtkinlikYoklama, len(kayitlar))
	for _, kayit := range kayitlar {
		kayitMap[kayit.UyeID] = kayit
	}

	uyeler := make([]UyeYoklama, 0, len(davetliler))
	for _, uye := range davetliler {
		satir := UyeYoklama{Uye: uye}
		if kayit, ok := kayitMap[uye.ID]; ok {
			satir.Yoklama = &YoklamaBilgi{
				ID:        kayit.ID,
				Katildi:   kayit.Katildi(),
				Durum:     kayit.DurumVaryant().Etiket(),
				UpdatedAt: kayit.UpdatedAt,
			}
		}
		uyeler = append(uyeler, satir)
	}

	// Türkçe alfabeye göre ada sırala.
	sort.SliceStable(uyeler, func(i, j int) bool {
		return turkishsort.Compare(uyeler[i].TamAd(), uyeler[j].TamAd()) < 0
	})

	return &YoklamaListesi{
		Etkinlik: EtkinlikOzet{
			ID:       etkinlik.ID,
			Ad:       etkinlik.Ad,
			Tarih:    etkinlik.Tarih,
			Konum:    etkinlik.Konum,
			Aciklama: etkinlik.Aciklama,
		},
		Uyeler: uyeler,
		Stats:  hesaplaIstatistik(uyeler),
	}, nil
}

// hesaplaIstatistik birleştirilmiş listeden özet sayıları türetir.
func hesaplaIstatistik(uyeler []UyeYoklama) YoklamaIstatistik {
	stats := YoklamaIstatistik{Toplam: len(uyeler)}
	for _, satir := range uyeler {
		if satir.Yoklama == nil {
			continue
		}
		switch {
		case satir.Yoklama.Katildi || satir.Yoklama.Durum == models.EtiketGeldi:
			stats.Geldi++
		case strings.HasPrefix(satir.Yoklama.Durum, models.EtiketMazeretli):
			stats.Mazeretli++
		case satir.Yoklama.Durum == models.EtiketGelmedi:
			stats.Gelmedi++
		}
	}
	stats.Belirsiz = stats.Toplam - stats.Geldi - stats.Mazeretli - stats.Gelmedi
	if stats.Toplam > 0 {
		stats.KatilimOrani = int(float64(stats.Geldi)/float64(stats.Toplam)*100 + 0.5)
	}
	return stats
}

// --- Yazma yolu ---

// dogrulaDurum etiketi çözümler ve yazma kurallarını uygular: Mazeretli
// boş gerekçeyle kaydedilemez, tanınmayan etiket reddedilir.
func dogrulaDurum(durumEtiket string) (models.YoklamaDurumu, error) {
	if strings.TrimSpace(durumEtiket) == "" {
		return models.YoklamaDurumu{}, ErrYoklamaDurumGerekli
	}
	durum, err := models.ParseYoklamaDurumu(durumEtiket)
	if err != nil {
		return models.YoklamaDurumu{}, ErrYoklamaGecersizDurum
	}
	if durum.Kod == models.DurumMazeretli {
		durum.Mazeret = strings.TrimSpace(durum.Mazeret)
		if durum.Mazeret == "" {
			return models.YoklamaDurumu{}, ErrYoklamaMazeretGerekli
		}
	}
	return durum, nil
}

// etkinlikVarMi yazmadan önce etkinliğin varlığını doğrular; FK ihlalinin
// 500 olarak sızması yerine alan hatası döner.
func (s *YoklamaService) etkinlikVarMi(ctx context.Context, etkinlikID uint) error {
	if _, err := s.etkinlikRepo.FindByID(ctx, etkinlikID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrYoklamaEtkinlikBulunamadi
		}
		return err
	}
	return nil
}

// KaydetYoklama tek üyenin durumunu upsert eder. Aynı çifte tekrar yazmak
// kaydı günceller, yeni satır açmaz.
func (s *YoklamaService) KaydetYoklama(ctx context.Context, etkinlikID, uyeID uint, durumEtiket string) (*models.EtkinlikYoklama, error) {
	if uyeID == 0 {
		return nil, ErrYoklamaUyeIDGerekli
	}
	durum, err := dogrulaDurum(durumEtiket)
	if err != nil {
		return nil, err
	}
	if err := s.etkinlikVarMi(ctx, etkinlikID); err != nil {
		return nil, err
	}

	uye, err := s.uyeRepo.FindByID(ctx, uyeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrYoklamaUyeBulunamadi
		}
		return nil, err
	}

	yoklama := models.EtkinlikYoklama{
		EtkinlikID: etkinlikID,
		UyeID:      uyeID,
		Durum:      durum.Kod,
		Mazeret:    durum.Mazeret,
	}
	if err := s.yoklamaRepo.Upsert(ctx, &yoklama); err != nil {
		configslog.Log.Error("KaydetYoklama: upsert error",
			zap.Uint("etkinlikID", etkinlikID), zap.Uint("uyeID", uyeID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrYoklamaKaydedilemedi, err)
	}

	yoklama.Uye = *uye
	return &yoklama, nil
}

// TopluKaydetYoklama birden fazla üyenin durumunu tek seferde yazar.
// Toplu yazmada yalnızca Geldi/Gelmedi kabul edilir (mazeret gerekçesi tekil
// uçtan girilir). Yazmaların tamamı tek transaction içinde yapılır: herhangi
// bir kalem geçersizse veya yazılamazsa hiçbiri kalıcı olmaz.
func (s *YoklamaService) TopluKaydetYoklama(ctx context.Context, etkinlikID uint, girdiler []YoklamaGirdi) (int, error) {
	hazirlanan := make([]models.EtkinlikYoklama, 0, len(girdiler))
	for _, girdi := range girdiler {
		if girdi.UyeID == 0 {
			return 0, ErrYoklamaUyeIDGerekli
		}
		durum, err := dogrulaDurum(girdi.Durum)
		if err != nil {
			return 0, err
		}
		if durum.Kod != models.DurumGeldi && durum.Kod != models.DurumGelmedi {
			return 0, ErrYoklamaTopluDurumKisitli
		}
		hazirlanan = append(hazirlanan, models.EtkinlikYoklama{
			EtkinlikID: etkinlikID,
			UyeID:      girdi.UyeID,
			Durum:      durum.Kod,
		})
	}
	if err := s.etkinlikVarMi(ctx, etkinlikID); err != nil {
		return 0, err
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewYoklamaRepositoryTx(tx)
		for i := range hazirlanan {
			if err := repo.Upsert(ctx, &hazirlanan[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("TopluKaydetYoklama: tx error",
			zap.Uint("etkinlikID", etkinlikID), zap.Int("adet", len(girdiler)), zap.Error(txErr))
		return 0, fmt.Errorf("%w: %v", ErrYoklamaKaydedilemedi, txErr)
	}
	return len(hazirlanan), nil
}

// SilYoklama kaydı siler. Olmayan kaydı silmek hatadır.
func (s *YoklamaService) SilYoklama(ctx context.Context, etkinlikID, uyeID uint) error {
	if uyeID == 0 {
		return ErrYoklamaUyeIDGerekli
	}
	err := s.yoklamaRepo.DeleteByEtkinlikVeUye(ctx, etkinlikID, uyeID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrYoklamaKaydiBulunamadi
	}
	return err
}

var _ IYoklamaService = (*YoklamaService)(nil)

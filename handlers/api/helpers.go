package api

import (
	"errors"
	"time"

	"uyetakip.link/configs/configslog"
	"uyetakip.link/pkg/cache"
	"uyetakip.link/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// validate DTO struct tag doğrulaması için paylaşılan örnek.
var validate = validator.New()

// listeCache liste uçlarının okuma önbelleği. TTL'ler eski istemci
// önbelleğinin stale-time değerleriyle aynıdır; yazan uçlar ilgili anahtarı
// düşürür.
var listeCache = newListeCache()

const (
	cacheUyeler      = "uyeler"
	cacheKomisyonlar = "komisyonlar"
	cacheMahalleler  = "mahalleler"
	cacheEtkinlikler = "etkinlikler"
	cacheGorevler    = "ilce-gorevler"
)

func newListeCache() *cache.Cache {
	c := cache.New(5 * time.Minute)
	c.SetTTL(cacheEtkinlikler, 2*time.Minute)
	c.SetTTL(cacheGorevler, 10*time.Minute)
	return c
}

// notFoundHatalari 404'e eşlenen servis hataları.
var notFoundHatalari = []error{
	services.ErrYoklamaEtkinlikBulunamadi,
	services.ErrYoklamaUyeBulunamadi,
	services.ErrYoklamaKaydiBulunamadi,
	services.ErrEtkinlikBulunamadi,
	services.ErrUyeBulunamadi,
	services.ErrKomisyonBulunamadi,
	services.ErrKomisyonUyelikBulunamadi,
	services.ErrMahalleBulunamadi,
	services.ErrGorevBulunamadi,
}

// dogrulamaHatalari 400'e eşlenen servis hataları.
var dogrulamaHatalari = []error{
	services.ErrYoklamaUyeIDGerekli,
	services.ErrYoklamaDurumGerekli,
	services.ErrYoklamaMazeretGerekli,
	services.ErrYoklamaGecersizDurum,
	services.ErrYoklamaTopluDurumKisitli,
	services.ErrEtkinlikAdGerekli,
	services.ErrEtkinlikTarihGerekli,
	services.ErrUyeAdGerekli,
	services.ErrUyeSoyadGerekli,
	services.ErrKomisyonAdGerekli,
	services.ErrKomisyonUyeGerekli,
	services.ErrMahalleAdGerekli,
	services.ErrGorevAdGerekli,
	services.ErrGorevAdiMevcut,
}

// hataYaniti servis hatasını HTTP yanıtına çevirir. Tanınmayan hatalar
// ayrıntı sızdırmadan 500 döner.
func hataYaniti(c *fiber.Ctx, err error, genelMesaj string) error {
	for _, bilinen := range notFoundHatalari {
		if errors.Is(err, bilinen) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": bilinen.Error()})
		}
	}
	for _, bilinen := range dogrulamaHatalari {
		if errors.Is(err, bilinen) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": bilinen.Error()})
		}
	}
	if errors.Is(err, services.ErrKomisyonYetkisizIslem) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": services.ErrKomisyonYetkisizIslem.Error()})
	}
	configslog.Log.Error(genelMesaj, zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": genelMesaj})
}

// parseIDParam yol parametresindeki ID'yi okur; geçersizse 0 döner.
func parseIDParam(c *fiber.Ctx, name string) uint {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0
	}
	return uint(id)
}

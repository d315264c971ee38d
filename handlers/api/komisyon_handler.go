package api

import (
	"strconv"

	"uyetakip.link/services"

	"github.com/gofiber/fiber/v2"
)

// KomisyonHandler komisyon ve komisyon üyeliği uçları.
type KomisyonHandler struct {
	service services.IKomisyonService
}

func NewKomisyonHandler() *KomisyonHandler {
	return &KomisyonHandler{service: services.NewKomisyonService()}
}

// ListKomisyonlar (GET /api/komisyonlar)
func (h *KomisyonHandler) ListKomisyonlar(c *fiber.Ctx) error {
	if veri, bayat, ok := listeCache.Get(cacheKomisyonlar); ok && !bayat {
		return c.JSON(veri)
	}
	komisyonlar, err := h.service.ListKomisyonlar(c.UserContext())
	if err != nil {
		return hataYaniti(c, err, "Komisyonlar listelenemedi")
	}
	listeCache.Set(cacheKomisyonlar, komisyonlar)
	return c.JSON(komisyonlar)
}

// GetKomisyon (GET /api/komisyonlar/:id)
// Komisyonu üyeleri ve etkinlikleriyle döner.
func (h *KomisyonHandler) GetKomisyon(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz komisyon ID"})
	}
	komisyon, err := h.service.GetKomisyonByID(c.UserContext(), id)
	if err != nil {
		return hataYaniti(c, err, "Komisyon getirilemedi")
	}
	return c.JSON(komisyon)
}

// CreateKomisyon (POST /api/komisyonlar)
func (h *KomisyonHandler) CreateKomisyon(c *fiber.Ctx) error {
	var girdi services.KomisyonGirdi
	if err := c.BodyParser(&girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}
	if err := validate.Struct(girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz komisyon verisi: " + err.Error()})
	}

	komisyon, err := h.service.CreateKomisyon(c.UserContext(), girdi)
	if err != nil {
		return hataYaniti(c, err, "Komisyon oluşturulamadı")
	}
	listeCache.Invalidate(cacheKomisyonlar)
	return c.Status(fiber.StatusCreated).JSON(komisyon)
}

// UpdateKomisyon (PUT /api/komisyonlar/:id)
func (h *KomisyonHandler) UpdateKomisyon(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz komisyon ID"})
	}
	var girdi services.KomisyonGirdi
	if err := c.BodyParser(&girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}
	if err := validate.Struct(girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz komisyon verisi: " + err.Error()})
	}

	komisyon, err := h.service.UpdateKomisyon(c.UserContext(), id, girdi)
	if err != nil {
		return hataYaniti(c, err, "Komisyon güncellenemedi")
	}
	listeCache.Invalidate(cacheKomisyonlar)
	return c.JSON(komisyon)
}

// DeleteKomisyon (DELETE /api/komisyonlar/:id)
func (h *KomisyonHandler) DeleteKomisyon(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz komisyon ID"})
	}
	if err := h.service.DeleteKomisyon(c.UserContext(), id); err != nil {
		return hataYaniti(c, err, "Komisyon silinemedi")
	}
	listeCache.Invalidate(cacheKomisyonlar)
	return c.JSON(fiber.Map{"message": "Komisyon silindi"})
}

type uyelikIstek struct {
	UyeID uint   `json:"uyeId"`
	Gorev string `json:"gorev"`
}

// EkleUye (POST /api/komisyonlar/:id/uyeler)
// Üye zaten komisyondaysa görev alanı güncellenir.
func (h *KomisyonHandler) EkleUye(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz komisyon ID"})
	}
	var istek uyelikIstek
	if err := c.BodyParser(&istek); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	uyelik, err := h.service.EkleUye(c.UserContext(), id, istek.UyeID, istek.Gorev)
	if err != nil {
		return hataYaniti(c, err, "Üye komisyona eklenemedi")
	}
	listeCache.Invalidate(cacheKomisyonlar)
	return c.Status(fiber.StatusCreated).JSON(uyelik)
}

// uyelikIDParam üyelik kaydının ID'sini uyeKomisyonId query parametresinden
// okur; geçersizse 0 döner.
func uyelikIDParam(c *fiber.Ctx) uint {
	uyelikID, err := strconv.Atoi(c.Query("uyeKomisyonId"))
	if err != nil || uyelikID <= 0 {
		return 0
	}
	return uint(uyelikID)
}

// GuncelleUyeGorev (PUT /api/komisyonlar/:id/uyeler?uyeKomisyonId=)
func (h *KomisyonHandler) GuncelleUyeGorev(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz komisyon ID"})
	}
	uyelikID := uyelikIDParam(c)
	if uyelikID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Üyelik ID gereklidir"})
	}
	var istek uyelikIstek
	if err := c.BodyParser(&istek); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	uyelik, err := h.service.GuncelleUyeGorev(c.UserContext(), id, uyelikID, istek.Gorev)
	if err != nil {
		return hataYaniti(c, err, "Komisyon üyeliği güncellenemedi")
	}
	listeCache.Invalidate(cacheKomisyonlar)
	return c.JSON(uyelik)
}

// CikarUye (DELETE /api/komisyonlar/:id/uyeler?uyeKomisyonId=)
func (h *KomisyonHandler) CikarUye(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz komisyon ID"})
	}
	uyelikID := uyelikIDParam(c)
	if uyelikID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Üyelik ID gereklidir"})
	}
	if err := h.service.CikarUye(c.UserContext(), id, uyelikID); err != nil {
		return hataYaniti(c, err, "Üye komisyondan çıkarılamadı")
	}
	listeCache.Invalidate(cacheKomisyonlar)
	return c.JSON(fiber.Map{"message": "Üye komisyondan çıkarıldı"})
}

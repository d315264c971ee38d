package api

import (
	"uyetakip.link/pkg/queryparams"
	"uyetakip.link/services"

	"github.com/gofiber/fiber/v2"
)

// UyeHandler üye CRUD uçları.
type UyeHandler struct {
	service services.IUyeService
}

func NewUyeHandler() *UyeHandler {
	return &UyeHandler{service: services.NewUyeService()}
}

// ListUyeler (GET /api/uyeler)
// Görev önceliği + Türkçe ad sırasıyla döner. Filtresiz ve sayfasız istek
// önbellekten servis edilebilir.
func (h *UyeHandler) ListUyeler(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	varsayilan := params.Name == "" && params.PerPage == 0
	if varsayilan {
		if veri, bayat, ok := listeCache.Get(cacheUyeler); ok && !bayat {
			return c.JSON(veri)
		}
	}

	uyeler, _, err := h.service.ListUyeler(c.UserContext(), params)
	if err != nil {
		return hataYaniti(c, err, "Üyeler listelenemedi")
	}
	if varsayilan {
		listeCache.Set(cacheUyeler, uyeler)
	}
	return c.JSON(uyeler)
}

// GetUye (GET /api/uyeler/:id)
// Üye, yoklama geçmişi ve kişisel istatistikleriyle döner.
func (h *UyeHandler) GetUye(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz üye ID"})
	}
	detay, err := h.service.GetUyeDetay(c.UserContext(), id)
	if err != nil {
		return hataYaniti(c, err, "Üye getirilemedi")
	}
	return c.JSON(detay)
}

// CreateUye (POST /api/uyeler)
func (h *UyeHandler) CreateUye(c *fiber.Ctx) error {
	var girdi services.UyeGirdi
	if err := c.BodyParser(&girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}
	if err := validate.Struct(girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz üye verisi: " + err.Error()})
	}

	uye, err := h.service.CreateUye(c.UserContext(), girdi)
	if err != nil {
		return hataYaniti(c, err, "Üye oluşturulamadı")
	}
	listeCache.Invalidate(cacheUyeler)
	return c.Status(fiber.StatusCreated).JSON(uye)
}

// UpdateUye (PUT /api/uyeler/:id)
func (h *UyeHandler) UpdateUye(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz üye ID"})
	}
	var girdi services.UyeGirdi
	if err := c.BodyParser(&girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}
	if err := validate.Struct(girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz üye verisi: " + err.Error()})
	}

	uye, err := h.service.UpdateUye(c.UserContext(), id, girdi)
	if err != nil {
		return hataYaniti(c, err, "Üye güncellenemedi")
	}
	listeCache.Invalidate(cacheUyeler)
	return c.JSON(uye)
}

// DeleteUye (DELETE /api/uyeler/:id)
func (h *UyeHandler) DeleteUye(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz üye ID"})
	}
	if err := h.service.DeleteUye(c.UserContext(), id); err != nil {
		return hataYaniti(c, err, "Üye silinemedi")
	}
	listeCache.Invalidate(cacheUyeler)
	return c.JSON(fiber.Map{"message": "Üye silindi"})
}

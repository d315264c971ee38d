package api

import (
	"uyetakip.link/pkg/queryparams"
	"uyetakip.link/services"

	"github.com/gofiber/fiber/v2"
)

// EtkinlikHandler etkinlik CRUD uçları.
type EtkinlikHandler struct {
	service services.IEtkinlikService
}

func NewEtkinlikHandler() *EtkinlikHandler {
	return &EtkinlikHandler{service: services.NewEtkinlikService()}
}

// ListEtkinlikler (GET /api/etkinlikler)
// Sayfalama parametresi verilmezse tüm etkinlikler döner ve yanıt
// önbellekten servis edilebilir.
func (h *EtkinlikHandler) ListEtkinlikler(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("tarih")
	}
	params.Validate()

	sayfalamasiz := params.PerPage == 0
	if sayfalamasiz {
		if veri, bayat, ok := listeCache.Get(cacheEtkinlikler); ok && !bayat {
			return c.JSON(veri)
		}
	}

	etkinlikler, _, err := h.service.ListEtkinlikler(c.UserContext(), params)
	if err != nil {
		return hataYaniti(c, err, "Etkinlikler listelenemedi")
	}
	if sayfalamasiz {
		listeCache.Set(cacheEtkinlikler, etkinlikler)
	}
	return c.JSON(etkinlikler)
}

// GetEtkinlik (GET /api/etkinlikler/:id)
func (h *EtkinlikHandler) GetEtkinlik(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz etkinlik ID"})
	}
	etkinlik, err := h.service.GetEtkinlikByID(c.UserContext(), id)
	if err != nil {
		return hataYaniti(c, err, "Etkinlik getirilemedi")
	}
	return c.JSON(etkinlik)
}

// CreateEtkinlik (POST /api/etkinlikler)
func (h *EtkinlikHandler) CreateEtkinlik(c *fiber.Ctx) error {
	var girdi services.EtkinlikGirdi
	if err := c.BodyParser(&girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	etkinlik, err := h.service.CreateEtkinlik(c.UserContext(), girdi)
	if err != nil {
		return hataYaniti(c, err, "Etkinlik oluşturulamadı")
	}
	listeCache.Invalidate(cacheEtkinlikler)
	return c.Status(fiber.StatusCreated).JSON(etkinlik)
}

// UpdateEtkinlik (PUT /api/etkinlikler/:id)
// Davetli listesi artımlı eşitlenir; listede kalan üyelerin yoklamaları
// korunur.
func (h *EtkinlikHandler) UpdateEtkinlik(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz etkinlik ID"})
	}
	var girdi services.EtkinlikGirdi
	if err := c.BodyParser(&girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	etkinlik, err := h.service.UpdateEtkinlik(c.UserContext(), id, girdi)
	if err != nil {
		return hataYaniti(c, err, "Etkinlik güncellenemedi")
	}
	listeCache.Invalidate(cacheEtkinlikler)
	return c.JSON(etkinlik)
}

// DeleteEtkinlik (DELETE /api/etkinlikler/:id)
func (h *EtkinlikHandler) DeleteEtkinlik(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz etkinlik ID"})
	}
	if err := h.service.DeleteEtkinlik(c.UserContext(), id); err != nil {
		return hataYaniti(c, err, "Etkinlik silinemedi")
	}
	listeCache.Invalidate(cacheEtkinlikler)
	return c.JSON(fiber.Map{"message": "Etkinlik silindi"})
}

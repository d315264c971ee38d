package api

import (
	"uyetakip.link/services"

	"github.com/gofiber/fiber/v2"
)

// IlceGorevHandler ilçe görevi uçları.
type IlceGorevHandler struct {
	service services.IIlceGorevService
}

func NewIlceGorevHandler() *IlceGorevHandler {
	return &IlceGorevHandler{service: services.NewIlceGorevService()}
}

// ListGorevler (GET /api/ilce-gorevler)
// Sıra alanına göre döner; liste nadiren değiştiği için uzun TTL ile
// önbelleklenir.
func (h *IlceGorevHandler) ListGorevler(c *fiber.Ctx) error {
	if veri, bayat, ok := listeCache.Get(cacheGorevler); ok && !bayat {
		return c.JSON(veri)
	}
	gorevler, err := h.service.ListGorevler(c.UserContext())
	if err != nil {
		return hataYaniti(c, err, "Görevler listelenemedi")
	}
	listeCache.Set(cacheGorevler, gorevler)
	return c.JSON(gorevler)
}

// GetGorev (GET /api/ilce-gorevler/:id)
func (h *IlceGorevHandler) GetGorev(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz görev ID"})
	}
	gorev, err := h.service.GetGorevByID(c.UserContext(), id)
	if err != nil {
		return hataYaniti(c, err, "Görev getirilemedi")
	}
	return c.JSON(gorev)
}

// CreateGorev (POST /api/ilce-gorevler)
func (h *IlceGorevHandler) CreateGorev(c *fiber.Ctx) error {
	var girdi services.GorevGirdi
	if err := c.BodyParser(&girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}
	if err := validate.Struct(girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz görev verisi: " + err.Error()})
	}

	gorev, err := h.service.CreateGorev(c.UserContext(), girdi)
	if err != nil {
		return hataYaniti(c, err, "Görev oluşturulamadı")
	}
	listeCache.Invalidate(cacheGorevler)
	return c.Status(fiber.StatusCreated).JSON(gorev)
}

// UpdateGorev (PUT /api/ilce-gorevler/:id)
func (h *IlceGorevHandler) UpdateGorev(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz görev ID"})
	}
	var girdi services.GorevGirdi
	if err := c.BodyParser(&girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}
	if err := validate.Struct(girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz görev verisi: " + err.Error()})
	}

	gorev, err := h.service.UpdateGorev(c.UserContext(), id, girdi)
	if err != nil {
		return hataYaniti(c, err, "Görev güncellenemedi")
	}
	listeCache.Invalidate(cacheGorevler)
	return c.JSON(gorev)
}

// DeleteGorev (DELETE /api/ilce-gorevler/:id)
func (h *IlceGorevHandler) DeleteGorev(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz görev ID"})
	}
	if err := h.service.DeleteGorev(c.UserContext(), id); err != nil {
		return hataYaniti(c, err, "Görev silinemedi")
	}
	listeCache.Invalidate(cacheGorevler)
	return c.JSON(fiber.Map{"message": "Görev silindi"})
}

// SeedGorevler (POST /api/seed/gorevler)
// Standart görev setini ekler; tekrar çağrılması güvenlidir.
func (h *IlceGorevHandler) SeedGorevler(c *fiber.Ctx) error {
	gorevler, err := h.service.SeedVarsayilanGorevler(c.UserContext())
	if err != nil {
		return hataYaniti(c, err, "Varsayılan görevler eklenemedi")
	}
	listeCache.Invalidate(cacheGorevler)
	return c.JSON(fiber.Map{
		"message":  "Varsayılan görevler hazır",
		"gorevler": gorevler,
	})
}

package api

import (
	"uyetakip.link/services"

	"github.com/gofiber/fiber/v2"
)

// MahalleHandler mahalle CRUD uçları.
type MahalleHandler struct {
	service services.IMahalleService
}

func NewMahalleHandler() *MahalleHandler {
	return &MahalleHandler{service: services.NewMahalleService()}
}

// ListMahalleler (GET /api/mahalleler)
func (h *MahalleHandler) ListMahalleler(c *fiber.Ctx) error {
	if veri, bayat, ok := listeCache.Get(cacheMahalleler); ok && !bayat {
		return c.JSON(veri)
	}
	mahalleler, err := h.service.ListMahalleler(c.UserContext())
	if err != nil {
		return hataYaniti(c, err, "Mahalleler listelenemedi")
	}
	listeCache.Set(cacheMahalleler, mahalleler)
	return c.JSON(mahalleler)
}

// GetMahalle (GET /api/mahalleler/:id)
func (h *MahalleHandler) GetMahalle(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz mahalle ID"})
	}
	mahalle, err := h.service.GetMahalleByID(c.UserContext(), id)
	if err != nil {
		return hataYaniti(c, err, "Mahalle getirilemedi")
	}
	return c.JSON(mahalle)
}

// CreateMahalle (POST /api/mahalleler)
func (h *MahalleHandler) CreateMahalle(c *fiber.Ctx) error {
	var girdi services.MahalleGirdi
	if err := c.BodyParser(&girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}
	if err := validate.Struct(girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz mahalle verisi: " + err.Error()})
	}

	mahalle, err := h.service.CreateMahalle(c.UserContext(), girdi)
	if err != nil {
		return hataYaniti(c, err, "Mahalle oluşturulamadı")
	}
	listeCache.Invalidate(cacheMahalleler)
	return c.Status(fiber.StatusCreated).JSON(mahalle)
}

// UpdateMahalle (PUT /api/mahalleler/:id)
func (h *MahalleHandler) UpdateMahalle(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz mahalle ID"})
	}
	var girdi services.MahalleGirdi
	if err := c.BodyParser(&girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}
	if err := validate.Struct(girdi); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz mahalle verisi: " + err.Error()})
	}

	mahalle, err := h.service.UpdateMahalle(c.UserContext(), id, girdi)
	if err != nil {
		return hataYaniti(c, err, "Mahalle güncellenemedi")
	}
	listeCache.Invalidate(cacheMahalleler)
	return c.JSON(mahalle)
}

// DeleteMahalle (DELETE /api/mahalleler/:id)
func (h *MahalleHandler) DeleteMahalle(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz mahalle ID"})
	}
	if err := h.service.DeleteMahalle(c.UserContext(), id); err != nil {
		return hataYaniti(c, err, "Mahalle silinemedi")
	}
	listeCache.Invalidate(cacheMahalleler)
	return c.JSON(fiber.Map{"message": "Mahalle silindi"})
}

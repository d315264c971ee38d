package api

import (
	"strconv"

	"uyetakip.link/services"

	"github.com/gofiber/fiber/v2"
)

// YoklamaHandler etkinlik yoklaması uçları.
type YoklamaHandler struct {
	service services.IYoklamaService
}

func NewYoklamaHandler() *YoklamaHandler {
	return &YoklamaHandler{service: services.NewYoklamaService()}
}

// GetYoklamaListesi (GET /api/etkinlikler/:id/yoklama)
// Etkinliğin davetli listesini yoklama durumları ve istatistiklerle döner.
func (h *YoklamaHandler) GetYoklamaListesi(c *fiber.Ctx) error {
	etkinlikID := parseIDParam(c, "id")
	if etkinlikID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz etkinlik ID"})
	}

	liste, err := h.service.GetYoklamaListesi(c.UserContext(), etkinlikID)
	if err != nil {
		return hataYaniti(c, err, "Yoklama listesi getirilemedi")
	}
	return c.JSON(liste)
}

type yoklamaIstek struct {
	UyeID uint   `json:"uyeId"`
	Durum string `json:"durum"`
}

// KaydetYoklama (POST /api/etkinlikler/:id/yoklama)
// Gövde tek nesne ise tekil, dizi ise toplu kayıt yapar. Toplu istekte tüm
// kalemler tek transaction'da yazılır; biri geçersizse hiçbiri kaydedilmez.
func (h *YoklamaHandler) KaydetYoklama(c *fiber.Ctx) error {
	etkinlikID := parseIDParam(c, "id")
	if etkinlikID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz etkinlik ID"})
	}

	// Dizi mi tekil mi? Önce diziyi dene.
	var toplu []services.YoklamaGirdi
	if err := c.BodyParser(&toplu); err == nil {
		adet, err := h.service.TopluKaydetYoklama(c.UserContext(), etkinlikID, toplu)
		if err != nil {
			return hataYaniti(c, err, "Yoklama kaydedilemedi")
		}
		return c.JSON(fiber.Map{
			"message": strconv.Itoa(adet) + " üye için yoklama kaydedildi",
			"count":   adet,
		})
	}

	var istek yoklamaIstek
	if err := c.BodyParser(&istek); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}
	if istek.UyeID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Üye ID gereklidir"})
	}
	if istek.Durum == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Durum gereklidir"})
	}

	yoklama, err := h.service.KaydetYoklama(c.UserContext(), etkinlikID, istek.UyeID, istek.Durum)
	if err != nil {
		return hataYaniti(c, err, "Yoklama kaydedilemedi")
	}
	return c.JSON(yoklama)
}

// SilYoklama (DELETE /api/etkinlikler/:id/yoklama?uyeId=)
// Kaydı siler; olmayan kayıt 404 döner.
func (h *YoklamaHandler) SilYoklama(c *fiber.Ctx) error {
	etkinlikID := parseIDParam(c, "id")
	if etkinlikID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz etkinlik ID"})
	}
	uyeID, err := strconv.Atoi(c.Query("uyeId"))
	if err != nil || uyeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Üye ID gereklidir"})
	}

	if err := h.service.SilYoklama(c.UserContext(), etkinlikID, uint(uyeID)); err != nil {
		return hataYaniti(c, err, "Yoklama silinemedi")
	}
	return c.JSON(fiber.Map{"message": "Yoklama kaydı silindi"})
}

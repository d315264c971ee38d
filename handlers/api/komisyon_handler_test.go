package api

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"uyetakip.link/configs"
	"uyetakip.link/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupHandlerTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.IlceGorev{},
		&models.Uye{},
		&models.Mahalle{},
		&models.UyeMahalle{},
		&models.Komisyon{},
		&models.UyeKomisyon{},
		&models.Etkinlik{},
		&models.EtkinlikKomisyon{},
		&models.EtkinlikYoklama{},
	))
	configs.SetDB(db)
	listeCache.InvalidateAll()

	app := fiber.New()
	handler := NewKomisyonHandler()
	app.Put("/api/komisyonlar/:id/uyeler", handler.GuncelleUyeGorev)
	app.Delete("/api/komisyonlar/:id/uyeler", handler.CikarUye)
	return app, db
}

// Üyelik güncelleme/silme üyelik ID'sini uyeKomisyonId query parametresiyle
// alır, yol parametresiyle değil.
func TestKomisyonUyelik_QueryParametresi(t *testing.T) {
	app, db := setupHandlerTest(t)

	uye := models.Uye{Ad: "Ali", Soyad: "Yılmaz"}
	require.NoError(t, db.Create(&uye).Error)
	komisyonA := models.Komisyon{Ad: "A Komisyonu"}
	komisyonB := models.Komisyon{Ad: "B Komisyonu"}
	require.NoError(t, db.Create(&komisyonA).Error)
	require.NoError(t, db.Create(&komisyonB).Error)
	uyelik := models.UyeKomisyon{UyeID: uye.ID, KomisyonID: komisyonA.ID}
	require.NoError(t, db.Create(&uyelik).Error)

	// Görev güncelleme.
	hedef := fmt.Sprintf("/api/komisyonlar/%d/uyeler?uyeKomisyonId=%d", komisyonA.ID, uyelik.ID)
	req := httptest.NewRequest("PUT", hedef, strings.NewReader(`{"gorev":"Sekreter"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var guncel models.UyeKomisyon
	require.NoError(t, db.First(&guncel, uyelik.ID).Error)
	assert.Equal(t, "Sekreter", guncel.Gorev)

	// Parametre eksikse 400.
	eksik := fmt.Sprintf("/api/komisyonlar/%d/uyeler", komisyonA.ID)
	req = httptest.NewRequest("PUT", eksik, strings.NewReader(`{"gorev":"X"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Başka komisyonun üyeliği 403.
	yabanci := fmt.Sprintf("/api/komisyonlar/%d/uyeler?uyeKomisyonId=%d", komisyonB.ID, uyelik.ID)
	req = httptest.NewRequest("DELETE", yabanci, nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Doğru komisyon üzerinden silme.
	req = httptest.NewRequest("DELETE", hedef, nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var adet int64
	require.NoError(t, db.Model(&models.UyeKomisyon{}).Where("id = ?", uyelik.ID).Count(&adet).Error)
	assert.EqualValues(t, 0, adet)
}

package main

import (
	"encoding/json"

	"uyetakip.link/configs"
	"uyetakip.link/configs/configslog"
	"uyetakip.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// .env yoksa ortam değişkenleriyle devam edilir.
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.Sync()

	if _, err := configs.InitDB(); err != nil {
		configslog.SLog.Fatal("Veritabanı bağlantısı kurulamadı: ", err)
	}

	app := fiber.New(fiber.Config{
		AppName:     "uyetakip",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	routes.SetupRoutes(app)

	adres := ":" + configs.ServerPort()
	configslog.SLog.Infof("Sunucu %s adresinde dinliyor", adres)
	if err := app.Listen(adres); err != nil {
		configslog.SLog.Fatal("Sunucu başlatılamadı: ", err)
	}
}

package routes

import (
	"uyetakip.link/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes /api altındaki tüm kaynak rotalarını tanımlar.
func registerAPIRoutes(app *fiber.App) {
	grup := app.Group("/api")

	uyeHandler := api.NewUyeHandler()
	grup.Get("/uyeler", uyeHandler.ListUyeler)
	grup.Post("/uyeler", uyeHandler.CreateUye)
	grup.Get("/uyeler/:id", uyeHandler.GetUye)
	grup.Put("/uyeler/:id", uyeHandler.UpdateUye)
	grup.Delete("/uyeler/:id", uyeHandler.DeleteUye)

	mahalleHandler := api.NewMahalleHandler()
	grup.Get("/mahalleler", mahalleHandler.ListMahalleler)
	grup.Post("/mahalleler", mahalleHandler.CreateMahalle)
	grup.Get("/mahalleler/:id", mahalleHandler.GetMahalle)
	grup.Put("/mahalleler/:id", mahalleHandler.UpdateMahalle)
	grup.Delete("/mahalleler/:id", mahalleHandler.DeleteMahalle)

	komisyonHandler := api.NewKomisyonHandler()
	grup.Get("/komisyonlar", komisyonHandler.ListKomisyonlar)
	grup.Post("/komisyonlar", komisyonHandler.CreateKomisyon)
	grup.Get("/komisyonlar/:id", komisyonHandler.GetKomisyon)
	grup.Put("/komisyonlar/:id", komisyonHandler.UpdateKomisyon)
	grup.Delete("/komisyonlar/:id", komisyonHandler.DeleteKomisyon)
	grup.Post("/komisyonlar/:id/uyeler", komisyonHandler.EkleUye)
	grup.Put("/komisyonlar/:id/uyeler", komisyonHandler.GuncelleUyeGorev)
	grup.Delete("/komisyonlar/:id/uyeler", komisyonHandler.CikarUye)

	gorevHandler := api.NewIlceGorevHandler()
	grup.Get("/ilce-gorevler", gorevHandler.ListGorevler)
	grup.Post("/ilce-gorevler", gorevHandler.CreateGorev)
	grup.Get("/ilce-gorevler/:id", gorevHandler.GetGorev)
	grup.Put("/ilce-gorevler/:id", gorevHandler.UpdateGorev)
	grup.Delete("/ilce-gorevler/:id", gorevHandler.DeleteGorev)
	grup.Post("/seed/gorevler", gorevHandler.SeedGorevler)

	etkinlikHandler := api.NewEtkinlikHandler()
	grup.Get("/etkinlikler", etkinlikHandler.ListEtkinlikler)
	grup.Post("/etkinlikler", etkinlikHandler.CreateEtkinlik)
	grup.Get("/etkinlikler/:id", etkinlikHandler.GetEtkinlik)
	grup.Put("/etkinlikler/:id", etkinlikHandler.UpdateEtkinlik)
	grup.Delete("/etkinlikler/:id", etkinlikHandler.DeleteEtkinlik)

	yoklamaHandler := api.NewYoklamaHandler()
	grup.Get("/etkinlikler/:id/yoklama", yoklamaHandler.GetYoklamaListesi)
	grup.Post("/etkinlikler/:id/yoklama", yoklamaHandler.KaydetYoklama)
	grup.Delete("/etkinlikler/:id/yoklama", yoklamaHandler.SilYoklama)
}

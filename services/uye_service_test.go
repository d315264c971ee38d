package services

import (
	"context"
	"testing"

	"uyetakip.link/models"
	"uyetakip.link/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUye_Dogrulama(t *testing.T) {
	setupTestDB(t)
	svc := NewUyeService()

	_, err := svc.CreateUye(context.Background(), UyeGirdi{Soyad: "Yılmaz"})
	assert.ErrorIs(t, err, ErrUyeAdGerekli)

	_, err = svc.CreateUye(context.Background(), UyeGirdi{Ad: "Ali"})
	assert.ErrorIs(t, err, ErrUyeSoyadGerekli)
}

func TestCreateUye_MahalleSorumluluklari(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	m1 := models.Mahalle{Ad: "Cumhuriyet"}
	m2 := models.Mahalle{Ad: "Yalı"}
	require.NoError(t, db.Create(&m1).Error)
	require.NoError(t, db.Create(&m2).Error)

	svc := NewUyeService()
	uye, err := svc.CreateUye(ctx, UyeGirdi{
		Ad: "Ali", Soyad: "Yılmaz", MahalleIDs: []uint{m1.ID, m2.ID},
	})
	require.NoError(t, err)

	var sorumluluklar []models.UyeMahalle
	require.NoError(t, db.Where("uye_id = ?", uye.ID).Find(&sorumluluklar).Error)
	assert.Len(t, sorumluluklar, 2)

	// Güncelleme tam listeyle değiştirir.
	_, err = svc.UpdateUye(ctx, uye.ID, UyeGirdi{
		Ad: "Ali", Soyad: "Yılmaz", MahalleIDs: []uint{m2.ID},
	})
	require.NoError(t, err)
	require.NoError(t, db.Where("uye_id = ?", uye.ID).Find(&sorumluluklar).Error)
	require.Len(t, sorumluluklar, 1)
	assert.Equal(t, m2.ID, sorumluluklar[0].MahalleID)
}

func TestListUyeler_GorevOnceligiVeTurkceSiralama(t *testing.T) {
	db := setupTestDB(t)

	baskanGorev := olusturGorev(t, db, "İlçe Başkanı", 1)
	yonetimGorev := olusturGorev(t, db, "Yönetim Kurulu", 2)

	// Ad sırasına göre en sonda olsa da başkan listenin başına gelmeli.
	olusturUye(t, db, "Zeki", "Baş", &baskanGorev.ID)
	olusturUye(t, db, "Ali", "Üye", nil)
	olusturUye(t, db, "Çiğdem", "Kurul", &yonetimGorev.ID)
	olusturUye(t, db, "Cem", "Kurul", &yonetimGorev.ID)

	uyeler, _, err := NewUyeService().ListUyeler(context.Background(), queryparams.DefaultListParams("created_at"))
	require.NoError(t, err)
	require.Len(t, uyeler, 4)

	assert.Equal(t, "Zeki", uyeler[0].Ad)
	// Aynı görevdekiler Türkçe ad sırasıyla: Cem, Çiğdem.
	assert.Equal(t, "Cem", uyeler[1].Ad)
	assert.Equal(t, "Çiğdem", uyeler[2].Ad)
	assert.Equal(t, "Ali", uyeler[3].Ad)
}

func TestGetUyeDetay_ZorunluKatilimOrani(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	uye := olusturUye(t, db, "Ali", "Yılmaz", nil)

	zorunlu1 := models.Etkinlik{Ad: "Kongre", Tarih: yarin(), Zorunlu: true}
	zorunlu2 := models.Etkinlik{Ad: "Toplantı", Tarih: yarin(), Zorunlu: true}
	istege := models.Etkinlik{Ad: "Piknik", Tarih: yarin(), Zorunlu: false}
	require.NoError(t, db.Create(&zorunlu1).Error)
	require.NoError(t, db.Create(&zorunlu2).Error)
	require.NoError(t, db.Create(&istege).Error)

	kayitlar := []models.EtkinlikYoklama{
		{EtkinlikID: zorunlu1.ID, UyeID: uye.ID, Durum: models.DurumGeldi},
		{EtkinlikID: zorunlu2.ID, UyeID: uye.ID, Durum: models.DurumGelmedi},
		{EtkinlikID: istege.ID, UyeID: uye.ID, Durum: models.DurumGeldi},
	}
	for i := range kayitlar {
		require.NoError(t, db.Create(&kayitlar[i]).Error)
	}

	detay, err := NewUyeService().GetUyeDetay(ctx, uye.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, detay.Stats.Toplam)
	assert.Equal(t, 2, detay.Stats.Katildi)
	assert.Equal(t, 1, detay.Stats.Gelmedi)
	assert.Equal(t, 2, detay.Stats.ZorunluToplam)
	assert.Equal(t, 1, detay.Stats.ZorunluKatildi)
	// Oran yalnızca zorunlu etkinlikler üzerinden: 1/2 = %50.
	assert.Equal(t, 50, detay.Stats.KatilimOrani)
}

func TestGetUyeDetay_Bulunamadi(t *testing.T) {
	setupTestDB(t)

	_, err := NewUyeService().GetUyeDetay(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUyeBulunamadi)
}

func TestDeleteUye_IliskileriTemizler(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	uye := olusturUye(t, db, "Ali", "Yılmaz", nil)
	komisyon := olusturKomisyon(t, db, "Tanıtım", uye.ID)

	etkinlik, err := NewEtkinlikService().CreateEtkinlik(ctx, EtkinlikGirdi{
		Ad: "Toplantı", Tarih: yarin(), KomisyonIDs: []uint{komisyon.ID},
	})
	require.NoError(t, err)

	require.NoError(t, NewUyeService().DeleteUye(ctx, uye.ID))

	var adet int64
	require.NoError(t, db.Model(&models.UyeKomisyon{}).Where("uye_id = ?", uye.ID).Count(&adet).Error)
	assert.EqualValues(t, 0, adet)
	require.NoError(t, db.Model(&models.EtkinlikYoklama{}).
		Where("etkinlik_id = ? AND uye_id = ?", etkinlik.ID, uye.ID).Count(&adet).Error)
	assert.EqualValues(t, 0, adet)
}

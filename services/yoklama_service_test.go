package services

import (
	"context"
	"testing"

	"uyetakip.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetYoklamaListesi_DavetliCozumleme(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	baskanGorev := olusturGorev(t, db, "İlçe Başkanı", 1)
	baskan := olusturUye(t, db, "Fatih", "Karaismailoğlu", &baskanGorev.ID)
	ali := olusturUye(t, db, "Ali", "Yılmaz", nil)
	cetin := olusturUye(t, db, "Çetin", "Demir", nil)
	disarida := olusturUye(t, db, "Zeynep", "Ak", nil)

	// Başkan aynı zamanda komisyon üyesi; iki yoldan gelse de bir kez sayılmalı.
	komisyon := olusturKomisyon(t, db, "Tanıtım", ali.ID, cetin.ID, baskan.ID)

	etkinlikSvc := NewEtkinlikService()
	etkinlik, err := etkinlikSvc.CreateEtkinlik(ctx, EtkinlikGirdi{
		Ad:                    "Aylık Toplantı",
		Tarih:                 yarin(),
		IlceYonetimKuruluEkle: true,
		KomisyonIDs:           []uint{komisyon.ID},
	})
	require.NoError(t, err)

	liste, err := NewYoklamaService().GetYoklamaListesi(ctx, etkinlik.ID)
	require.NoError(t, err)

	require.Len(t, liste.Uyeler, 3)
	for _, satir := range liste.Uyeler {
		assert.NotEqual(t, disarida.ID, satir.ID, "davetli olmayan üye listede olmamalı")
		// Etkinlik oluşturulurken her davetliye belirsiz kayıt açılır.
		require.NotNil(t, satir.Yoklama)
		assert.Equal(t, models.EtiketBelirsiz, satir.Yoklama.Durum)
		assert.False(t, satir.Yoklama.Katildi)
	}

	// Türkçe alfabe sırası: Ali, Çetin, Fatih.
	assert.Equal(t, ali.ID, liste.Uyeler[0].ID)
	assert.Equal(t, cetin.ID, liste.Uyeler[1].ID)
	assert.Equal(t, baskan.ID, liste.Uyeler[2].ID)

	assert.Equal(t, YoklamaIstatistik{Toplam: 3, Belirsiz: 3}, liste.Stats)
}

func TestGetYoklamaListesi_EtkinlikBulunamadi(t *testing.T) {
	setupTestDB(t)

	_, err := NewYoklamaService().GetYoklamaListesi(context.Background(), 42)
	assert.ErrorIs(t, err, ErrYoklamaEtkinlikBulunamadi)
}

func TestKaydetYoklama_UpsertTekSatir(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	uye := olusturUye(t, db, "Ali", "Yılmaz", nil)
	komisyon := olusturKomisyon(t, db, "Tanıtım", uye.ID)
	etkinlik, err := NewEtkinlikService().CreateEtkinlik(ctx, EtkinlikGirdi{
		Ad: "Toplantı", Tarih: yarin(), KomisyonIDs: []uint{komisyon.ID},
	})
	require.NoError(t, err)

	svc := NewYoklamaService()
	_, err = svc.KaydetYoklama(ctx, etkinlik.ID, uye.ID, models.EtiketGeldi)
	require.NoError(t, err)
	_, err = svc.KaydetYoklama(ctx, etkinlik.ID, uye.ID, models.EtiketGelmedi)
	require.NoError(t, err)

	var adet int64
	require.NoError(t, db.Model(&models.EtkinlikYoklama{}).
		Where("etkinlik_id = ? AND uye_id = ?", etkinlik.ID, uye.ID).
		Count(&adet).Error)
	assert.EqualValues(t, 1, adet, "aynı çifte tekrar yazmak yeni satır açmamalı")

	var kayit models.EtkinlikYoklama
	require.NoError(t, db.Where("etkinlik_id = ? AND uye_id = ?", etkinlik.ID, uye.ID).First(&kayit).Error)
	assert.Equal(t, models.DurumGelmedi, kayit.Durum)
}

func TestKaydetYoklama_MazeretliGidisDonus(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	uye := olusturUye(t, db, "Ali", "Yılmaz", nil)
	komisyon := olusturKomisyon(t, db, "Tanıtım", uye.ID)
	etkinlik, err := NewEtkinlikService().CreateEtkinlik(ctx, EtkinlikGirdi{
		Ad: "Toplantı", Tarih: yarin(), KomisyonIDs: []uint{komisyon.ID},
	})
	require.NoError(t, err)

	svc := NewYoklamaService()
	kayit, err := svc.KaydetYoklama(ctx, etkinlik.ID, uye.ID, "Mazeretli: Hastalık")
	require.NoError(t, err)
	assert.Equal(t, models.DurumMazeretli, kayit.Durum)
	assert.Equal(t, "Hastalık", kayit.Mazeret)
	assert.False(t, kayit.Katildi())

	liste, err := svc.GetYoklamaListesi(ctx, etkinlik.ID)
	require.NoError(t, err)
	require.Len(t, liste.Uyeler, 1)
	require.NotNil(t, liste.Uyeler[0].Yoklama)
	assert.Equal(t, "Mazeretli: Hastalık", liste.Uyeler[0].Yoklama.Durum)
	assert.Equal(t, 1, liste.Stats.Mazeretli)
}

func TestKaydetYoklama_Dogrulama(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	uye := olusturUye(t, db, "Ali", "Yılmaz", nil)
	etkinlik, err := NewEtkinlikService().CreateEtkinlik(ctx, EtkinlikGirdi{Ad: "Toplantı", Tarih: yarin()})
	require.NoError(t, err)
	svc := NewYoklamaService()

	_, err = svc.KaydetYoklama(ctx, etkinlik.ID, 0, models.EtiketGeldi)
	assert.ErrorIs(t, err, ErrYoklamaUyeIDGerekli)

	_, err = svc.KaydetYoklama(ctx, etkinlik.ID, uye.ID, "")
	assert.ErrorIs(t, err, ErrYoklamaDurumGerekli)

	_, err = svc.KaydetYoklama(ctx, etkinlik.ID, uye.ID, "Katıldı Sayılır")
	assert.ErrorIs(t, err, ErrYoklamaGecersizDurum)

	// Gerekçesiz mazeret kaydedilemez.
	_, err = svc.KaydetYoklama(ctx, etkinlik.ID, uye.ID, "Mazeretli")
	assert.ErrorIs(t, err, ErrYoklamaMazeretGerekli)
	_, err = svc.KaydetYoklama(ctx, etkinlik.ID, uye.ID, "Mazeretli:   ")
	assert.ErrorIs(t, err, ErrYoklamaMazeretGerekli)

	// Olmayan etkinliğe yazmak FK hatası yerine alan hatası döner.
	_, err = svc.KaydetYoklama(ctx, 9999, uye.ID, models.EtiketGeldi)
	assert.ErrorIs(t, err, ErrYoklamaEtkinlikBulunamadi)
	_, err = svc.TopluKaydetYoklama(ctx, 9999, []YoklamaGirdi{{UyeID: uye.ID, Durum: models.EtiketGeldi}})
	assert.ErrorIs(t, err, ErrYoklamaEtkinlikBulunamadi)

	_, err = svc.KaydetYoklama(ctx, etkinlik.ID, 9999, models.EtiketGeldi)
	assert.ErrorIs(t, err, ErrYoklamaUyeBulunamadi)
}

func TestYoklamaIstatistik(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	var uyeIDs []uint
	adlar := []string{"Ahmet", "Berna", "Cem", "Derya", "Emre", "Fatma", "Gül", "Hakan", "İrem", "Kaan"}
	for _, ad := range adlar {
		uye := olusturUye(t, db, ad, "Test", nil)
		uyeIDs = append(uyeIDs, uye.ID)
	}
	komisyon := olusturKomisyon(t, db, "Genişletilmiş", uyeIDs...)
	etkinlik, err := NewEtkinlikService().CreateEtkinlik(ctx, EtkinlikGirdi{
		Ad: "Kongre", Tarih: yarin(), KomisyonIDs: []uint{komisyon.ID},
	})
	require.NoError(t, err)

	svc := NewYoklamaService()
	for _, uyeID := range uyeIDs[:7] {
		_, err := svc.KaydetYoklama(ctx, etkinlik.ID, uyeID, models.EtiketGeldi)
		require.NoError(t, err)
	}
	_, err = svc.KaydetYoklama(ctx, etkinlik.ID, uyeIDs[7], "Mazeretli: Şehir dışı")
	require.NoError(t, err)
	_, err = svc.KaydetYoklama(ctx, etkinlik.ID, uyeIDs[8], models.EtiketGelmedi)
	require.NoError(t, err)
	// uyeIDs[9] belirsiz kalır.

	liste, err := svc.GetYoklamaListesi(ctx, etkinlik.ID)
	require.NoError(t, err)

	stats := liste.Stats
	assert.Equal(t, 10, stats.Toplam)
	assert.Equal(t, 7, stats.Geldi)
	assert.Equal(t, 1, stats.Mazeretli)
	assert.Equal(t, 1, stats.Gelmedi)
	assert.Equal(t, 1, stats.Belirsiz)
	assert.Equal(t, stats.Toplam, stats.Geldi+stats.Mazeretli+stats.Gelmedi+stats.Belirsiz)
	assert.Equal(t, 70, stats.KatilimOrani)
}

func TestHesaplaIstatistik_BosListe(t *testing.T) {
	stats := hesaplaIstatistik(nil)
	assert.Equal(t, YoklamaIstatistik{}, stats, "boş listede oran sıfır olmalı, sıfıra bölme olmamalı")
}

func TestTopluKaydetYoklama(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	ali := olusturUye(t, db, "Ali", "Yılmaz", nil)
	veli := olusturUye(t, db, "Veli", "Demir", nil)
	komisyon := olusturKomisyon(t, db, "Tanıtım", ali.ID, veli.ID)
	etkinlik, err := NewEtkinlikService().CreateEtkinlik(ctx, EtkinlikGirdi{
		Ad: "Toplantı", Tarih: yarin(), KomisyonIDs: []uint{komisyon.ID},
	})
	require.NoError(t, err)

	svc := NewYoklamaService()
	adet, err := svc.TopluKaydetYoklama(ctx, etkinlik.ID, []YoklamaGirdi{
		{UyeID: ali.ID, Durum: models.EtiketGeldi},
		{UyeID: veli.ID, Durum: models.EtiketGelmedi},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, adet)

	var kayit models.EtkinlikYoklama
	require.NoError(t, db.Where("etkinlik_id = ? AND uye_id = ?", etkinlik.ID, ali.ID).First(&kayit).Error)
	assert.Equal(t, models.DurumGeldi, kayit.Durum)
}

func TestTopluKaydetYoklama_MazeretliReddedilir(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	ali := olusturUye(t, db, "Ali", "Yılmaz", nil)
	veli := olusturUye(t, db, "Veli", "Demir", nil)
	komisyon := olusturKomisyon(t, db, "Tanıtım", ali.ID, veli.ID)
	etkinlik, err := NewEtkinlikService().CreateEtkinlik(ctx, EtkinlikGirdi{
		Ad: "Toplantı", Tarih: yarin(), KomisyonIDs: []uint{komisyon.ID},
	})
	require.NoError(t, err)

	// Geçersiz kalem tüm isteği düşürür; ilk kalem de yazılmamış olmalı.
	_, err = NewYoklamaService().TopluKaydetYoklama(ctx, etkinlik.ID, []YoklamaGirdi{
		{UyeID: ali.ID, Durum: models.EtiketGeldi},
		{UyeID: veli.ID, Durum: "Mazeretli: Hastalık"},
	})
	assert.ErrorIs(t, err, ErrYoklamaTopluDurumKisitli)

	var kayit models.EtkinlikYoklama
	require.NoError(t, db.Where("etkinlik_id = ? AND uye_id = ?", etkinlik.ID, ali.ID).First(&kayit).Error)
	assert.Equal(t, models.DurumBelirsiz, kayit.Durum, "hiçbir kalem kalıcı olmamalı")
}

func TestSilYoklama(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	uye := olusturUye(t, db, "Ali", "Yılmaz", nil)
	komisyon := olusturKomisyon(t, db, "Tanıtım", uye.ID)
	etkinlik, err := NewEtkinlikService().CreateEtkinlik(ctx, EtkinlikGirdi{
		Ad: "Toplantı", Tarih: yarin(), KomisyonIDs: []uint{komisyon.ID},
	})
	require.NoError(t, err)

	svc := NewYoklamaService()
	require.NoError(t, svc.SilYoklama(ctx, etkinlik.ID, uye.ID))

	// Aynı kaydı ikinci kez silmek hata.
	err = svc.SilYoklama(ctx, etkinlik.ID, uye.ID)
	assert.ErrorIs(t, err, ErrYoklamaKaydiBulunamadi)
}

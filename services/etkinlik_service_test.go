package services

import (
	"context"
	"testing"

	"uyetakip.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEtkinlik_Dogrulama(t *testing.T) {
	setupTestDB(t)
	svc := NewEtkinlikService()

	_, err := svc.CreateEtkinlik(context.Background(), EtkinlikGirdi{Tarih: yarin()})
	assert.ErrorIs(t, err, ErrEtkinlikAdGerekli)

	_, err = svc.CreateEtkinlik(context.Background(), EtkinlikGirdi{Ad: "Toplantı"})
	assert.ErrorIs(t, err, ErrEtkinlikTarihGerekli)
}

func TestCreateEtkinlik_ZorunluVarsayilani(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	svc := NewEtkinlikService()

	etkinlik, err := svc.CreateEtkinlik(ctx, EtkinlikGirdi{Ad: "Toplantı", Tarih: yarin()})
	require.NoError(t, err)
	assert.True(t, etkinlik.Zorunlu, "zorunlu gönderilmezse true varsayılmalı")

	istege := false
	etkinlik2, err := svc.CreateEtkinlik(ctx, EtkinlikGirdi{Ad: "Piknik", Tarih: yarin(), Zorunlu: &istege})
	require.NoError(t, err)
	assert.False(t, etkinlik2.Zorunlu)
}

func TestCreateEtkinlik_BelirsizKayitlariAcilir(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	ali := olusturUye(t, db, "Ali", "Yılmaz", nil)
	veli := olusturUye(t, db, "Veli", "Demir", nil)
	komisyon := olusturKomisyon(t, db, "Tanıtım", ali.ID, veli.ID)

	etkinlik, err := NewEtkinlikService().CreateEtkinlik(ctx, EtkinlikGirdi{
		Ad: "Toplantı", Tarih: yarin(), KomisyonIDs: []uint{komisyon.ID},
	})
	require.NoError(t, err)

	var kayitlar []models.EtkinlikYoklama
	require.NoError(t, db.Where("etkinlik_id = ?", etkinlik.ID).Find(&kayitlar).Error)
	require.Len(t, kayitlar, 2)
	for _, kayit := range kayitlar {
		assert.Equal(t, models.DurumBelirsiz, kayit.Durum)
	}
}

func TestUpdateEtkinlik_ArtimliDavetliEsitleme(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	u1 := olusturUye(t, db, "Ali", "Yılmaz", nil)
	u2 := olusturUye(t, db, "Veli", "Demir", nil)
	u3 := olusturUye(t, db, "Can", "Ak", nil)
	komisyonA := olusturKomisyon(t, db, "A Komisyonu", u1.ID, u2.ID)
	komisyonB := olusturKomisyon(t, db, "B Komisyonu", u2.ID, u3.ID)

	etkinlikSvc := NewEtkinlikService()
	etkinlik, err := etkinlikSvc.CreateEtkinlik(ctx, EtkinlikGirdi{
		Ad: "Toplantı", Tarih: yarin(), KomisyonIDs: []uint{komisyonA.ID},
	})
	require.NoError(t, err)

	// u2 için tutulmuş yoklama, listede kaldığı sürece güncellemede korunmalı.
	_, err = NewYoklamaService().KaydetYoklama(ctx, etkinlik.ID, u2.ID, models.EtiketGeldi)
	require.NoError(t, err)

	var onceki models.EtkinlikYoklama
	require.NoError(t, db.Where("etkinlik_id = ? AND uye_id = ?", etkinlik.ID, u2.ID).First(&onceki).Error)

	_, err = etkinlikSvc.UpdateEtkinlik(ctx, etkinlik.ID, EtkinlikGirdi{
		Ad: "Toplantı", Tarih: yarin(), KomisyonIDs: []uint{komisyonB.ID},
	})
	require.NoError(t, err)

	// u1 listeden çıktı, kaydı silinmiş olmalı.
	var adet int64
	require.NoError(t, db.Model(&models.EtkinlikYoklama{}).
		Where("etkinlik_id = ? AND uye_id = ?", etkinlik.ID, u1.ID).Count(&adet).Error)
	assert.EqualValues(t, 0, adet)

	// u2 listede kaldı: aynı satır, aynı durum.
	var sonraki models.EtkinlikYoklama
	require.NoError(t, db.Where("etkinlik_id = ? AND uye_id = ?", etkinlik.ID, u2.ID).First(&sonraki).Error)
	assert.Equal(t, onceki.ID, sonraki.ID, "mevcut kayıt silinip yeniden açılmamalı")
	assert.Equal(t, models.DurumGeldi, sonraki.Durum)

	// u3 yeni girdi: belirsiz kayıt açılmış olmalı.
	var yeni models.EtkinlikYoklama
	require.NoError(t, db.Where("etkinlik_id = ? AND uye_id = ?", etkinlik.ID, u3.ID).First(&yeni).Error)
	assert.Equal(t, models.DurumBelirsiz, yeni.Durum)

	// Komisyon bağları da eşitlenmiş olmalı.
	var baglar []models.EtkinlikKomisyon
	require.NoError(t, db.Where("etkinlik_id = ?", etkinlik.ID).Find(&baglar).Error)
	require.Len(t, baglar, 1)
	assert.Equal(t, komisyonB.ID, baglar[0].KomisyonID)
}

func TestUpdateEtkinlik_Bulunamadi(t *testing.T) {
	setupTestDB(t)

	_, err := NewEtkinlikService().UpdateEtkinlik(context.Background(), 42, EtkinlikGirdi{Ad: "X"})
	assert.ErrorIs(t, err, ErrEtkinlikBulunamadi)
}

func TestDeleteEtkinlik(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	uye := olusturUye(t, db, "Ali", "Yılmaz", nil)
	komisyon := olusturKomisyon(t, db, "Tanıtım", uye.ID)
	svc := NewEtkinlikService()
	etkinlik, err := svc.CreateEtkinlik(ctx, EtkinlikGirdi{
		Ad: "Toplantı", Tarih: yarin(), KomisyonIDs: []uint{komisyon.ID},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEtkinlik(ctx, etkinlik.ID))

	// Yoklama kayıtları da silinmeli.
	var adet int64
	require.NoError(t, db.Model(&models.EtkinlikYoklama{}).
		Where("etkinlik_id = ?", etkinlik.ID).Count(&adet).Error)
	assert.EqualValues(t, 0, adet)

	assert.ErrorIs(t, svc.DeleteEtkinlik(ctx, etkinlik.ID), ErrEtkinlikBulunamadi)
}

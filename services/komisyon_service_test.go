package services

import (
	"context"
	"testing"

	"uyetakip.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEkleUye_UpsertGorevGunceller(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	uye := olusturUye(t, db, "Ali", "Yılmaz", nil)
	komisyon := olusturKomisyon(t, db, "Tanıtım")

	svc := NewKomisyonService()
	ilk, err := svc.EkleUye(ctx, komisyon.ID, uye.ID, "")
	require.NoError(t, err)

	// Aynı üyeyi tekrar eklemek yeni üyelik açmaz, görevi günceller.
	ikinci, err := svc.EkleUye(ctx, komisyon.ID, uye.ID, "Başkan")
	require.NoError(t, err)
	assert.Equal(t, ilk.ID, ikinci.ID)
	assert.Equal(t, "Başkan", ikinci.Gorev)

	var adet int64
	require.NoError(t, db.Model(&models.UyeKomisyon{}).
		Where("komisyon_id = ?", komisyon.ID).Count(&adet).Error)
	assert.EqualValues(t, 1, adet)
}

func TestKomisyonUyelik_SahiplikKontrolu(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	uye := olusturUye(t, db, "Ali", "Yılmaz", nil)
	komisyonA := olusturKomisyon(t, db, "A Komisyonu")
	komisyonB := olusturKomisyon(t, db, "B Komisyonu")

	svc := NewKomisyonService()
	uyelik, err := svc.EkleUye(ctx, komisyonA.ID, uye.ID, "")
	require.NoError(t, err)

	// Başka komisyonun üyeliği üzerinden işlem reddedilir.
	_, err = svc.GuncelleUyeGorev(ctx, komisyonB.ID, uyelik.ID, "Sekreter")
	assert.ErrorIs(t, err, ErrKomisyonYetkisizIslem)
	err = svc.CikarUye(ctx, komisyonB.ID, uyelik.ID)
	assert.ErrorIs(t, err, ErrKomisyonYetkisizIslem)

	// Kendi komisyonu üzerinden işlem geçerlidir.
	guncel, err := svc.GuncelleUyeGorev(ctx, komisyonA.ID, uyelik.ID, "Sekreter")
	require.NoError(t, err)
	assert.Equal(t, "Sekreter", guncel.Gorev)
	require.NoError(t, svc.CikarUye(ctx, komisyonA.ID, uyelik.ID))
}

func TestDeleteKomisyon_BaglariTemizler(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	uye := olusturUye(t, db, "Ali", "Yılmaz", nil)
	komisyon := olusturKomisyon(t, db, "Tanıtım", uye.ID)

	require.NoError(t, NewKomisyonService().DeleteKomisyon(ctx, komisyon.ID))

	var adet int64
	require.NoError(t, db.Model(&models.UyeKomisyon{}).
		Where("komisyon_id = ?", komisyon.ID).Count(&adet).Error)
	assert.EqualValues(t, 0, adet)
}

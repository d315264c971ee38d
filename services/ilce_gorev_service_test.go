package services

import (
	"context"
	"testing"

	"uyetakip.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGorev_AdTekrariReddedilir(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	svc := NewIlceGorevService()

	_, err := svc.CreateGorev(ctx, GorevGirdi{Ad: "Teşkilat Başkanı"})
	require.NoError(t, err)

	_, err = svc.CreateGorev(ctx, GorevGirdi{Ad: "Teşkilat Başkanı"})
	assert.ErrorIs(t, err, ErrGorevAdiMevcut)
}

func TestUpdateGorev_KendiAdiylaGuncellenebilir(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	svc := NewIlceGorevService()

	gorev, err := svc.CreateGorev(ctx, GorevGirdi{Ad: "Sekreter"})
	require.NoError(t, err)

	// Aynı adla güncelleme ad çakışması sayılmaz.
	_, err = svc.UpdateGorev(ctx, gorev.ID, GorevGirdi{Ad: "Sekreter", Aciklama: "Yazışma sorumlusu"})
	require.NoError(t, err)

	diger, err := svc.CreateGorev(ctx, GorevGirdi{Ad: "Muhasip"})
	require.NoError(t, err)
	_, err = svc.UpdateGorev(ctx, diger.ID, GorevGirdi{Ad: "Sekreter"})
	assert.ErrorIs(t, err, ErrGorevAdiMevcut)
}

func TestSeedVarsayilanGorevler_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := NewIlceGorevService()

	ilk, err := svc.SeedVarsayilanGorevler(ctx)
	require.NoError(t, err)
	assert.Len(t, ilk, 5)

	ikinci, err := svc.SeedVarsayilanGorevler(ctx)
	require.NoError(t, err)
	assert.Len(t, ikinci, 5)

	var adet int64
	require.NoError(t, db.Model(&models.IlceGorev{}).Count(&adet).Error)
	assert.EqualValues(t, 5, adet, "tekrar çalıştırma yeni kayıt açmamalı")
}

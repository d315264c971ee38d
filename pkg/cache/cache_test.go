package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_TTLDoluncaBayatDoner(t *testing.T) {
	simdi := time.Now()
	c := New(5 * time.Minute)
	c.now = func() time.Time { return simdi }

	c.Set("uyeler", []string{"Ali"})

	deger, bayat, ok := c.Get("uyeler")
	require.True(t, ok)
	assert.False(t, bayat)
	assert.Equal(t, []string{"Ali"}, deger)

	// TTL dolduktan sonra kayıt silinmez, bayat işaretiyle döner.
	simdi = simdi.Add(6 * time.Minute)
	deger, bayat, ok = c.Get("uyeler")
	require.True(t, ok)
	assert.True(t, bayat)
	assert.Equal(t, []string{"Ali"}, deger)
}

func TestSetTTL_AnahtaraOzelSure(t *testing.T) {
	simdi := time.Now()
	c := New(5 * time.Minute)
	c.now = func() time.Time { return simdi }
	c.SetTTL("etkinlikler", 2*time.Minute)

	c.Set("etkinlikler", 1)
	c.Set("uyeler", 2)

	simdi = simdi.Add(3 * time.Minute)
	_, bayat, ok := c.Get("etkinlikler")
	require.True(t, ok)
	assert.True(t, bayat, "kısa TTL'li anahtar bayatlamış olmalı")

	_, bayat, ok = c.Get("uyeler")
	require.True(t, ok)
	assert.False(t, bayat, "varsayılan TTL henüz dolmadı")
}

func TestInvalidate(t *testing.T) {
	c := New(time.Minute)
	c.Set("uyeler", 1)
	c.Set("mahalleler", 2)

	c.Invalidate("uyeler")
	_, _, ok := c.Get("uyeler")
	assert.False(t, ok)
	_, _, ok = c.Get("mahalleler")
	assert.True(t, ok)

	c.InvalidateAll()
	_, _, ok = c.Get("mahalleler")
	assert.False(t, ok)
}

func TestGet_OlmayanAnahtar(t *testing.T) {
	c := New(time.Minute)
	deger, bayat, ok := c.Get("yok")
	assert.False(t, ok)
	assert.False(t, bayat)
	assert.Nil(t, deger)
}

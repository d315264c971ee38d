package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYoklamaDurumu(t *testing.T) {
	tests := []struct {
		etiket  string
		kod     DurumKod
		mazeret string
	}{
		{"Geldi", DurumGeldi, ""},
		{"Gelmedi", DurumGelmedi, ""},
		{"Belirsiz", DurumBelirsiz, ""},
		{"", DurumBelirsiz, ""},
		{"  Geldi  ", DurumGeldi, ""},
		{"Mazeretli: Hastalık", DurumMazeretli, "Hastalık"},
		{"Mazeretli:Şehir dışı", DurumMazeretli, "Şehir dışı"},
		{"Mazeretli", DurumMazeretli, ""},
	}
	for _, tt := range tests {
		durum, err := ParseYoklamaDurumu(tt.etiket)
		require.NoError(t, err, "etiket: %q", tt.etiket)
		assert.Equal(t, tt.kod, durum.Kod, "etiket: %q", tt.etiket)
		assert.Equal(t, tt.mazeret, durum.Mazeret, "etiket: %q", tt.etiket)
	}
}

func TestParseYoklamaDurumu_Gecersiz(t *testing.T) {
	// Tanınmayan etiket sessizce belirsize düşmez.
	_, err := ParseYoklamaDurumu("Katıldı")
	assert.ErrorIs(t, err, ErrGecersizDurum)

	_, err = ParseYoklamaDurumu("geldi") // büyük/küçük harf duyarlı
	assert.ErrorIs(t, err, ErrGecersizDurum)
}

func TestYoklamaDurumu_EtiketGidisDonus(t *testing.T) {
	etiketler := []string{"Geldi", "Gelmedi", "Belirsiz", "Mazeretli: Hastalık"}
	for _, etiket := range etiketler {
		durum, err := ParseYoklamaDurumu(etiket)
		require.NoError(t, err)
		assert.Equal(t, etiket, durum.Etiket())
	}
}

func TestYoklamaDurumu_Katildi(t *testing.T) {
	assert.True(t, YoklamaDurumu{Kod: DurumGeldi}.Katildi())
	assert.False(t, YoklamaDurumu{Kod: DurumGelmedi}.Katildi())
	assert.False(t, YoklamaDurumu{Kod: DurumMazeretli, Mazeret: "izinli"}.Katildi())
	assert.False(t, YoklamaDurumu{Kod: DurumBelirsiz}.Katildi())
}

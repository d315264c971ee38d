package turkishsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	// ç, c'den sonra d'den önce gelir.
	assert.Negative(t, Compare("Cem", "Çetin"))
	assert.Negative(t, Compare("Çetin", "Deniz"))
	// ı, i'den önce gelir.
	assert.Negative(t, Compare("Işık", "İsmail"))
	assert.Zero(t, Compare("ali", "ALİ"))
}

func TestStrings(t *testing.T) {
	adlar := []string{"Ümit", "Uğur", "Çetin", "Cem", "Şule", "Selin"}
	Strings(adlar)
	assert.Equal(t, []string{"Cem", "Çetin", "Selin", "Şule", "Uğur", "Ümit"}, adlar)
}

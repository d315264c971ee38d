package turkishsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	// Noktalı büyük İ -> i, noktasız büyük I -> ı.
	assert.Equal(t, "ismail", Fold("İsmail"))
	assert.Equal(t, "ışık", Fold("IŞIK"))
	assert.Equal(t, "çağla şen", Fold("ÇAĞLA ŞEN"))
}

func TestSQLFilter(t *testing.T) {
	fragment, args := SQLFilter("ad", "  İsmail ")
	assert.Equal(t, "lower(ad) LIKE ?", fragment)
	assert.Equal(t, []interface{}{"%ismail%"}, args)
}

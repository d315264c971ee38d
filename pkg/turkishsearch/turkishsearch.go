package turkishsearch

import "strings"

// SQL lower() Türkçe noktalı/noktasız I dönüşümünü locale'e göre yapmaz
// ("İ" -> "i̇" yerine "i" beklenir). Aranan terim uygulama tarafında
// katlanır, sütun tarafında lower() ile eşleştirilir.

// Fold Türkçe'ye özgü harfleri arama için küçük harfe indirger.
func Fold(s string) string {
	s = strings.ReplaceAll(s, "İ", "i")
	s = strings.ReplaceAll(s, "I", "ı")
	return strings.ToLower(s)
}

// SQLFilter verilen sütun için büyük/küçük harf duyarsız LIKE filtresi üretir.
// Dönen fragment WHERE içinde kullanılır, args sorgu parametreleridir.
func SQLFilter(column, term string) (string, []interface{}) {
	pattern := "%" + Fold(strings.TrimSpace(term)) + "%"
	fragment := "lower(" + column + ") LIKE ?"
	return fragment, []interface{}{pattern}
}

package turkishsort

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Türkçe harf sırası (ç, ğ, ı/i, ö, ş, ü) bayt sırasından farklıdır;
// listelerin kullanıcıya doğru sırada gitmesi için collator şart.

var (
	mu  sync.Mutex
	col = collate.New(language.Turkish, collate.IgnoreCase)
)

// Compare iki metni Türkçe alfabeye göre karşılaştırır.
// strings.Compare ile aynı sözleşmeye sahiptir.
func Compare(a, b string) int {
	mu.Lock()
	defer mu.Unlock()
	return col.CompareString(a, b)
}

// Strings dilimi yerinde Türkçe alfabeye göre sıralar.
func Strings(list []string) {
	sort.SliceStable(list, func(i, j int) bool {
		return Compare(list[i], list[j]) < 0
	})
}

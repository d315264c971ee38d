package cache

import (
	"sync"
	"time"
)

// Cache kaynak kimliğiyle anahtarlanan, TTL'li bir okuma önbelleğidir.
// Eski istemci tarafındaki stale-time önbelleğinin sunucu tarafı karşılığı:
// TTL dolan kayıt silinmez, "bayat" işaretiyle döner; yazma yapan uçlar
// Invalidate ile kaydı düşürür.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     map[string]time.Duration
	def     time.Duration
	now     func() time.Time
}

type entry struct {
	value   interface{}
	savedAt time.Time
}

// New varsayılan TTL ile yeni bir önbellek oluşturur.
func New(defaultTTL time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     make(map[string]time.Duration),
		def:     defaultTTL,
		now:     time.Now,
	}
}

// SetTTL belirli bir anahtar için TTL'yi varsayılandan farklı ayarlar.
func (c *Cache) SetTTL(key string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl[key] = ttl
}

// Get anahtarın değerini döndürür. stale, kaydın TTL'sini doldurduğunu
// belirtir; ok false ise kayıt hiç yoktur.
func (c *Cache) Get(key string) (value interface{}, stale bool, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, false
	}
	ttl, found := c.ttl[key]
	if !found {
		ttl = c.def
	}
	return e.value, c.now().Sub(e.savedAt) > ttl, true
}

// Set anahtarı verilen değerle tazeler.
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, savedAt: c.now()}
}

// Invalidate anahtarı önbellekten düşürür; yazma sonrası çağrılır.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidateAll tüm kayıtları temizler.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

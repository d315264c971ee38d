package repositories

import "errors"

// ErrNotFound aranan kayıt veritabanında yoksa döner. Servis katmanı bu
// hatayı kendi alan hatalarına çevirir, handler'lar 404'e eşler.
var ErrNotFound = errors.New("kayıt bulunamadı")

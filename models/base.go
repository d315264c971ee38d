package models

import "time"

// BaseModel tüm tablolarda ortak olan alanları taşır. Kayıtlar kalıcı olarak
// silinir (soft delete yok); ilişkili kayıtlar FK constraint'leri üzerinden
// cascade edilir.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package models

import "time"

// Etkinlik yoklama tutulan bir teşkilat etkinliğidir. Zorunlu etkinlikler
// üyenin kişisel katılım oranına dahil edilir. IlceYonetimKuruluEkle açıksa
// yönetim kadrosundaki tüm üyeler davetli listesine otomatik eklenir.
type Etkinlik struct {
	BaseModel
	Ad                    string    `gorm:"type:varchar(255);not null" json:"ad"`
	Aciklama              string    `gorm:"type:text" json:"aciklama,omitempty"`
	Tarih                 time.Time `gorm:"index;not null" json:"tarih"`
	Konum                 string    `gorm:"type:varchar(255)" json:"konum,omitempty"`
	// default tag yok: GORM sıfır değeri (false) default'lu alanda INSERT
	// dışında bırakır ve zorunlu=false kaydedilemez olurdu. Varsayılan,
	// girdiyi yorumlayan servis katmanındadır.
	Zorunlu               bool      `gorm:"not null" json:"zorunlu"`
	IlceYonetimKuruluEkle bool      `gorm:"default:false" json:"ilceYonetimKuruluEkle"`

	Komisyonlar []EtkinlikKomisyon `gorm:"foreignKey:EtkinlikID" json:"komisyonlar,omitempty"`
	Yoklamalar  []EtkinlikYoklama  `gorm:"foreignKey:EtkinlikID" json:"yoklamalar,omitempty"`
}

// EtkinlikKomisyon etkinliğe davet edilen komisyonları bağlar. Bağlı her
// komisyonun tüm üyeleri etkinliğin davetli listesine girer.
type EtkinlikKomisyon struct {
	BaseModel
	EtkinlikID uint `gorm:"not null;index:idx_etkinlik_komisyon,unique" json:"etkinlikId"`
	KomisyonID uint `gorm:"not null;index:idx_etkinlik_komisyon,unique" json:"komisyonId"`

	Etkinlik Etkinlik `gorm:"foreignKey:EtkinlikID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"etkinlik,omitempty"`
	Komisyon Komisyon `gorm:"foreignKey:KomisyonID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"komisyon,omitempty"`
}

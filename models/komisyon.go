package models

// Komisyon üyelerden oluşan sürekli bir çalışma grubudur.
type Komisyon struct {
	BaseModel
	Ad       string `gorm:"type:varchar(150);not null;index" json:"ad"`
	Aciklama string `gorm:"type:text" json:"aciklama,omitempty"`

	Uyeler      []UyeKomisyon      `gorm:"foreignKey:KomisyonID" json:"uyeler,omitempty"`
	Etkinlikler []EtkinlikKomisyon `gorm:"foreignKey:KomisyonID" json:"etkinlikler,omitempty"`
}

// UyeKomisyon üyenin komisyon üyeliğini tutar. Gorev komisyon içindeki
// serbest metin görev tanımıdır (başkan, sekreter vb.), boş olabilir.
// Bir üye aynı komisyona bir kez kaydedilebilir.
type UyeKomisyon struct {
	BaseModel
	UyeID      uint   `gorm:"not null;index:idx_uye_komisyon,unique" json:"uyeId"`
	KomisyonID uint   `gorm:"not null;index:idx_uye_komisyon,unique" json:"komisyonId"`
	Gorev      string `gorm:"type:varchar(150)" json:"gorev,omitempty"`

	Uye      Uye      `gorm:"foreignKey:UyeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"uye,omitempty"`
	Komisyon Komisyon `gorm:"foreignKey:KomisyonID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"komisyon,omitempty"`
}

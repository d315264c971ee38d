package models

// Mahalle ilçeye bağlı bir mahalle örgütüdür.
type Mahalle struct {
	BaseModel
	Ad              string `gorm:"type:varchar(150);not null;index" json:"ad"`
	Aciklama        string `gorm:"type:text" json:"aciklama,omitempty"`
	LokalYeri       string `gorm:"type:varchar(255)" json:"lokalYeri,omitempty"`
	MahalleBaskanID *uint  `gorm:"index" json:"mahalleBaskanId,omitempty"`

	MahalleBaskan *Uye         `gorm:"foreignKey:MahalleBaskanID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"mahalleBaskan,omitempty"`
	SorumluUyeler []UyeMahalle `gorm:"foreignKey:MahalleID" json:"sorumluUyeler,omitempty"`
}

// UyeMahalle üye ile sorumlu olduğu mahalle arasındaki ara tablodur.
type UyeMahalle struct {
	BaseModel
	UyeID     uint `gorm:"not null;index:idx_uye_mahalle,unique" json:"uyeId"`
	MahalleID uint `gorm:"not null;index:idx_uye_mahalle,unique" json:"mahalleId"`

	Uye     Uye     `gorm:"foreignKey:UyeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"uye,omitempty"`
	Mahalle Mahalle `gorm:"foreignKey:MahalleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"mahalle,omitempty"`
}

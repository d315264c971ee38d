package models

// IlceGorev bir üyenin ilçe teşkilatındaki idari görevini tanımlar
// ("İlçe Başkanı", "Yürütme Kurulu" vb.). Sira listeleme önceliğidir.
type IlceGorev struct {
	BaseModel
	Ad       string `gorm:"type:varchar(100);uniqueIndex;not null" json:"ad"`
	Aciklama string `gorm:"type:text" json:"aciklama,omitempty"`
	Sira     int    `gorm:"default:0;index" json:"sira"`

	Uyeler []Uye `gorm:"foreignKey:IlceGorevID" json:"uyeler,omitempty"`
}

package models

// Uye ilçe teşkilatına kayıtlı bir üyedir. En fazla bir ilçe görevi taşır;
// komisyonlara ve sorumlu olduğu mahallelere ara tablolar üzerinden bağlanır.
type Uye struct {
	BaseModel
	Ad          string `gorm:"type:varchar(100);not null;index" json:"ad"`
	Soyad       string `gorm:"type:varchar(100);not null;index" json:"soyad"`
	Telefon     string `gorm:"type:varchar(30)" json:"telefon,omitempty"`
	Email       string `gorm:"type:varchar(150)" json:"email,omitempty"`
	Adres       string `gorm:"type:text" json:"adres,omitempty"`
	IlceGorevID *uint  `gorm:"index" json:"ilceGorevId,omitempty"`

	IlceGorev         *IlceGorev        `gorm:"foreignKey:IlceGorevID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"ilceGorev,omitempty"`
	Komisyonlar       []UyeKomisyon     `gorm:"foreignKey:UyeID" json:"komisyonlar,omitempty"`
	SorumluMahalleler []UyeMahalle      `gorm:"foreignKey:UyeID" json:"sorumluMahalleler,omitempty"`
	Yoklamalar        []EtkinlikYoklama `gorm:"foreignKey:UyeID" json:"yoklamalar,omitempty"`
}

// TamAd listeleme ve sıralamada kullanılan "Ad Soyad" birleşimi.
func (u Uye) TamAd() string {
	if u.Soyad == "" {
		return u.Ad
	}
	return u.Ad + " " + u.Soyad
}

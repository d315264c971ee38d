package models

import (
	"errors"
	"strings"
)

// DurumKod yoklama durumunun saklanan ayrımlı (tagged) halidir. Eski serbest
// metin "notlar" alanının yerini alır; "Mazeretli: ..." önek eşleştirmesi
// yalnızca etiket çözümlemede kalır, depolamada kullanılmaz.
type DurumKod string

const (
	DurumBelirsiz  DurumKod = "belirsiz"
	DurumGeldi     DurumKod = "geldi"
	DurumGelmedi   DurumKod = "gelmedi"
	DurumMazeretli DurumKod = "mazeretli"
)

// Kullanıcıya görünen durum etiketleri.
const (
	EtiketBelirsiz  = "Belirsiz"
	EtiketGeldi     = "Geldi"
	EtiketGelmedi   = "Gelmedi"
	EtiketMazeretli = "Mazeretli"
)

// ErrGecersizDurum tanınmayan bir durum etiketi için döner.
var ErrGecersizDurum = errors.New("geçersiz yoklama durumu")

// YoklamaDurumu durum kodu ile mazeret gerekçesini birlikte taşır.
// Mazeret yalnızca Kod == DurumMazeretli iken anlamlıdır.
type YoklamaDurumu struct {
	Kod     DurumKod
	Mazeret string
}

// Katildi üyenin geldiği kabul edilip edilmediğini türetir. Ayrı bir boolean
// saklanmaz; tek doğruluk kaynağı durum kodudur.
func (d YoklamaDurumu) Katildi() bool {
	return d.Kod == DurumGeldi
}

// Etiket eski API'nin kullandığı metin temsili üretir:
// "Geldi", "Gelmedi", "Belirsiz" veya "Mazeretli: <gerekçe>".
func (d YoklamaDurumu) Etiket() string {
	switch d.Kod {
	case DurumGeldi:
		return EtiketGeldi
	case DurumGelmedi:
		return EtiketGelmedi
	case DurumMazeretli:
		if d.Mazeret == "" {
			return EtiketMazeretli
		}
		return EtiketMazeretli + ": " + d.Mazeret
	default:
		return EtiketBelirsiz
	}
}

// ParseYoklamaDurumu istemciden gelen durum etiketini çözümler. Eski biçimle
// uyum için "Mazeretli" öneğiyle başlayan her etiket kabul edilir; gerekçe
// önekten sonraki kısımdan ayıklanır. Tanınmayan etiketler hata döndürür,
// sessizce "belirsiz"e düşmez.
func ParseYoklamaDurumu(etiket string) (YoklamaDurumu, error) {
	etiket = strings.TrimSpace(etiket)
	switch etiket {
	case EtiketGeldi:
		return YoklamaDurumu{Kod: DurumGeldi}, nil
	case EtiketGelmedi:
		return YoklamaDurumu{Kod: DurumGelmedi}, nil
	case EtiketBelirsiz, "":
		return YoklamaDurumu{Kod: DurumBelirsiz}, nil
	}
	if strings.HasPrefix(etiket, EtiketMazeretli) {
		gerekce := strings.TrimPrefix(etiket, EtiketMazeretli)
		gerekce = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(gerekce), ":"))
		return YoklamaDurumu{Kod: DurumMazeretli, Mazeret: gerekce}, nil
	}
	return YoklamaDurumu{}, ErrGecersizDurum
}

// EtkinlikYoklama bir (etkinlik, üye) çifti için tek yoklama kaydıdır; çift
// üzerinde unique index vardır. Durum ayrımlı tip olarak saklanır, katıldı
// bilgisi türetilir.
type EtkinlikYoklama struct {
	BaseModel
	EtkinlikID uint     `gorm:"not null;index:idx_yoklama_etkinlik_uye,unique" json:"etkinlikId"`
	UyeID      uint     `gorm:"not null;index:idx_yoklama_etkinlik_uye,unique" json:"uyeId"`
	Durum      DurumKod `gorm:"type:varchar(20);not null;default:'belirsiz';index" json:"durum"`
	Mazeret    string   `gorm:"type:text" json:"mazeret,omitempty"`

	Etkinlik Etkinlik `gorm:"foreignKey:EtkinlikID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"etkinlik,omitempty"`
	Uye      Uye      `gorm:"foreignKey:UyeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"uye,omitempty"`
}

// DurumVaryant kaydın durumunu YoklamaDurumu olarak döndürür.
func (y EtkinlikYoklama) DurumVaryant() YoklamaDurumu {
	return YoklamaDurumu{Kod: y.Durum, Mazeret: y.Mazeret}
}

// Katildi türetilmiş katılım bilgisi.
func (y EtkinlikYoklama) Katildi() bool {
	return y.DurumVaryant().Katildi()
}

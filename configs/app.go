package configs

import (
	"os"
	"strings"
)

// Varsayılan ilçe yönetimi görev adları. İlçe yönetim kurulu otomatik dahil
// etme (ilceYonetimKuruluEkle) bu görevlerdeki üyeleri kapsar.
var defaultLeadershipRoles = []string{"İlçe Başkanı", "Yürütme Kurulu", "Yönetim Kurulu"}

// LeadershipRoleNames yönetim kadrosu sayılan görev adlarını döndürür.
// LEADERSHIP_ROLES ortam değişkeni (virgülle ayrılmış) varsayılanı ezer.
func LeadershipRoleNames() []string {
	raw := os.Getenv("LEADERSHIP_ROLES")
	if raw == "" {
		return defaultLeadershipRoles
	}
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return defaultLeadershipRoles
	}
	return names
}

// ServerPort HTTP sunucusunun dinleyeceği portu döndürür.
func ServerPort() string {
	return getEnv("PORT", "3000")
}

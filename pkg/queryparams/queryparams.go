package queryparams

// Liste uçları için ortak sayfalama/sıralama parametreleri.

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultOrderBy = "desc"
)

// ListParams query string'den parse edilen liste parametreleri.
// PerPage = 0 sayfalama istenmediği anlamına gelir; uç tüm kayıtları döner
// (eski API'nin varsayılan davranışı).
type ListParams struct {
	Name    string `query:"name"`
	Page    int    `query:"page"`
	PerPage int    `query:"perPage"`
	SortBy  string `query:"sortBy"`
	OrderBy string `query:"orderBy"`
}

// DefaultListParams verilen sıralama sütunuyla varsayılan parametreleri üretir.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		Page:    DefaultPage,
		PerPage: 0,
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
	}
}

// Validate aralık dışı değerleri sessizce varsayılana çeker.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 0 {
		p.PerPage = 0
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
}

// Offset sayfalama için atlama miktarını hesaplar.
func (p ListParams) Offset() int {
	if p.PerPage <= 0 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// PaginationMeta sayfalama üst verisi.
type PaginationMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// PaginatedResult sayfalanmış liste yanıtı.
type PaginatedResult struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPaginatedResult toplam kayıt sayısından meta üreterek sonucu sarar.
func NewPaginatedResult(data interface{}, params ListParams, total int64) *PaginatedResult {
	perPage := params.PerPage
	if perPage <= 0 {
		perPage = int(total)
		if perPage == 0 {
			perPage = DefaultPerPage
		}
	}
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}
	return &PaginatedResult{
		Data: data,
		Meta: PaginationMeta{
			Page:       params.Page,
			PerPage:    perPage,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}
}

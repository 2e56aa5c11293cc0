package domain

import "time"

// Product é o anúncio normalizado no esquema da tabela products.
// Campos opcionais sem valor serializam como null explícito, nunca omitidos.
type Product struct {
	ID             int       `json:"id"`
	PlatformID     string    `json:"platform_id"`
	Title          string    `json:"title"`
	ImageURL       *string   `json:"image_url"`
	Price          float64   `json:"price"`
	Orders24h      int       `json:"orders_24h"`
	Rating         float64   `json:"rating"`
	ReviewsCount   int       `json:"reviews_count"`
	TrendingScore  float64   `json:"trending_score"` // Heurística em [0,1], duas casas decimais
	ShopName       *string   `json:"shop_name"`
	SellerID       *string   `json:"seller_id"`
	SellerName     *string   `json:"seller_name"`
	CategoryID     *string   `json:"category_id"`     // Sempre null, reservado para enriquecimento futuro
	CommissionRate *float64  `json:"commission_rate"` // Sempre null, reservado para enriquecimento futuro
	Currency       string    `json:"currency"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

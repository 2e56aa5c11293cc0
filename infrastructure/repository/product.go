// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Dorilitre/caau-apify-actor/infrastructure/database/postgres"
	"github.com/Dorilitre/caau-apify-actor/internal/domain"
)

const (
	productsTable = "products p"
)

var productColumns = []string{
	"p.id",
	"p.platform_id",
	"p.title",
	"p.image_url",
	"p.price",
	"p.orders_24h",
	"p.rating",
	"p.reviews_count",
	"p.trending_score",
	"p.shop_name",
	"p.seller_id",
	"p.seller_name",
	"p.category_id",
	"p.commission_rate",
	"p.currency",
	"p.created_at",
	"p.updated_at",
}

type ProductRepository interface {
	SaveOrUpdateProducts(products []*domain.Product) error
	GetByPlatformID(platformID string) (*domain.Product, error)
	ListTrending(limit int) ([]*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

// SaveOrUpdateProducts grava o lote em uma única instrução. Conflitos em
// platform_id atualizam o registro existente e renovam updated_at.
func (r *productRepository) SaveOrUpdateProducts(products []*domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("products").
		Columns(
			"platform_id",
			"title",
			"image_url",
			"price",
			"orders_24h",
			"rating",
			"reviews_count",
			"trending_score",
			"shop_name",
			"seller_id",
			"seller_name",
			"category_id",
			"commission_rate",
			"currency",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, product := range products {
		query = query.Values(
			product.PlatformID,
			product.Title,
			product.ImageURL,
			product.Price,
			product.Orders24h,
			product.Rating,
			product.ReviewsCount,
			product.TrendingScore,
			product.ShopName,
			product.SellerID,
			product.SellerName,
			product.CategoryID,
			product.CommissionRate,
			product.Currency,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (platform_id) DO UPDATE SET
			title = EXCLUDED.title,
			image_url = EXCLUDED.image_url,
			price = EXCLUDED.price,
			orders_24h = EXCLUDED.orders_24h,
			rating = EXCLUDED.rating,
			reviews_count = EXCLUDED.reviews_count,
			trending_score = EXCLUDED.trending_score,
			shop_name = EXCLUDED.shop_name,
			seller_id = EXCLUDED.seller_id,
			seller_name = EXCLUDED.seller_name,
			category_id = EXCLUDED.category_id,
			commission_rate = EXCLUDED.commission_rate,
			currency = EXCLUDED.currency,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *productRepository) GetByPlatformID(platformID string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"p.platform_id": platformID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	product, err := r.scanProductRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}
	return product, nil
}

func (r *productRepository) ListTrending(limit int) ([]*domain.Product, error) {
	queryBuilder := squirrel.
		Select(productColumns...).
		From(productsTable).
		OrderBy("p.trending_score DESC", "p.updated_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)

	for rows.Next() {
		product, err := r.scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}

		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *productRepository) scanProduct(rows *sql.Rows) (*domain.Product, error) {
	product := &domain.Product{}

	err := rows.Scan(
		&product.ID,
		&product.PlatformID,
		&product.Title,
		&product.ImageURL,
		&product.Price,
		&product.Orders24h,
		&product.Rating,
		&product.ReviewsCount,
		&product.TrendingScore,
		&product.ShopName,
		&product.SellerID,
		&product.SellerName,
		&product.CategoryID,
		&product.CommissionRate,
		&product.Currency,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) scanProductRow(row *sql.Row) (*domain.Product, error) {
	product := &domain.Product{}

	err := row.Scan(
		&product.ID,
		&product.PlatformID,
		&product.Title,
		&product.ImageURL,
		&product.Price,
		&product.Orders24h,
		&product.Rating,
		&product.ReviewsCount,
		&product.TrendingScore,
		&product.ShopName,
		&product.SellerID,
		&product.SellerName,
		&product.CategoryID,
		&product.CommissionRate,
		&product.Currency,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return product, nil
}

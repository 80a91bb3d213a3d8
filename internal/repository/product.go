package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cupcade/vendpay/internal/db"
	"github.com/cupcade/vendpay/internal/models"
	"github.com/lib/pq"
)

// ProductRepository defines read access to the product catalog. The
// catalog is managed externally; this service never writes to it.
type ProductRepository interface {
	FindByID(ctx context.Context, productID string) (*models.Product, error)
	// BatchGet fetches all listed products in one request. Ids with no
	// matching product are simply absent from the result map; partial
	// results are not an error.
	BatchGet(ctx context.Context, productIDs []string) (map[string]models.Product, error)
}

type productRepository struct {
	q db.Querier
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(q db.Querier) ProductRepository {
	return &productRepository{q: q}
}

// FindByID retrieves a product by its id
func (r *productRepository) FindByID(ctx context.Context, productID string) (*models.Product, error) {
	query := `
		SELECT product_id, name, type, price_cents
		FROM products
		WHERE product_id = $1
	`

	var product models.Product
	err := r.q.QueryRowContext(ctx, query, productID).Scan(
		&product.ProductID,
		&product.Name,
		&product.Type,
		&product.PriceCents,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product by id: %w", err)
	}

	return &product, nil
}

// BatchGet retrieves all products matching the given ids in a single query
func (r *productRepository) BatchGet(ctx context.Context, productIDs []string) (map[string]models.Product, error) {
	products := make(map[string]models.Product, len(productIDs))
	if len(productIDs) == 0 {
		return products, nil
	}

	query := `
		SELECT product_id, name, type, price_cents
		FROM products
		WHERE product_id = ANY($1)
	`

	rows, err := r.q.QueryContext(ctx, query, pq.Array(productIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to batch get products: %w", err)
	}
	defer rows.Close() //nolint:errcheck // close error is not actionable here

	for rows.Next() {
		var product models.Product
		if err := rows.Scan(
			&product.ProductID,
			&product.Name,
			&product.Type,
			&product.PriceCents,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products[product.ProductID] = product
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

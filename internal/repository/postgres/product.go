package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/PIYUSHDHAUNDIYAL/Nexin/internal/domain"
	"github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/database"
	apperrors "github.com/PIYUSHDHAUNDIYAL/Nexin/pkg/errors"
)

// productColumns is the standard SELECT column list for products.
const productColumns = `id, name, category, price, image, description`

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	pool database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool database.DBTX) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// ListAll returns the full product table in insertion order.
func (r *ProductRepository) ListAll(ctx context.Context) (products []domain.Product, err error) {
	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY created_at, id`, productColumns)

	ctx, end := database.TraceQuery(ctx, "ListProducts", query)
	defer func() { end(err) }()

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetByID retrieves a product by its id.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (product *domain.Product, err error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	ctx, end := database.TraceQuery(ctx, "GetProduct", query)
	defer func() { end(err) }()

	var p domain.Product
	err = r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Price, &p.Image, &p.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("product", id)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &p, nil
}

// GetByIDs retrieves the products whose ids are in the given set. Ids not
// present in the table are omitted; the database decides the row order, so
// callers needing a specific order must re-sort.
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []string) (products []domain.Product, err error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = ANY($1)`, productColumns)

	ctx, end := database.TraceQuery(ctx, "GetProductsByIDs", query)
	defer func() { end(err) }()

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// scanProducts collects product rows, returning an empty slice rather than
// nil for zero rows.
func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Image, &p.Description); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

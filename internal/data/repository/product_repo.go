package repository

import (
	"context"
	"fmt"

	"solar-shop/internal/data/entity"
	"solar-shop/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ProductFilter narrows FindAll. Nil fields are ignored; both are plain
// equality predicates, there is no search index.
type ProductFilter struct {
	Category *string
	Featured *bool
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, category, image_url,
		                      specifications, stock, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		product.ImageURL,
		product.Specifications,
		product.Stock,
		product.Featured,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(&product.ID)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, category, image_url,
		       specifications, stock, featured, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var product entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Category,
		&product.ImageURL,
		&product.Specifications,
		&product.Stock,
		&product.Featured,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return nil, fmt.Errorf("find product by ID %d: %w", id, err)
	}

	return &product, nil
}

func (r *productRepository) FindAll(ctx context.Context, filter ProductFilter) ([]*entity.Product, error) {
	query := `
		SELECT id, name, description, price, category, image_url,
		       specifications, stock, featured, created_at, updated_at
		FROM products
	`

	var args []any
	switch {
	case filter.Category != nil:
		query += ` WHERE category = $1`
		args = append(args, *filter.Category)
	case filter.Featured != nil:
		query += ` WHERE featured = $1`
		args = append(args, *filter.Featured)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to get products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Category,
			&product.ImageURL,
			&product.Specifications,
			&product.Stock,
			&product.Featured,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate products rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, category = $5,
		    image_url = $6, specifications = $7, stock = $8, featured = $9,
		    updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		product.ImageURL,
		product.Specifications,
		product.Stock,
		product.Featured,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.Int64("product_id", product.ID),
		)
		return fmt.Errorf("update product %d: %w", product.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %d not found", product.ID)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.Int64("id", id),
		)
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %d not found", id)
	}

	return nil
}

package queries

import (
	"context"
	"database/sql"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductsQueryHandler retrieves catalog pages from the database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog listing queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query, sorted by name for stable catalog pages.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			name,
			description,
			price,
			stock
		FROM products
	`
	args := make([]any, 0, 3)
	if query.Search() != "" {
		sqlText += ` WHERE name ILIKE ?`
		args = append(args, "%"+query.Search()+"%")
	}
	sqlText += `
		ORDER BY name, id
		LIMIT ? OFFSET ?
	`
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]ProductResponse, error) {
	products := make([]ProductResponse, 0)

	for rows.Next() {
		var id uuid.UUID
		var resp ProductResponse

		if err := rows.Scan(&id, &resp.Name, &resp.Description, &resp.Price, &resp.Stock); err != nil {
			return nil, err
		}

		productID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.ID = productID

		products = append(products, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// GetProductQueryHandler retrieves a single product from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single-product queries.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError for unknown ids.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	var row struct {
		ID          uuid.UUID
		Name        string
		Description string
		Price       int64
		Stock       int
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			stock
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Scan(&row)
	if result.Error != nil {
		return ProductResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ProductResponse{}, errs.NewObjectNotFoundError("product", query.ProductID().String())
	}

	productID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return ProductResponse{}, err
	}

	return ProductResponse{
		ID:          productID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Stock:       row.Stock,
	}, nil
}

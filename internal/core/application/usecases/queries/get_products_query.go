package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
)

// GetProductsQuery retrieves a page of the product catalog, optionally
// filtered by a case-insensitive name search. Available to every caller.
type GetProductsQuery struct {
	page   int
	limit  int
	search string

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a paged catalog query. Search may be empty.
func NewGetProductsQuery(page int, limit int, search string) (GetProductsQuery, error) {
	if page < 1 {
		return GetProductsQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}
	if limit < 1 || limit > MaxPageSize {
		return GetProductsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageSize)
	}

	return GetProductsQuery{
		page:   page,
		limit:  limit,
		search: search,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetProductsQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetProductsQuery) Limit() int {
	return q.limit
}

// Offset returns the row offset derived from page and limit.
func (q GetProductsQuery) Offset() int {
	return (q.page - 1) * q.limit
}

// Search returns the optional name filter, empty when absent.
func (q GetProductsQuery) Search() string {
	return q.search
}

// GetProductQuery retrieves a single catalog product.
type GetProductQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for one product.
func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}

	return GetProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the requested product's identifier.
func (q GetProductQuery) ProductID() kernel.UUID {
	return q.productID
}

// ProductResponse represents a catalog product read model. Price is in
// cents.
type ProductResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       int64
	Stock       int
}

package extgrid

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Scope is a passthrough filter applied to the query as is, see gorm.DB.Scopes.
type Scope = func(*gorm.DB) *gorm.DB

// Query is what the Formatter asks a Provider for.
type Query struct {
	// Order is empty when no ordering must be applied.
	Order Orderings
	// Page is 1-based. Only meaningful when PerPage > 0.
	Page    int
	PerPage int
	// Where holds equality conditions, see gorm.DB.Where with a map argument.
	Where  map[string]any
	Scopes []Scope
}

// Paginated returns true if a single page of the dataset is requested.
func (q Query) Paginated() bool {
	return q.PerPage > 0
}

// Offset returns the number of records preceding the requested page.
func (q Query) Offset() int {
	if !q.Paginated() || q.Page <= 1 {
		return 0
	}

	return (q.Page - 1) * q.PerPage
}

// Provider executes grid queries. Errors are returned to the Formatter caller
// unchanged.
type Provider[T any] interface {
	// Find returns every record matching the query.
	Find(ctx context.Context, q Query) ([]T, error)
	// FindPage returns the requested page and the number of matching records
	// across all pages.
	FindPage(ctx context.Context, q Query) ([]T, int64, error)
}

// GormProvider implements Provider over a gorm connection. T must be a gorm model.
type GormProvider[T any] struct {
	db *gorm.DB
}

func NewGormProvider[T any](db *gorm.DB) *GormProvider[T] {
	return &GormProvider[T]{
		db: db,
	}
}

// DB returns the underlying connection.
func (p *GormProvider[T]) DB() *gorm.DB {
	return p.db
}

func (p *GormProvider[T]) filtered(ctx context.Context, q Query) *gorm.DB {
	db := p.db.WithContext(ctx).Model(new(T))
	if len(q.Where) > 0 {
		db = db.Where(q.Where)
	}

	return db.Scopes(q.Scopes...)
}

// Find - implements Provider.
func (p *GormProvider[T]) Find(ctx context.Context, q Query) ([]T, error) {
	ret := make([]T, 0)

	err := q.Order.Apply(p.filtered(ctx, q)).Find(&ret).Error
	if err != nil {
		return nil, fmt.Errorf("cannot find records: %w", err)
	}

	return ret, nil
}

// FindPage - implements Provider. The total is counted without ordering.
func (p *GormProvider[T]) FindPage(ctx context.Context, q Query) ([]T, int64, error) {
	if !q.Paginated() {
		return nil, 0, fmt.Errorf("cannot find page: per page must be positive, got %d", q.PerPage)
	}

	var total int64
	err := p.filtered(ctx, q).Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("cannot count records: %w", err)
	}

	ret := make([]T, 0, q.PerPage)

	db := q.Order.Apply(p.filtered(ctx, q)).Limit(q.PerPage)
	if offset := q.Offset(); offset > 0 {
		db = db.Offset(offset)
	}

	err = db.Find(&ret).Error
	if err != nil {
		return nil, 0, fmt.Errorf("cannot find page %d: %w", q.Page, err)
	}

	return ret, total, nil
}

var _ Provider[struct{}] = (*GormProvider[struct{}])(nil)

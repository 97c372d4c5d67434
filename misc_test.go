package extgrid

import (
	"context"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGORMMySQLMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return "mysql", db.Debug(), mock, nil
}

func newGORMPostgresMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	dialector := postgres.New(postgres.Config{
		Conn: mockDB,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return "postgres", db.Debug(), mock, nil
}

type user struct {
	ID        uint
	Name      string
	Email     string
	CreatedAt time.Time
}

// attrs is a model exposing its attributes through Record.
type attrs map[string]any

func (a attrs) Attribute(name string) (any, bool) {
	v, ok := a[name]
	return v, ok
}

type fakeProvider[T any] struct {
	records []T
	total   int64
	err     error
	queries []Query
}

func (p *fakeProvider[T]) Find(_ context.Context, q Query) ([]T, error) {
	p.queries = append(p.queries, q)
	if p.err != nil {
		return nil, p.err
	}

	return p.records, nil
}

func (p *fakeProvider[T]) FindPage(_ context.Context, q Query) ([]T, int64, error) {
	p.queries = append(p.queries, q)
	if p.err != nil {
		return nil, 0, p.err
	}

	return p.records, p.total, nil
}

func (p *fakeProvider[T]) lastQuery() Query {
	if len(p.queries) == 0 {
		return Query{}
	}

	return p.queries[len(p.queries)-1]
}

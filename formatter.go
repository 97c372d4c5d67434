package extgrid

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm/schema"
)

// Envelope constants read by the ExtJS store reader. They must not change.
const (
	RootProperty    = "data"
	MessageProperty = "message"
	SuccessProperty = "success"
	IDProperty      = "id"
	TotalProperty   = "total"
)

// Row is a single projected record keyed by field name.
type Row map[string]Value

// MetaData configures the ExtJS store reader on the client.
type MetaData[T any] struct {
	Root            string               `json:"root"`
	MessageProperty string               `json:"messageProperty"`
	SuccessProperty string               `json:"successProperty"`
	Fields          []FieldDescriptor[T] `json:"fields"`
	IDProperty      string               `json:"idProperty"`
	TotalProperty   string               `json:"totalProperty"`
}

// Result is the JSON envelope consumed by an ExtJS store.
type Result[T any] struct {
	// Total number of matching records across all pages.
	Total    int64       `json:"total"`
	Data     []Row       `json:"data"`
	MetaData MetaData[T] `json:"metaData"`
}

func newMetaData[T any](fields []FieldDescriptor[T]) MetaData[T] {
	return MetaData[T]{
		Root:            RootProperty,
		MessageProperty: MessageProperty,
		SuccessProperty: SuccessProperty,
		Fields:          fields,
		IDProperty:      IDProperty,
		TotalProperty:   TotalProperty,
	}
}

type formatterConfig struct {
	logger *zap.Logger
	namer  schema.Namer
}

type FormatterOption func(*formatterConfig)

// WithLogger sets the logger. Logging is disabled by default.
func WithLogger(logger *zap.Logger) FormatterOption {
	return func(c *formatterConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithNamer sets the naming strategy used to resolve column names of models
// not implementing Record. It should match the one of the gorm connection.
func WithNamer(namer schema.Namer) FormatterOption {
	return func(c *formatterConfig) {
		if namer != nil {
			c.namer = namer
		}
	}
}

// Formatter turns records of T into ExtJS store results. It holds no per call
// state and is safe for concurrent use.
type Formatter[T any] struct {
	provider Provider[T]
	reader   attributeReader[T]
	logger   *zap.Logger
}

// NewFormatter creates a Formatter reading records from provider.
//
// Unless T implements Record, T must be a struct (or a pointer to one) gorm can
// parse a schema from.
func NewFormatter[T any](provider Provider[T], opts ...FormatterOption) (*Formatter[T], error) {
	if provider == nil {
		return nil, fmt.Errorf("provider is nil")
	}

	cfg := formatterConfig{
		logger: zap.NewNop(),
		namer:  schema.NamingStrategy{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	reader, err := newAttributeReader[T](cfg.namer)
	if err != nil {
		return nil, err
	}

	return &Formatter[T]{
		provider: provider,
		reader:   reader,
		logger:   cfg.logger,
	}, nil
}

// FormatResult queries the provider with opts and wraps the projected records
// into a Result.
//
// A paginated query reports the total across all pages, an unpaginated one the
// number of returned records.
func (f *Formatter[T]) FormatResult(ctx context.Context, opts Options[T]) (*Result[T], error) {
	err := opts.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot format result: %w", err)
	}

	f.logUnmappedKeys(opts)

	q := opts.query()
	f.logger.Debug("querying grid records",
		zap.String("order", q.Order.ToSQL()),
		zap.Bool("paginated", q.Paginated()),
		zap.Int("page", q.Page),
		zap.Int("perPage", q.PerPage),
	)

	var (
		records []T
		total   int64
	)
	if q.Paginated() {
		records, total, err = f.provider.FindPage(ctx, q)
	} else {
		records, err = f.provider.Find(ctx, q)
		total = int64(len(records))
	}
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		row, err := f.project(ctx, record, opts.Fields)
		if err != nil {
			return nil, fmt.Errorf("cannot format result: %w", err)
		}

		rows = append(rows, row)
	}

	return &Result[T]{
		Total:    total,
		Data:     rows,
		MetaData: newMetaData(opts.Fields),
	}, nil
}

// Project converts a single record into a Row. Client-only fields are skipped.
func (f *Formatter[T]) Project(ctx context.Context, record T, fields []FieldDescriptor[T]) (Row, error) {
	if len(fields) == 0 {
		return nil, ErrMissingFields
	}

	return f.project(ctx, record, fields)
}

func (f *Formatter[T]) project(ctx context.Context, record T, fields []FieldDescriptor[T]) (Row, error) {
	row := make(Row, len(fields))
	for _, field := range fields {
		if field.ClientOnly() {
			continue
		}

		if field.Custom != nil {
			row[field.Name] = ValueOf(field.Custom(record))
			continue
		}

		value, err := f.reader.read(ctx, record, field.Name)
		if err != nil {
			return nil, fmt.Errorf("field '%s': %w", field.Name, err)
		}

		row[field.Name] = ValueOf(value)
	}

	return row, nil
}

func (f *Formatter[T]) logUnmappedKeys(opts Options[T]) {
	if len(opts.SortMapping) == 0 {
		return
	}

	keys := lo.Keys(opts.SortMapping)
	for _, key := range []struct{ kind, value string }{
		{"sort", opts.SortBy},
		{"group", opts.GroupBy},
	} {
		if key.value == "" {
			continue
		}

		if _, ok := opts.SortMapping.Resolve(key.value); !ok {
			f.logger.Debug("ignoring unmapped "+key.kind+" key",
				zap.String("key", key.value),
				zap.String("closest", closestKey(key.value, keys)),
			)
		}
	}
}

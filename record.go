package extgrid

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"gorm.io/gorm/schema"
)

// Record lets a model expose its attributes by name. Models that do not
// implement it are read through their GORM schema.
type Record interface {
	// Attribute returns the value of the named attribute and whether the
	// attribute exists.
	Attribute(name string) (any, bool)
}

// attributeReader reads named attributes of T.
type attributeReader[T any] interface {
	read(ctx context.Context, record T, name string) (any, error)
}

// recordReader serves models implementing Record.
type recordReader[T any] struct{}

func (recordReader[T]) read(_ context.Context, record T, name string) (any, error) {
	r, ok := any(record).(Record)
	if !ok {
		return nil, fmt.Errorf("record %T does not implement Record", record)
	}

	value, ok := r.Attribute(name)
	if !ok {
		return nil, fmt.Errorf("unknown attribute '%s' on %T", name, record)
	}

	return value, nil
}

// schemaReader reads struct fields through the parsed GORM schema, so a field
// can be addressed by its column name ("created_at") or its Go name
// ("CreatedAt").
type schemaReader[T any] struct {
	schema *schema.Schema
}

func newSchemaReader[T any](namer schema.Namer) (*schemaReader[T], error) {
	s, err := schema.Parse(new(T), &sync.Map{}, namer)
	if err != nil {
		return nil, fmt.Errorf("cannot parse model schema: %w", err)
	}

	return &schemaReader[T]{schema: s}, nil
}

func (r *schemaReader[T]) read(ctx context.Context, record T, name string) (any, error) {
	field := r.schema.LookUpField(name)
	if field == nil {
		return nil, fmt.Errorf("unknown attribute '%s' on '%s'", name, r.schema.Name)
	}

	rv := reflect.ValueOf(record)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil, nil
	}

	value, _ := field.ValueOf(ctx, rv)

	return value, nil
}

var _recordType = reflect.TypeOf((*Record)(nil)).Elem()

func newAttributeReader[T any](namer schema.Namer) (attributeReader[T], error) {
	if reflect.TypeOf((*T)(nil)).Elem().Implements(_recordType) {
		return recordReader[T]{}, nil
	}

	return newSchemaReader[T](namer)
}

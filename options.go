package extgrid

import (
	"errors"
	"fmt"
)

// ErrMissingFields is returned when no field descriptors are given.
var ErrMissingFields = errors.New("missing fields")

// FieldDescriptor describes one column of the grid. It is echoed to the client
// in metaData.fields, so it carries the ExtJS store field properties as well.
type FieldDescriptor[T any] struct {
	// Name is the key of the value in each row. Without Custom it is also the
	// attribute read from the record.
	Name string `json:"name"`
	// Type is the ExtJS field type ("int", "string", "date", ...).
	Type string `json:"type,omitempty"`
	// Mapping makes the field client-only: the store resolves it from other
	// row data and the server does not project it.
	Mapping string `json:"mapping,omitempty"`
	// DateFormat is the ExtJS date format for "date" fields.
	DateFormat string `json:"dateFormat,omitempty"`
	// Custom computes the value from the record instead of reading Name.
	Custom func(T) any `json:"-"`
}

// ClientOnly returns true if the field is not projected on the server.
func (f FieldDescriptor[T]) ClientOnly() bool {
	return f.Mapping != ""
}

// Options of a single FormatResult call.
//
// Paging follows the ExtJS paging toolbar: Start is the offset of the first
// row, Limit the page size. PerPage requests pagination when Limit is not set.
type Options[T any] struct {
	// Fields is required.
	Fields []FieldDescriptor[T]

	// SortMapping enables ordering. Without it SortBy, SortDir, GroupBy and
	// GroupDir are ignored.
	SortMapping SortMapping
	SortBy      string
	SortDir     string
	GroupBy     string
	GroupDir    string

	Start   int
	Limit   int
	PerPage int

	// Where and Scopes are passed to the Provider untouched.
	Where  map[string]any
	Scopes []Scope
}

func (o Options[T]) validate() error {
	if len(o.Fields) == 0 {
		return ErrMissingFields
	}

	for i, field := range o.Fields {
		if field.Name == "" {
			return fmt.Errorf("field #%d has no name", i)
		}
	}

	return o.SortMapping.validate()
}

// query builds the provider query for the options.
func (o Options[T]) query() Query {
	q := Query{
		Order:  BuildOrder(o.SortMapping, o.SortBy, o.SortDir, o.GroupBy, o.GroupDir),
		Where:  o.Where,
		Scopes: o.Scopes,
	}

	if page, perPage, ok := paging(o.Start, o.Limit, o.PerPage); ok {
		q.Page = page
		q.PerPage = perPage
	}

	return q
}

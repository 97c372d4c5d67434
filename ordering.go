package extgrid

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction defines the sort direction for the requested dataset.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (o Direction) Valid() bool {
	return o == DirectionASC || o == DirectionDESC
}

// ParseDirection maps a client supplied direction to Direction. Only "desc"
// (in any case) is descending, everything else, including an empty value, is
// ascending.
func ParseDirection(dir string) Direction {
	return lo.Ternary(strings.EqualFold(strings.TrimSpace(dir), "desc"), DirectionDESC, DirectionASC)
}

type (
	Orderings []OrderBy
	OrderBy   struct {
		Column    string
		Direction Direction
	}

	SortKey = string

	// SortMapping whitelists the sort and group keys a client may send. Key is
	// the key used by the grid, value is the column expression placed into the
	// ORDER BY clause as is, e.g. "user_name" -> "users.name". Client input only
	// ever selects a key, it never reaches the clause.
	SortMapping map[SortKey]string
)

// DefaultOrder is used whenever a SortMapping is given but the requested sort
// key is missing or unknown.
var DefaultOrder = OrderBy{Column: "created_at", Direction: DirectionDESC}

// ToSQLSlice converts Orderings to a slice of strings in the form
// "<order_column> <order_direction>".
//
// Example: for Orderings: [{"a", "ASC"}, {"b", "DESC"}] returns ["a ASC", "b DESC"].
func (o Orderings) ToSQLSlice() []string {
	ret := make([]string, 0, len(o))
	for _, ordering := range o {
		ret = append(ret, fmt.Sprintf("%s %s", ordering.Column, ordering.Direction))
	}

	return ret
}

// ToSQL converts Orderings to a single string
// "<order_column_1> <order_direction_1>, <order_column_2> <order_direction_2>".
// Example: for [{"a", "ASC"}, {"b", "DESC"}] returns "a ASC, b DESC".
func (o Orderings) ToSQL() string {
	return strings.Join(o.ToSQLSlice(), ", ")
}

// Apply applies the ordering to a gorm query. Empty orderings leave the query
// untouched.
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	if len(o) == 0 {
		return db
	}

	return db.Order(o.ToSQL())
}

// Resolve returns the column expression registered for key.
func (m SortMapping) Resolve(key SortKey) (string, bool) {
	if key == "" {
		return "", false
	}

	column, ok := m[key]

	return column, ok
}

// validate only rejects blank expressions. Values are written by the
// developer and go into ORDER BY verbatim, so "lower(users.name)" or
// "users.last_name, users.first_name" are fine.
func (m SortMapping) validate() error {
	for key, column := range m {
		if strings.TrimSpace(column) == "" {
			return fmt.Errorf("sort mapping '%s': empty column expression", key)
		}
	}

	return nil
}

// BuildOrder derives the ORDER BY terms for a grid request.
//
// Without a mapping nothing is ordered, whatever the sort and group inputs are.
// Otherwise the sort term is the mapped sortBy column, or DefaultOrder when
// sortBy is not a mapping key. A mapped groupBy column is placed in front of it.
//
// Example: mapping {"name": "users.name", "city": "users.city"}, sortBy "name",
// sortDir "desc", groupBy "city" gives "users.city ASC, users.name DESC".
func BuildOrder(mapping SortMapping, sortBy, sortDir, groupBy, groupDir string) Orderings {
	if len(mapping) == 0 {
		return nil
	}

	order := DefaultOrder
	if column, ok := mapping.Resolve(sortBy); ok {
		order = OrderBy{Column: column, Direction: ParseDirection(sortDir)}
	}

	ret := make(Orderings, 0, 2)
	if column, ok := mapping.Resolve(groupBy); ok {
		ret = append(ret, OrderBy{Column: column, Direction: ParseDirection(groupDir)})
	}

	return append(ret, order)
}

func closestKey(input SortKey, dataSet []SortKey) SortKey {
	minDist := math.MaxInt
	closest := ""

	for _, key := range dataSet {
		dist := levenshtein([]rune(key), []rune(input))
		if dist < minDist || (dist == minDist && key < closest) {
			minDist = dist
			closest = key
		}
	}

	return closest
}

package extgrid

import (
	"database/sql"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// TimestampLayout is the layout every date and time value is rendered with.
// ExtJS date fields read it with dateFormat "Y-m-d H:i:s".
const TimestampLayout = "2006-01-02 15:04:05"

// Kind tells how a projected Value is rendered.
type Kind uint8

const (
	KindNull Kind = iota
	KindPlain
	KindTimestamp
)

// Value is a single projected cell of a Row.
type Value struct {
	kind  Kind
	plain any
	ts    time.Time
}

// Null returns a value rendered as JSON null.
func Null() Value {
	return Value{kind: KindNull}
}

// Plain wraps v as is. It is rendered with encoding/json.
func Plain(v any) Value {
	if v == nil {
		return Null()
	}

	return Value{kind: KindPlain, plain: v}
}

// Timestamp wraps t. It is rendered with TimestampLayout in t's own location.
func Timestamp(t time.Time) Value {
	return Value{kind: KindTimestamp, ts: t}
}

// ValueOf classifies an attribute or custom field result. Time-like values
// become timestamps, nil and invalid nullable times become null.
func ValueOf(v any) Value {
	switch vt := v.(type) {
	case nil:
		return Null()
	case Value:
		return vt
	case time.Time:
		return Timestamp(vt)
	case *time.Time:
		if vt == nil {
			return Null()
		}
		return Timestamp(*vt)
	case sql.NullTime:
		if !vt.Valid {
			return Null()
		}
		return Timestamp(vt.Time)
	case *sql.NullTime:
		if vt == nil || !vt.Valid {
			return Null()
		}
		return Timestamp(vt.Time)
	case gorm.DeletedAt:
		if !vt.Valid {
			return Null()
		}
		return Timestamp(vt.Time)
	default:
		return Plain(v)
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Interface returns the value the way it appears on the wire: a formatted
// string for timestamps, the wrapped value otherwise.
func (v Value) Interface() any {
	switch v.kind {
	case KindTimestamp:
		return v.ts.Format(TimestampLayout)
	case KindPlain:
		return v.plain
	default:
		return nil
	}
}

// MarshalJSON - implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

var _ json.Marshaler = Value{}

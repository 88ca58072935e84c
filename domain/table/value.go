package table

import (
	"fmt"
	"time"
)

// ValueKind defines the storage type for cells
type ValueKind string

const (
	KindNumber  ValueKind = "number"
	KindText    ValueKind = "text"
	KindDate    ValueKind = "date"
	KindMissing ValueKind = "missing"
)

// Value represents a typed cell with deterministic coercion. Every raw cell
// is resolved to exactly one kind at ingestion time; downstream analysis
// never re-parses ambiguous strings.
type Value struct {
	Kind      ValueKind  `json:"kind"`
	NumberVal *float64   `json:"number_val,omitempty"`
	TextVal   *string    `json:"text_val,omitempty"`
	DateVal   *time.Time `json:"date_val,omitempty"`
}

// NewNumberValue creates a numeric cell
func NewNumberValue(n float64) Value {
	return Value{Kind: KindNumber, NumberVal: &n}
}

// NewTextValue creates a text cell; empty strings are missing
func NewTextValue(s string) Value {
	if s == "" {
		return Value{Kind: KindMissing}
	}
	return Value{Kind: KindText, TextVal: &s}
}

// NewDateValue creates a date cell
func NewDateValue(t time.Time) Value {
	return Value{Kind: KindDate, DateVal: &t}
}

// NewMissingValue creates a missing cell
func NewMissingValue() Value {
	return Value{Kind: KindMissing}
}

// IsMissing reports whether the cell is the dataset's missing marker
func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// IsNumber reports whether the cell holds a valid number
func (v Value) IsNumber() bool {
	return v.Kind == KindNumber && v.NumberVal != nil
}

// IsText reports whether the cell holds a valid text value
func (v Value) IsText() bool {
	return v.Kind == KindText && v.TextVal != nil
}

// IsDate reports whether the cell holds a valid date
func (v Value) IsDate() bool {
	return v.Kind == KindDate && v.DateVal != nil
}

// AsFloat64 returns the numeric value, or 0 if not a number
func (v Value) AsFloat64() float64 {
	if v.NumberVal != nil {
		return *v.NumberVal
	}
	return 0.0
}

// AsText returns the text value, or "" if not text
func (v Value) AsText() string {
	if v.TextVal != nil {
		return *v.TextVal
	}
	return ""
}

// AsDate returns the date value, or the zero time if not a date
func (v Value) AsDate() time.Time {
	if v.DateVal != nil {
		return *v.DateVal
	}
	return time.Time{}
}

// String returns the display representation of the cell. Numbers that are
// whole render without a decimal part so previews match the source file.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		if v.NumberVal != nil {
			if *v.NumberVal == float64(int64(*v.NumberVal)) {
				return fmt.Sprintf("%d", int64(*v.NumberVal))
			}
			return fmt.Sprintf("%g", *v.NumberVal)
		}
	case KindText:
		if v.TextVal != nil {
			return *v.TextVal
		}
	case KindDate:
		if v.DateVal != nil {
			return v.DateVal.Format("2006-01-02")
		}
	case KindMissing:
		return ""
	}
	return ""
}

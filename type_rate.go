package rentfolio

import "github.com/shopspring/decimal"

// Rate is a dimensionless decimal scalar, used for management and CapEx rates
// (as 0-1 decimals, not percentage integers) and exact divisions.
type Rate struct {
	value decimal.Decimal
}

// R creates a Rate from a numeric value.
func R[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

// ParseRate parses a 0-1 decimal rate, tolerantly: unparsable input is zero.
func ParseRate(s string) Rate {
	return Rate{value: ParseAmount(s)}
}

func (r Rate) Equal(q Rate) bool    { return r.value.Equal(q.value) }
func (r Rate) IsZero() bool         { return r.value.IsZero() }
func (r Rate) IsNegative() bool     { return r.value.IsNegative() }
func (r Rate) AsFloat() float64     { return r.value.InexactFloat64() }
func (r Rate) String() string       { return r.value.String() }

// MarshalJSON implements the json.Marshaler interface for Rate.
func (r Rate) MarshalJSON() ([]byte, error) { return r.value.MarshalJSON() }

// UnmarshalJSON implements the json.Unmarshaler interface for Rate.
func (r *Rate) UnmarshalJSON(b []byte) error { return r.value.UnmarshalJSON(b) }

package money

import (
	"encoding/json"

	"autoflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount = errs.NewKind(errs.ErrValidation, "amount cannot be negative")
	ErrInvalidAmount  = errs.NewKind(errs.ErrValidation, "invalid amount")
	ErrAmountTooLarge = errs.NewKind(errs.ErrValidation, "amount exceeds 9999999999.99")
)

// Scale is the number of fractional digits kept for currency amounts.
const Scale = 2

var maxAmount = decimal.RequireFromString("9999999999.99")

// MaxAmount is the largest amount a price column can hold (NUMERIC(12,2)).
func MaxAmount() Money {
	return Money{amount: maxAmount}
}

// Money is a non-negative currency amount.
type Money struct {
	amount decimal.Decimal
}

func New(d decimal.Decimal) (Money, error) {
	m, err := newUnbounded(d)
	if err != nil {
		return Money{}, err
	}
	if err := m.CheckStorable(); err != nil {
		return Money{}, err
	}
	return m, nil
}

func newUnbounded(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: d.Round(Scale)}, nil
}

func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.Mark(err, ErrInvalidAmount)
	}
	return New(d)
}

// ParseSum parses an aggregate of stored amounts, which may exceed MaxAmount.
func ParseSum(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.Mark(err, ErrInvalidAmount)
	}
	return newUnbounded(d)
}

// MustParse is meant for constants and tests.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func FromInt(units int64) Money {
	m, _ := newUnbounded(decimal.NewFromInt(units))
	return m
}

func Zero() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// CheckStorable reports whether the amount fits a single price column. Sums
// built with Add are not bounded and must be checked before they are stored.
func (m Money) CheckStorable() error {
	if m.amount.GreaterThan(maxAmount) {
		return errs.Wrap(ErrAmountTooLarge, m.String())
	}
	return nil
}

func (m Money) Decimal() decimal.Decimal { return m.amount }
func (m Money) IsZero() bool             { return m.amount.IsZero() }
func (m Money) Equal(other Money) bool   { return m.amount.Equal(other.amount) }

func (m Money) String() string {
	return m.amount.StringFixed(Scale)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return errs.Mark(err, ErrInvalidAmount)
	}
	parsed, err := New(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Sum adds all amounts, returning zero for an empty list.
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

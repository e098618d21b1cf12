package pgconv

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"autoflow/internal/domain/money"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// MoneyParam renders an amount for a NUMERIC parameter. Strings are sent in
// text format, so no float conversion happens on the way in.
func MoneyParam(m money.Money) string {
	return m.String()
}

// SumFromText parses an aggregated NUMERIC column selected as ::text.
func SumFromText(s string) (money.Money, error) {
	m, err := money.ParseSum(s)
	if err != nil {
		return money.Money{}, fmt.Errorf("numeric aggregate %q: %w", s, err)
	}
	return m, nil
}

// MoneyFromText parses a NUMERIC column selected as ::text.
func MoneyFromText(s string) (money.Money, error) {
	m, err := money.Parse(s)
	if err != nil {
		return money.Money{}, fmt.Errorf("numeric column %q: %w", s, err)
	}
	return m, nil
}

func DateToPgtype(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{Valid: false}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

func DatePtrFromPgtype(pd pgtype.Date) *time.Time {
	if !pd.Valid {
		return nil
	}
	t := time.Date(pd.Time.Year(), pd.Time.Month(), pd.Time.Day(), 0, 0, 0, 0, time.UTC)
	return &t
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

package invoice

import (
	"fmt"

	"autoflow/internal/pkg/errs"
)

var ErrInvalidNumber = errs.NewKind(errs.ErrValidation, "invalid invoice number")

// Number is the human readable invoice identifier AF-{year}-{sequence}.
type Number struct {
	year     int
	sequence int
}

func NewNumber(year, sequence int) (Number, error) {
	if year < 1 || sequence < 1 {
		return Number{}, errs.Wrapf(ErrInvalidNumber, "year %d sequence %d", year, sequence)
	}
	return Number{year: year, sequence: sequence}, nil
}

func ParseNumber(s string) (Number, error) {
	var year, seq int
	if _, err := fmt.Sscanf(s, "AF-%d-%d", &year, &seq); err != nil {
		return Number{}, errs.Wrap(ErrInvalidNumber, s)
	}
	n, err := NewNumber(year, seq)
	if err != nil {
		return Number{}, err
	}
	if n.String() != s {
		return Number{}, errs.Wrap(ErrInvalidNumber, s)
	}
	return n, nil
}

func (n Number) Year() int     { return n.year }
func (n Number) Sequence() int { return n.sequence }

func (n Number) String() string {
	return fmt.Sprintf("AF-%d-%03d", n.year, n.sequence)
}

package catalog

import (
	"strings"
	"time"

	"autoflow/internal/domain/money"
	"autoflow/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOptionalNotFound      = errs.NewKind(errs.ErrNotFound, "optional accessory not found")
	ErrInvalidOptional       = errs.NewKind(errs.ErrValidation, "invalid optional accessory data")
	ErrDuplicateOptionalCode = errs.NewKind(errs.ErrConflict, "optional accessory code already registered")
)

const MaxOptionalDescriptionLength = 2000

// Optional is an accessory that can be added to a vehicle configuration.
type Optional struct {
	id          uuid.UUID
	code        string
	name        string
	description string
	price       money.Money
	createdAt   time.Time
	updatedAt   time.Time
}

func NewOptional(code, name, description string, price money.Money, now time.Time) (*Optional, error) {
	o := &Optional{id: uuid.New(), createdAt: now}
	if err := o.Update(code, name, description, price, now); err != nil {
		return nil, err
	}
	return o, nil
}

func ReconstructOptional(id uuid.UUID, code, name, description string, price money.Money, createdAt, updatedAt time.Time) *Optional {
	return &Optional{
		id:          id,
		code:        code,
		name:        name,
		description: description,
		price:       price,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (o *Optional) Update(code, name, description string, price money.Money, now time.Time) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if code == "" || name == "" {
		return errs.Wrap(ErrInvalidOptional, "code and name are required")
	}
	if len(description) > MaxOptionalDescriptionLength {
		return errs.Wrap(ErrInvalidOptional, "description too long")
	}
	o.code = code
	o.name = name
	o.description = description
	o.price = price
	o.updatedAt = now
	return nil
}

func (o *Optional) ID() uuid.UUID        { return o.id }
func (o *Optional) Code() string         { return o.code }
func (o *Optional) Name() string         { return o.name }
func (o *Optional) Description() string  { return o.description }
func (o *Optional) Price() money.Money   { return o.price }
func (o *Optional) CreatedAt() time.Time { return o.createdAt }
func (o *Optional) UpdatedAt() time.Time { return o.updatedAt }

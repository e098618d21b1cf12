package configuration

import (
	"strings"
	"time"
	"unicode/utf8"

	"autoflow/internal/domain/money"
	"autoflow/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrConfigurationNotFound = errs.NewKind(errs.ErrNotFound, "configuration not found")
	ErrVehicleSold           = errs.NewKind(errs.ErrValidation, "vehicle is already sold")
	ErrNoteTooLong           = errs.NewKind(errs.ErrValidation, "configuration note too long")
	ErrConfigurationLocked   = errs.NewKind(errs.ErrLocked, "configuration is referenced by a proposal")
	ErrConfigurationDeleted  = errs.NewKind(errs.ErrConflict, "configuration was deleted")
	ErrTotalTooLarge         = errs.NewKind(errs.ErrValidation, "configuration total exceeds 9999999999.99")
)

const MaxNoteLength = 1000

type Configuration struct {
	id          uuid.UUID
	clientID    uuid.UUID
	vehicleID   uuid.UUID
	optionalIDs []uuid.UUID
	basePrice   money.Money
	totalPrice  money.Money
	note        string
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

func ReconstructConfiguration(
	id, clientID, vehicleID uuid.UUID,
	optionalIDs []uuid.UUID,
	basePrice, totalPrice money.Money,
	note string,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Configuration {
	return &Configuration{
		id:          id,
		clientID:    clientID,
		vehicleID:   vehicleID,
		optionalIDs: NormalizeOptionalIDs(optionalIDs),
		basePrice:   basePrice,
		totalPrice:  totalPrice,
		note:        note,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		deletedAt:   deletedAt,
	}
}

func (c *Configuration) ID() uuid.UUID            { return c.id }
func (c *Configuration) ClientID() uuid.UUID      { return c.clientID }
func (c *Configuration) VehicleID() uuid.UUID     { return c.vehicleID }
func (c *Configuration) BasePrice() money.Money   { return c.basePrice }
func (c *Configuration) TotalPrice() money.Money  { return c.totalPrice }
func (c *Configuration) Note() string             { return c.note }
func (c *Configuration) CreatedAt() time.Time     { return c.createdAt }
func (c *Configuration) UpdatedAt() time.Time     { return c.updatedAt }
func (c *Configuration) DeletedAt() *time.Time    { return c.deletedAt }
func (c *Configuration) IsDeleted() bool          { return c.deletedAt != nil }
func (c *Configuration) OptionalIDs() []uuid.UUID { return append([]uuid.UUID(nil), c.optionalIDs...) }

// EnsureMutable rejects changes to a tombstoned configuration or one that a
// proposal already references.
func (c *Configuration) EnsureMutable(referenced bool) error {
	if c.IsDeleted() {
		return ErrConfigurationDeleted
	}
	if referenced {
		return ErrConfigurationLocked
	}
	return nil
}

func (c *Configuration) MarkDeleted(now time.Time) error {
	if c.IsDeleted() {
		return ErrConfigurationDeleted
	}
	c.deletedAt = &now
	c.updatedAt = now
	return nil
}

func (c *Configuration) apply(vehicleID uuid.UUID, optionalIDs []uuid.UUID, pricing Pricing, note string, now time.Time) {
	c.vehicleID = vehicleID
	c.optionalIDs = NormalizeOptionalIDs(optionalIDs)
	c.basePrice = pricing.Base
	c.totalPrice = pricing.Total
	c.note = note
	c.updatedAt = now
}

func normalizeNote(note string) (string, error) {
	note = strings.TrimSpace(note)
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return "", ErrNoteTooLong
	}
	return note, nil
}

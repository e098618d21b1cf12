package shared

import (
	"autoflow/internal/infra"
	"autoflow/internal/pkg/errs"
)

var (
	ErrConcurrentChange = errs.NewKind(errs.ErrConflict, "conflicting concurrent change")
	ErrValueOutOfRange  = errs.NewKind(errs.ErrValidation, "value out of range")
)

// TranslateRepoErr maps storage failures onto domain error kinds. Missing rows
// become notFound; unique violations, serialization failures and deadlocks
// become conflicts; numeric overflows become validation errors. Anything else
// is returned unchanged.
func TranslateRepoErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return errs.Wrap(notFound, err.Error())
	case infra.IsKind(err, infra.KindDuplicateKey), infra.IsKind(err, infra.KindSerialization):
		return errs.Wrap(ErrConcurrentChange, err.Error())
	case infra.IsKind(err, infra.KindOutOfRange):
		return errs.Wrap(ErrValueOutOfRange, err.Error())
	default:
		return err
	}
}

// TranslateDuplicate maps a violation of the given constraint onto target.
func TranslateDuplicate(err error, constraint string, target error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintOf(err) == constraint {
		return errs.Wrap(target, constraint)
	}
	return TranslateRepoErr(err, nil)
}

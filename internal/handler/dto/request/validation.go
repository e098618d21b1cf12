package request

import (
	"regexp"
	"time"

	"autoflow/internal/domain/money"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

var platePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 -]{1,11}$`)

// RegisterValidations adds the custom tags used by the request DTOs to gin's validator.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("money", validateMoney); err != nil {
		return err
	}
	return v.RegisterValidation("plate", validatePlate)
}

// money accepts non-negative decimal strings such as "12500" or "99.90"
func validateMoney(fl validator.FieldLevel) bool {
	_, err := money.Parse(fl.Field().String())
	return err == nil
}

func validatePlate(fl validator.FieldLevel) bool {
	return platePattern.MatchString(fl.Field().String())
}

func parseMoneyPtr(s *string) (*money.Money, error) {
	if s == nil {
		return nil, nil
	}
	m, err := money.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

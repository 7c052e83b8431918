package ecochain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		// Decimals are compared numerically by gte/lte.
		validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
			d, ok := v.Interface().(decimal.Decimal)
			if !ok {
				return nil
			}
			return d.InexactFloat64()
		}, decimal.Decimal{})
	})
	return validate
}

// Validate checks v against the field constraints declared on the domain types.
// The returned error is a validator.ValidationErrors when a constraint is violated.
func Validate(v any) error {
	return validatorInstance().Struct(v)
}

// ValidationMessage describes the first violated constraint in err, for example
// "wallet_address failed required validation".
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid input"
	}
	fe := verrs[0]
	ns := fe.Namespace()
	// Drop the struct name: "User.wallet_address" becomes "wallet_address".
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	return fmt.Sprintf("%s failed %s validation", ns, fe.Tag())
}

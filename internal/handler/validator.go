package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9.\-]{1,20}$`)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Report json names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Decimals validate as their canonical string so field tags apply to them
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("decimal_gte0", validateDecimalGTE0)
	_ = v.RegisterValidation("decimal_gt0", validateDecimalGT0)
	_ = v.RegisterValidation("symbol", validateSymbol)
	_ = v.RegisterValidation("asset_kind", validateAssetKind)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "decimal_gte0":
			errs[field] = "Must be zero or greater"
		case "decimal_gt0":
			errs[field] = "Must be greater than zero"
		case "symbol":
			errs[field] = "Invalid symbol"
		case "asset_kind":
			errs[field] = "Must be crypto or stock"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "uuid":
			errs[field] = "Must be a UUID"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	switch v := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return v, true
	case string:
		d, err := decimal.NewFromString(v)
		return d, err == nil
	}
	return decimal.Zero, false
}

func validateDecimalGTE0(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && !d.IsNegative()
}

func validateDecimalGT0(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && d.IsPositive()
}

func validateSymbol(fl validator.FieldLevel) bool {
	return symbolPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// Empty is allowed; combine with required when the kind is mandatory
func validateAssetKind(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	if kind == "" {
		return true
	}
	_, err := domain.ParseAssetKind(kind)
	return err == nil
}

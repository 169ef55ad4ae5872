package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MaxAmountPlaces is the number of fraction digits a money field may carry
const MaxAmountPlaces = 2

var applicationRefPattern = regexp.MustCompile(`^[A-Z0-9-]{4,64}$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("application_ref", validateApplicationRef)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// validateDecimalAmount accepts a non-negative decimal string with at most two fraction digits
func validateDecimalAmount(fl validator.FieldLevel) bool {
	amount, ok := ParseAmount(fl.Field().String())
	return ok && !amount.IsNegative()
}

// validateApplicationRef accepts upper-case credit application references such as APP-2024-0001
func validateApplicationRef(fl validator.FieldLevel) bool {
	return IsValidApplicationRef(fl.Field().String())
}

// IsValidApplicationRef checks a credit application reference outside struct validation, e.g. path params
func IsValidApplicationRef(ref string) bool {
	return applicationRefPattern.MatchString(ref)
}

// ParseAmount parses a money string in plain decimal notation
func ParseAmount(value string) (decimal.Decimal, bool) {
	value = strings.TrimSpace(value)
	if value == "" || strings.ContainsAny(value, "eE") {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false
	}

	if amount.Exponent() < -MaxAmountPlaces && !amount.Equal(amount.Truncate(MaxAmountPlaces)) {
		return decimal.Zero, false
	}

	return amount, true
}

// FieldErrors turns validator errors into a json-field -> message map
func FieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"request": err.Error()}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields[fieldErr.Field()] = message(fieldErr)
	}
	return fields
}

func message(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "decimal_amount":
		return "must be a non-negative amount with at most two decimal places"
	case "application_ref":
		return "must be 4-64 upper-case letters, digits or dashes"
	case "max":
		return "must be at most " + fieldErr.Param() + " characters"
	case "min":
		return "must be at least " + fieldErr.Param() + " characters"
	default:
		return "failed " + fieldErr.Tag() + " validation"
	}
}

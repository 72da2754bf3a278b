package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	shortIDPattern = regexp.MustCompile(`^\p{Ll}{1,12}$`)
	pinPattern     = regexp.MustCompile(`^\d{1,9}$`)
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates a request struct
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Var validates a single value against a tag, e.g. "amount" or "short_id"
func (v *Validator) Var(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("amount", validateAmount)
	_ = v.RegisterValidation("short_id", validateShortID)
	_ = v.RegisterValidation("pin", validatePIN)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// validateAmount accepts a string holding a positive decimal
func validateAmount(fl validator.FieldLevel) bool {
	amount, ok := ParseAmount(fl.Field().String())
	return ok && amount.IsPositive()
}

// validateShortID accepts lowercase initials
func validateShortID(fl validator.FieldLevel) bool {
	return shortIDPattern.MatchString(NormalizeShortID(fl.Field().String()))
}

func validatePIN(fl validator.FieldLevel) bool {
	return pinPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

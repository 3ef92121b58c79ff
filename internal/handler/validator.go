package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/IdleMiner_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

var (
	mineIDPattern   = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,32}$`)
)

// InitValidator initializes the global validator
func InitValidator() {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("mine_id", validateMineID)
		_ = v.RegisterValidation("equip_slot", validateEquipSlot)
		_ = v.RegisterValidation("username", validateUsername)
		validate = &Validator{validate: v}
	})
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a field → message map
// without leaking Go struct names.
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
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "mine_id":
			errs[field] = "Invalid mine identifier"
		case "equip_slot":
			errs[field] = "Invalid equipment slot"
		case "username":
			errs[field] = "Must be 3-32 letters, digits, '_', '.' or '-'"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateMineID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	return len(id) <= 64 && mineIDPattern.MatchString(id)
}

func validateEquipSlot(fl validator.FieldLevel) bool {
	_, err := domain.ParseEquipmentSlot(fl.Field().String())
	return err == nil
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

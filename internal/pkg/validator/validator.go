package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

var promoCodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,32}$`)

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func oneOf(values ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		for _, allowed := range values {
			if v == allowed {
				return true
			}
		}
		return false
	}
}

func registerCustomValidations() {
	validate.RegisterValidation("promo_code", func(fl validator.FieldLevel) bool {
		return promoCodePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	validate.RegisterValidation("discount_type", oneOf("percentage", "fixed"))
	validate.RegisterValidation("line_kind", oneOf("equipment", "service"))
	validate.RegisterValidation("booking_status", oneOf("pending", "confirmed", "checked_in", "completed", "cancelled", "no_show"))
	validate.RegisterValidation("request_status", oneOf("pending", "in_progress", "completed", "converted", "rejected", "closed"))
	validate.RegisterValidation("role", oneOf("customer", "staff", "admin"))
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string)
	for _, err := range validationErrors {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "gt":
			errors[field] = "Value must be greater than " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "gtfield":
			errors[field] = "Value must be after " + err.Param()
		case "url":
			errors[field] = "Invalid URL format"
		case "promo_code":
			errors[field] = "Invalid promotion code"
		case "discount_type":
			errors[field] = "Invalid discount type. Must be: percentage or fixed"
		case "line_kind":
			errors[field] = "Invalid line kind. Must be: equipment or service"
		case "booking_status":
			errors[field] = "Invalid booking status"
		case "request_status":
			errors[field] = "Invalid request status"
		case "role":
			errors[field] = "Invalid role. Must be: customer, staff, or admin"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

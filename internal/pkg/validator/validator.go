package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

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

	// Register custom validations
	registerCustomValidations()
}

func registerCustomValidations() {
	// Booking type validation
	validate.RegisterValidation("booking_type", func(fl validator.FieldLevel) bool {
		bt := fl.Field().String()
		for _, t := range []string{"daytour", "overnight", "22hrs"} {
			if bt == t {
				return true
			}
		}
		return false
	})

	// Day type validation
	validate.RegisterValidation("day_type", func(fl validator.FieldLevel) bool {
		dt := fl.Field().String()
		return dt == "weekday" || dt == "weekend"
	})

	// HH:MM wall-clock validation
	validate.RegisterValidation("time_hhmm", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 5 || s[2] != ':' {
			return false
		}
		for _, c := range []byte{s[0], s[1], s[3], s[4]} {
			if c < '0' || c > '9' {
				return false
			}
		}
		h := (int(s[0]-'0') * 10) + int(s[1]-'0')
		m := (int(s[3]-'0') * 10) + int(s[4]-'0')
		return h <= 23 && m <= 59
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "min":
			errors[field] = "Value is too small (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too large (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "oneof":
			errors[field] = "Must be one of: " + err.Param()
		case "datetime":
			errors[field] = "Must be a date in " + err.Param() + " format"
		case "booking_type":
			errors[field] = "Invalid booking type. Must be: daytour, overnight, or 22hrs"
		case "day_type":
			errors[field] = "Invalid day type. Must be: weekday or weekend"
		case "time_hhmm":
			errors[field] = "Must be a time in HH:MM format"
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

package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct validate struct ตาม validate tags
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors แปลง validator error เป็น map field -> ข้อความ
func GetValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["_"] = err.Error()
		return errors
	}

	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			errors[fieldErr.Field()] = fmt.Sprintf("%s is required", fieldErr.Field())
		case "max":
			errors[fieldErr.Field()] = fmt.Sprintf("%s must not exceed %s characters", fieldErr.Field(), fieldErr.Param())
		case "min":
			errors[fieldErr.Field()] = fmt.Sprintf("%s must be at least %s characters", fieldErr.Field(), fieldErr.Param())
		default:
			errors[fieldErr.Field()] = fmt.Sprintf("%s is invalid", fieldErr.Field())
		}
	}

	return errors
}

// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

// Package validation provides struct validation using
// go-playground/validator v10. It exposes a thread-safe singleton
// validator with custom validators for application-specific rules.
//
// Features:
//   - Singleton validator instance (thread-safe, caches struct info)
//   - Custom "role" validator for group roles
//   - Error translation into the improper-payload ServerError format
//   - Uses WithRequiredStructEnabled option (v11+ compatibility)
//
// Example usage:
//
//	type SignUpRequest struct {
//	    Name  string `json:"name" validate:"required,min=1,max=200"`
//	    Email string `json:"email" validate:"required,email"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    response.Error(w, r, verr.ToServerError())
//	    return
//	}
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/go-donew/mentoring-api/internal/models"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError represents a single field validation error.
type ValidationError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

// Field returns the struct field name that failed validation.
func (e *ValidationError) Field() string {
	return e.field
}

// Tag returns the validation tag that failed.
func (e *ValidationError) Tag() string {
	return e.tag
}

// Param returns the parameter for the validation tag (e.g., "100" for "max=100").
func (e *ValidationError) Param() string {
	return e.param
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	return e.message
}

// RequestValidationError is a collection of validation errors with a
// conversion into the API's ServerError envelope.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the slice of validation errors.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

// Error implements the error interface, returning a combined message.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}

	var messages []string
	for _, err := range ve.errors {
		messages = append(messages, err.Error())
	}

	return strings.Join(messages, "; ")
}

// ToServerError converts the validation errors to an improper-payload
// ServerError carrying the combined field messages.
func (ve *RequestValidationError) ToServerError() *models.ServerError {
	base := models.NewServerError(models.ErrImproperPayload)
	if len(ve.errors) == 0 {
		return base
	}

	var messages []string
	for _, err := range ve.errors {
		messages = append(messages, err.Error())
	}
	return base.WithMessage(strings.Join(messages, "; "))
}

// GetValidator returns the singleton validator instance, initialized
// once with custom validators. Thread-safe.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// "role" validates group role names (mentee, mentor, supermentor).
		//nolint:errcheck // registration only fails for nil funcs
		validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			return models.IsValidRole(models.Role(fl.Field().String()))
		})
	})

	return validate
}

// ValidateStruct validates a struct using the singleton validator.
// Returns nil if validation passes, or *RequestValidationError if it
// fails.
func ValidateStruct(s interface{}) *RequestValidationError {
	v := GetValidator()

	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// Unexpected error type
		return &RequestValidationError{
			errors: []ValidationError{
				{
					field:   "unknown",
					tag:     "unknown",
					message: err.Error(),
				},
			},
		}
	}

	fieldErrors := make([]ValidationError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = ValidationError{
			field:   fieldErr.Field(),
			tag:     fieldErr.Tag(),
			param:   fieldErr.Param(),
			value:   fieldErr.Value(),
			message: translateError(fieldErr),
		}
	}

	return &RequestValidationError{errors: fieldErrors}
}

// errorMessageTemplates maps validation tags to message templates.
var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"email":    "%s must be a valid email address",
	"uuid":     "%s must be a valid UUID",
	"role":     "%s must be one of: mentee, mentor, supermentor",
}

// errorMessageWithParam maps validation tags to templates that include
// the tag parameter.
var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

// translateError converts a validator.FieldError to a human-readable
// message matching the API's error style.
func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}

	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}

	return translateMinMax(fe, field, tag, param)
}

// translateMinMax handles min/max validation with type-specific messages.
func translateMinMax(fe validator.FieldError, field, tag, param string) string {
	isString := fe.Kind().String() == "string"

	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}

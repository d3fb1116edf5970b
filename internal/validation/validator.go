// Larder - Pantry-Aware Recipe Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package validation provides struct validation using go-playground/validator v10.
// It exposes a thread-safe singleton validator instance with custom validators
// for Larder's domain rules.
//
// Custom validators:
//   - unit: the value is a recognized unit-of-measure token (or empty)
//   - canonical: the value is non-empty after name canonicalization
//
// Example usage:
//
//	type RecipeDoc struct {
//	    ID   string `validate:"required"`
//	    Unit string `validate:"unit"`
//	}
//
//	if err := validation.ValidateStruct(&doc); err != nil {
//	    return fmt.Errorf("recipe rejected: %w", err)
//	}
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/larder/internal/models"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError represents a single field validation failure with structured
// information.
type FieldError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

// Field returns the struct field name that failed validation.
func (e *FieldError) Field() string {
	return e.field
}

// Tag returns the validation tag that failed.
func (e *FieldError) Tag() string {
	return e.tag
}

// Param returns the parameter for the validation tag (e.g., "1" for "min=1").
func (e *FieldError) Param() string {
	return e.param
}

// Value returns the actual value that failed validation.
func (e *FieldError) Value() interface{} {
	return e.value
}

// Error returns a human-readable error message.
func (e *FieldError) Error() string {
	return e.message
}

// StructError is a collection of field validation failures for one struct.
type StructError struct {
	errors []FieldError
}

// Errors returns the slice of field errors.
func (se *StructError) Errors() []FieldError {
	return se.errors
}

// Error implements the error interface, returning a combined message.
func (se *StructError) Error() string {
	if len(se.errors) == 0 {
		return "validation failed"
	}

	var messages []string
	for _, err := range se.errors {
		messages = append(messages, err.Error())
	}

	return strings.Join(messages, "; ")
}

// GetValidator returns the singleton validator instance.
// The validator is initialized once with custom validators and options.
// This function is thread-safe.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// unit: recognized unit token or empty
		_ = validate.RegisterValidation("unit", func(fl validator.FieldLevel) bool {
			_, ok := models.UnitFamilyOf(fl.Field().String())
			return ok
		})

		// canonical: non-empty after canonicalization
		_ = validate.RegisterValidation("canonical", func(fl validator.FieldLevel) bool {
			return models.Canonical(fl.Field().String()) != ""
		})
	})

	return validate
}

// ValidateStruct validates a struct using the singleton validator.
// Returns nil if validation passes, or *StructError if validation fails.
func ValidateStruct(s interface{}) *StructError {
	v := GetValidator()

	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// Unexpected error type - wrap it
		return &StructError{
			errors: []FieldError{
				{
					field:   "unknown",
					tag:     "unknown",
					message: err.Error(),
				},
			},
		}
	}

	fieldErrors := make([]FieldError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = FieldError{
			field:   fieldErr.Field(),
			tag:     fieldErr.Tag(),
			param:   fieldErr.Param(),
			value:   fieldErr.Value(),
			message: translateError(fieldErr),
		}
	}

	return &StructError{errors: fieldErrors}
}

// errorMessageTemplates maps validation tags to message templates.
var errorMessageTemplates = map[string]string{
	"required":  "%s is required",
	"unit":      "%s must be a recognized unit of measure",
	"canonical": "%s must be a non-empty name",
}

// errorMessageWithParam maps validation tags to templates that include param.
var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
	"min":   "%s must be at least %s",
	"max":   "%s must be at most %s",
}

// translateError converts a validator.FieldError to a human-readable message.
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

	return fmt.Sprintf("%s failed %s validation", field, tag)
}

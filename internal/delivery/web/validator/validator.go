// Package validator adapts go-playground/validator to echo's Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	"agrifarma/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates bound form and JSON DTOs.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator with the project's custom tags registered.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return fieldLabel(field.Tag.Get("label"), field.Name)
	})

	// emailshape is the light local@domain.tld check used across the site.
	_ = validate.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return entity.ValidEmail(fl.Field().String())
	})

	return &CustomValidator{validate: validate}
}

// Validate returns an AppError carrying a message for the first failed field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.WithStack(err)
	}

	return domainerrors.ErrValidationFailed.WithMessage(message(fieldErrs[0])).WithDetails(err.Error())
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return domainerrors.ErrValidationFailed.Message()
	case "emailshape", "email":
		return domainerrors.ErrInvalidEmail.Message()
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long.", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}

func fieldLabel(label, name string) string {
	if label != "" {
		return label
	}

	return name
}

package series

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/varoOP/tvseriesdb/internal/domain"
)

// NewValidator returns a validator that understands import record dates and reports json field names
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	return v
}

// validateRecord checks a single import record, returning a *domain.ValidationError on failure
func validateRecord(v *validator.Validate, index int, r domain.ImportRecord) error {
	err := v.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &domain.ValidationError{Index: index, Err: err}
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			fields = append(fields, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		fields = append(fields, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}

	return &domain.ValidationError{Index: index, Fields: fields, Err: err}
}

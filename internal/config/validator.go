package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/elemental/internal/element"
	elerrors "github.com/alexisbeaulieu97/elemental/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
			_, err := language.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("scaled_property", func(fl validator.FieldLevel) bool {
			p, err := element.LookupProperty(fl.Field().String())
			return err == nil && p.Scaled()
		})

		_ = v.RegisterValidation("colorable_property", func(fl validator.FieldLevel) bool {
			p, err := element.LookupProperty(fl.Field().String())
			return err == nil && (p.Colored() || p.Scaled())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks settings against the schema.
func Validate(s *Settings) error {
	if s == nil {
		return elerrors.NewValidationError("settings", "settings are nil", nil)
	}
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return elerrors.NewValidationError(field, msg, err)
	}

	return elerrors.NewValidationError("settings", err.Error(), err)
}

// yamlishFieldName drops the root struct from the namespace, leaving paths
// such as "browse.color_by" or "logarithmic[1]".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}

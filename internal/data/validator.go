package data

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	elerrors "github.com/alexisbeaulieu97/elemental/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	symbolPattern = regexp.MustCompile(`^[A-Z][a-z]{0,2}$`)
)

const (
	maxGroup  = 18
	maxPeriod = 7
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

		_ = v.RegisterValidation("symbol", func(fl validator.FieldLevel) bool {
			return symbolPattern.MatchString(fl.Field().String())
		})

		v.RegisterStructValidation(validatePosition, rawRecord{})

		validateInst = v
	})

	return validateInst
}

// validatePosition checks group and period against the shape of the table.
func validatePosition(sl validator.StructLevel) {
	r := sl.Current().Interface().(rawRecord)

	if r.Group.defined() && (r.Group.Value < 1 || r.Group.Value > maxGroup) {
		sl.ReportError(r.Group.Value, "group", "Group", "group", "")
	}
	if r.Period.defined() && (r.Period.Value < 1 || r.Period.Value > maxPeriod) {
		sl.ReportError(r.Period.Value, "period", "Period", "period", "")
	}
}

func validateRecord(index int, r rawRecord) error {
	if err := validatorInstance().Struct(r); err != nil {
		return convertValidationError(index, err)
	}
	if r.Number != index+1 {
		return elerrors.NewValidationError(
			fieldFor(index, "number"),
			fmt.Sprintf("element %d found at position %d", r.Number, index+1),
			nil,
		)
	}
	return nil
}

func convertValidationError(index int, err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldFor(index, ve.Field())
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return elerrors.NewValidationError(field, msg, err)
	}

	return elerrors.NewValidationError(fmt.Sprintf("elements[%d]", index), err.Error(), err)
}

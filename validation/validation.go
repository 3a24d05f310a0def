// Package validation runs request guards before anything reaches a repository.
package validation

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"board/errs"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with the board's custom rules registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// 위반 필드명은 요청 JSON 키 이름으로 보고한다.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		validate = v
	})
	return validate
}

// Struct validates v and returns an errs.Error listing every violated field, or nil.
func Struct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs.Validation(errs.FieldViolation{Field: "body", Rule: err.Error()})
	}
	fields := make([]errs.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, errs.FieldViolation{Field: fe.Field(), Rule: fe.Tag()})
	}
	return errs.Validation(fields...)
}

// PositiveID fails with a validation error unless id > 0.
func PositiveID(field string, id int64) error {
	if id <= 0 {
		return errs.Validation(errs.FieldViolation{Field: field, Rule: "gt"})
	}
	return nil
}

// ParseID parses a path identifier and requires it to be positive.
func ParseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.Validation(errs.FieldViolation{Field: field, Rule: "numeric"})
	}
	if err := PositiveID(field, id); err != nil {
		return 0, err
	}
	return id, nil
}

// PageInRange fails unless page*size fits in an int offset.
func PageInRange(page, size int) error {
	if size > 0 && page > math.MaxInt/size {
		return errs.Validation(errs.FieldViolation{Field: "page", Rule: "max"})
	}
	return nil
}

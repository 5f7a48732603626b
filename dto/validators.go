package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"mydaytasks/model"
)

// RegisterValidators adds the task enum tags to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	v.RegisterTagNameFunc(fieldName)
	rules := map[string]validator.Func{
		"priority": func(fl validator.FieldLevel) bool {
			return model.Priority(fl.Field().String()).Valid()
		},
		"category": func(fl validator.FieldLevel) bool {
			return model.Category(fl.Field().String()).Valid()
		},
		"sortoption": func(fl validator.FieldLevel) bool {
			return model.SortOption(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// FieldErrors maps a binding error to per-field messages keyed by the json
// name. ok is false when err is not a validation error.
func FieldErrors(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		switch fe.Tag() {
		case "required":
			out[name] = fmt.Sprintf("%s is required", fe.StructField())
		case "priority", "category", "sortoption":
			out[name] = fmt.Sprintf("invalid %s %q", fe.Tag(), fe.Value())
		default:
			out[name] = fmt.Sprintf("failed on %s", fe.Tag())
		}
	}
	return out, true
}

// fieldName reports a field by its json name, or its form name for query
// structs.
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func ValidateStruct(s interface{}) error {
	return getValidator().Struct(s)
}

// TranslateError maps each failing field to its validation message.
// Errors that are not validation errors are returned under the "_" key.
func TranslateError(err error) map[string]string {
	out := make(map[string]string)
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = fmt.Sprintf("failed on '%s' rule", fe.Tag())
	}
	return out
}

// Summary renders TranslateError output as a single, stable line.
func Summary(err error) string {
	fields := TranslateError(err)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, "; ")
}

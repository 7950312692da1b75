// Package validation provides struct validation with translated, per-field messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/arloliu/rota/calendar"
)

// custom validation tags
const (
	notBlankTag = "notblank"
	weekdayTag  = "weekday"
)

// FieldError describes a validation failure on a single field.
type FieldError struct {
	Field   string
	Message string
}

// Error aggregates field errors from a single struct validation.
type Error struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}

	return strings.Join(parts, "; ")
}

// Validator wraps a configured validator and its english translator.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
)

// Default returns the shared validator instance.
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = New()
	})

	return defaultValidator
}

// New creates a validator that reports fields by their yaml tag name and
// understands the notblank and weekday tags.
func New() *Validator {
	v := validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, translator)

	// Use yaml (then json) tag names for errors instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"yaml", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return fld.Name
	})

	_ = v.RegisterValidation(notBlankTag, notBlankValidation)
	_ = v.RegisterValidation(weekdayTag, weekdayValidation)

	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range []string{notBlankTag, weekdayTag} {
		_ = v.RegisterTranslation(tag, translator, registerFn, translateCustomValidationErrs)
	}

	return &Validator{validate: v, translator: translator}
}

// Struct validates s and returns an *Error listing every failing field, sorted
// by namespace, or nil when s is valid.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   trimRoot(fe.Namespace()),
			Message: fe.Translate(v.translator),
		})
	}
	sort.Slice(out.Fields, func(i, j int) bool { return out.Fields[i].Field < out.Fields[j].Field })

	return out
}

// trimRoot drops the leading struct name from a namespace ("Config.roles[0]" -> "roles[0]").
func trimRoot(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return ns
}

func translateCustomValidationErrs(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case notBlankTag:
		return fmt.Sprintf("%s cannot be blank", fe.Field())
	case weekdayTag:
		return fmt.Sprintf("%s must be a weekday name", fe.Field())
	default:
		return ""
	}
}

// Custom Validators

// notBlankValidation accepts any string kind, including named string types.
func notBlankValidation(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	return strings.TrimSpace(fl.Field().String()) != ""
}

func weekdayValidation(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, ok := calendar.ParseWeekday(fl.Field().String())

	return ok
}

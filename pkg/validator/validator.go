package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MsgPositiveInt = "Value must be an integer and must be positive."
	MsgNotBlank    = "This value should not be blank."
)

var currencyPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// FieldErrors maps a request field name to its violation messages
type FieldErrors map[string][]string

// ValidationError carries every violation of a request. Handlers turn it
// into a 400 response with an {"errors": {...}} body.
type ValidationError struct {
	Errors FieldErrors
}

func NewValidationError() *ValidationError {
	return &ValidationError{Errors: FieldErrors{}}
}

// Add records a message for field
func (e *ValidationError) Add(field, message string) {
	e.Errors[field] = append(e.Errors[field], message)
}

// Merge copies the violations of other into e
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	for field, msgs := range other.Errors {
		e.Errors[field] = append(e.Errors[field], msgs...)
	}
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// Err returns e as an error, or nil when no violation was recorded
func (e *ValidationError) Err() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e.Errors[f], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = validator.New()

func init() {
	// Field names come from the query/json tags so messages match the request keys
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
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

	validate.RegisterValidation("positive_int", func(fl validator.FieldLevel) bool {
		_, ok := ParsePositiveInt(fl.Field().String())
		return ok
	})

	validate.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return IsCurrency(fl.Field().String())
	})
}

// ParsePositiveInt accepts decimal digit strings for integers greater than zero
func ParsePositiveInt(s string) (int, bool) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// IsCurrency reports whether s is a non-negative amount with at most two decimals
func IsCurrency(s string) bool {
	return currencyPattern.MatchString(s)
}

// ValidateStruct runs the struct's validate tags and returns a *ValidationError
// when at least one rule fails.
func ValidateStruct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(fieldName(fe), message(fe))
	}
	return verr
}

// fieldName drops the root struct name from the namespace, so nested
// fields read like products[0].quantity
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgNotBlank
	case "positive_int":
		return MsgPositiveInt
	case "currency":
		return fmt.Sprintf("The value '%v' is not a valid currency format.", fe.Value())
	case "oneof":
		return fmt.Sprintf("The value you selected is not a valid choice (valid choices are %s).", choices(fe.Param()))
	case "gt":
		return fmt.Sprintf("This value should be greater than %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("This value should be greater than or equal to %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("This value should be less than or equal to %s.", fe.Param())
	case "min":
		return fmt.Sprintf("This collection should contain %s element or more.", fe.Param())
	case "email":
		return "This value is not a valid email address."
	default:
		return fmt.Sprintf("Field failed on the '%s' tag.", fe.Tag())
	}
}

// choices renders "a b c" as "'a', 'b' and 'c'"
func choices(param string) string {
	opts := strings.Fields(param)
	for i, o := range opts {
		opts[i] = "'" + o + "'"
	}
	if len(opts) < 2 {
		return strings.Join(opts, "")
	}
	return strings.Join(opts[:len(opts)-1], ", ") + " and " + opts[len(opts)-1]
}

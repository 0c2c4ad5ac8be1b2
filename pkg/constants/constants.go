package constants

import (
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	LoggerKey  ContextKey = "logger"
	UserKey    ContextKey = "user"
	SessionKey ContextKey = "session"
	ParamsKey  ContextKey = "params"
)

// DateFormat is the wire format for date-only fields.
const DateFormat = "2006-01-02"

// Validate is the shared validator instance. Custom rules cover the
// date checks every entity dialog performs before dispatching.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	must(v.RegisterValidation("notpast", validateNotPast))
	must(v.RegisterValidation("afterfield", validateAfterField))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// validateNotPast accepts time.Time fields or DateFormat strings and rejects
// values strictly before today's date. Empty strings pass; pair with
// "required" when the field is mandatory.
func validateNotPast(fl validator.FieldLevel) bool {
	today := truncateToDay(time.Now())
	switch value := fl.Field().Interface().(type) {
	case time.Time:
		return !truncateToDay(value).Before(today)
	case string:
		if value == "" {
			return true
		}
		parsed, err := time.Parse(DateFormat, value)
		if err != nil {
			return false
		}
		return !parsed.Before(today)
	default:
		return false
	}
}

// validateAfterField compares against a sibling field given as the rule
// parameter, e.g. `validate:"afterfield=StartTime"`.
func validateAfterField(fl validator.FieldLevel) bool {
	param := fl.Param()
	other := fl.Parent()
	if other.Kind() == reflect.Ptr {
		other = other.Elem()
	}
	sibling := other.FieldByName(param)
	if !sibling.IsValid() {
		return false
	}
	switch value := fl.Field().Interface().(type) {
	case time.Time:
		start, ok := sibling.Interface().(time.Time)
		if !ok {
			return false
		}
		return value.After(start)
	case string:
		start, ok := sibling.Interface().(string)
		if !ok {
			return false
		}
		if value == "" || start == "" {
			return true
		}
		return value > start
	default:
		return false
	}
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

package chrono

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// ErrNotPointer is returned by SetConfigFromEnvVars when the target is not a pointer to a struct.
var ErrNotPointer = errors.New("config target must be a non-nil pointer to a struct")

// ErrUnsupportedField is returned by SetConfigFromEnvVars for tagged fields of an unsupported kind.
var ErrUnsupportedField = errors.New("unsupported config field kind")

// ErrInvalidEnvValue is returned by SetConfigFromEnvVars when a set variable does not parse as its field's kind.
var ErrInvalidEnvValue = errors.New("invalid environment value")

// EnvProduction is the ENV_NAME value that switches helpers into production behaviour.
const EnvProduction = "production"

// GetenvOrDefault returns the trimmed value of key, or defaultValue when it is unset or blank.
func GetenvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	return value
}

// GetenvBoolOrDefault parses key with strconv.ParseBool, returning defaultValue when it is unset or invalid.
func GetenvBoolOrDefault(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return defaultValue
	}

	return value
}

// GetenvIntOrDefault parses key as a base-10 int64, returning defaultValue when it is unset or invalid.
func GetenvIntOrDefault(key string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(os.Getenv(key)), 10, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

// IsProduction reports whether ENV_NAME is "production".
func IsProduction() bool {
	return strings.EqualFold(GetenvOrDefault("ENV_NAME", ""), EnvProduction)
}

// SetConfigFromEnvVars fills every field tagged `env:"NAME"` from the environment.
// Unset or blank variables leave the field at its zero value. A set bool or
// integer variable that does not parse returns ErrInvalidEnvValue. Supported
// kinds are string, bool and signed integers.
func SetConfigFromEnvVars(s any) error {
	v := reflect.ValueOf(s)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrNotPointer
	}

	elem := v.Elem()
	typ := elem.Type()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		key, ok := field.Tag.Lookup("env")
		if !ok || key == "" || !field.IsExported() {
			continue
		}

		target := elem.Field(i)
		raw := GetenvOrDefault(key, "")

		switch target.Kind() {
		case reflect.String:
			target.SetString(raw)
		case reflect.Bool:
			if raw == "" {
				target.SetBool(false)
				continue
			}

			value, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("%w: %s=%q is not a bool: %w", ErrInvalidEnvValue, key, raw, err)
			}

			target.SetBool(value)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if raw == "" {
				target.SetInt(0)
				continue
			}

			value, err := strconv.ParseInt(raw, 10, target.Type().Bits())
			if err != nil {
				return fmt.Errorf("%w: %s=%q is not an integer: %w", ErrInvalidEnvValue, key, raw, err)
			}

			target.SetInt(value)
		default:
			return fmt.Errorf("%w: %s (%s)", ErrUnsupportedField, field.Name, target.Kind())
		}
	}

	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// maxBuiltinNumFmt is the highest built-in excel number format id.
const maxBuiltinNumFmt = 163

// ErrEngineCredentials is returned by RequireEngine when a credential is unset.
var ErrEngineCredentials = errors.New("engine credentials are not configured")

// Load reads configuration from environment variables.
// It applies defaults for unset values and validates the result.
func Load() (*Config, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom is Load with a custom variable lookup, used by tests.
func LoadFrom(lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem(), lookup); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// loadStruct recursively populates struct fields from environment variables.
// Every invalid value is reported, not only the first.
func loadStruct(v reflect.Value, lookup func(string) (string, bool)) error {
	t := v.Type()
	var errs []error

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			if err := loadStruct(fieldVal, lookup); err != nil {
				errs = append(errs, err)
			}
			continue
		}

		envName := field.Tag.Get("env")
		if envName == "" {
			continue
		}

		value, _ := lookup(envName)
		if value == "" {
			if alt := field.Tag.Get("envAlt"); alt != "" {
				value, _ = lookup(alt)
			}
		}
		if value == "" {
			if field.Tag.Get("required") == "true" {
				errs = append(errs, fmt.Errorf("required environment variable %s is not set", envName))
				continue
			}
			value = field.Tag.Get("default")
		}
		if value == "" {
			continue
		}

		if err := setField(fieldVal, strings.TrimSpace(value)); err != nil {
			errs = append(errs, fmt.Errorf("invalid value for %s=%q: %w", envName, value, err))
		}
	}

	return errors.Join(errs...)
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		field.SetInt(i)

	case reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid number: %w", err)
		}
		field.SetFloat(f)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if c.Wire.Xmlns == "" {
		errs = append(errs, "PILEX_WIRE_XMLNS must not be empty")
	}
	if c.Wire.XmlnsI == "" {
		errs = append(errs, "PILEX_WIRE_XMLNS_I must not be empty")
	}

	if c.Sheet.NumberFormat < 0 || c.Sheet.NumberFormat > maxBuiltinNumFmt {
		errs = append(errs, fmt.Sprintf("PILEX_SHEET_NUMBER_FORMAT (%d) must be a built-in format id 0-%d",
			c.Sheet.NumberFormat, maxBuiltinNumFmt))
	}

	if c.Engine.UserKeyHorizontal != "" && c.Engine.UserKey == "" {
		errs = append(errs, "PILEX_ENGINE_USER_KEY_HORIZONTAL is set but PILEX_ENGINE_USER_KEY is empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// RequireEngine reports which engine credentials are missing. Only commands
// that build request documents need them.
func (c *EngineConfig) RequireEngine() error {
	var missing []string
	if c.UserMail == "" {
		missing = append(missing, "PILEX_ENGINE_USER_MAIL")
	}
	if c.UserKey == "" {
		missing = append(missing, "PILEX_ENGINE_USER_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: set %s", ErrEngineCredentials, strings.Join(missing, ", "))
	}
	return nil
}

// String returns a safe string representation of the config for logging.
// License keys are masked.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Engine: {UserMail: %q, UserKey: %s, UserKeyHorizontal: %s}, ",
		c.Engine.UserMail, mask(c.Engine.UserKey), mask(c.Engine.UserKeyHorizontal)))
	b.WriteString(fmt.Sprintf("Wire: {Xmlns: %q, XmlnsI: %q}, ", c.Wire.Xmlns, c.Wire.XmlnsI))
	b.WriteString(fmt.Sprintf("Company: {ImageDir: %q}, ", c.Company.ImageDir))
	b.WriteString(fmt.Sprintf("Sheet: {NumberFormat: %d}, ", c.Sheet.NumberFormat))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}",
		c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}

func mask(s string) string {
	if s == "" {
		return `""`
	}
	return "[MASKED]"
}

package config

import (
	"errors"
	"strings"
	"testing"
)

// env returns a lookup over a fixed set of variables.
func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func validConfig() *Config {
	return &Config{
		Wire:    WireConfig{Xmlns: "urn:a", XmlnsI: "urn:b"},
		Sheet:   SheetConfig{NumberFormat: 2},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(env(nil))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Wire.Xmlns != "http://schemas.datacontract.org/2004/07/DHPD" {
		t.Errorf("Wire.Xmlns = %q", cfg.Wire.Xmlns)
	}
	if cfg.Wire.XmlnsI != "http://www.w3.org/2001/XMLSchema-instance" {
		t.Errorf("Wire.XmlnsI = %q", cfg.Wire.XmlnsI)
	}
	if cfg.Sheet.NumberFormat != 2 {
		t.Errorf("Sheet.NumberFormat = %d, want %d", cfg.Sheet.NumberFormat, 2)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v, want info/text", cfg.Logging)
	}
	if cfg.Engine.UserKey != "" {
		t.Errorf("Engine.UserKey = %q, want empty", cfg.Engine.UserKey)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	cfg, err := LoadFrom(env(map[string]string{
		"PILEX_ENGINE_USER_MAIL":    "calc@example.com",
		"PILEX_ENGINE_USER_KEY":     "k-123",
		"PILEX_SHEET_NUMBER_FORMAT": "4",
		"LOG_LEVEL":                 "debug",
	}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Engine.UserMail != "calc@example.com" {
		t.Errorf("Engine.UserMail = %q", cfg.Engine.UserMail)
	}
	if cfg.Sheet.NumberFormat != 4 {
		t.Errorf("Sheet.NumberFormat = %d, want %d", cfg.Sheet.NumberFormat, 4)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	cfg, err := LoadFrom(env(map[string]string{
		"WINDOW_SERVER_IMAGES_DIRECTORY": `C:\images\`,
	}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Company.ImageDir != `C:\images\` {
		t.Errorf("Company.ImageDir = %q", cfg.Company.ImageDir)
	}
}

func TestLoad_ReportsEveryInvalidValue(t *testing.T) {
	_, err := LoadFrom(env(map[string]string{
		"PILEX_SHEET_NUMBER_FORMAT": "two",
		"LOG_LEVEL":                 "verbose",
	}))
	if err == nil {
		t.Fatal("LoadFrom() expected error")
	}
	if !strings.Contains(err.Error(), "PILEX_SHEET_NUMBER_FORMAT") {
		t.Errorf("error should mention PILEX_SHEET_NUMBER_FORMAT: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"number format", func(c *Config) { c.Sheet.NumberFormat = 200 }, "PILEX_SHEET_NUMBER_FORMAT"},
		{"empty namespace", func(c *Config) { c.Wire.Xmlns = "" }, "PILEX_WIRE_XMLNS"},
		{"horizontal key alone", func(c *Config) { c.Engine.UserKeyHorizontal = "h" }, "PILEX_ENGINE_USER_KEY"},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error should mention %s: %v", tt.wantErr, err)
			}
		})
	}
}

func TestRequireEngine(t *testing.T) {
	cfg := &EngineConfig{UserMail: "calc@example.com"}
	err := cfg.RequireEngine()
	if !errors.Is(err, ErrEngineCredentials) {
		t.Fatalf("RequireEngine() = %v, want ErrEngineCredentials", err)
	}
	if !strings.Contains(err.Error(), "PILEX_ENGINE_USER_KEY") || strings.Contains(err.Error(), "USER_MAIL") {
		t.Errorf("RequireEngine() should list only the missing key: %v", err)
	}

	cfg.UserKey = "k"
	if err := cfg.RequireEngine(); err != nil {
		t.Errorf("RequireEngine() error = %v", err)
	}
}

func TestConfigString_MasksKeys(t *testing.T) {
	cfg := validConfig()
	cfg.Engine = EngineConfig{UserMail: "calc@example.com", UserKey: "secret-key", UserKeyHorizontal: "other-secret"}

	str := cfg.String()
	if strings.Contains(str, "secret") {
		t.Error("String() should mask engine keys")
	}
	if !strings.Contains(str, "MASKED") {
		t.Error("String() should contain MASKED placeholder")
	}
	if !strings.Contains(str, "calc@example.com") {
		t.Error("String() should show the engine account")
	}
}

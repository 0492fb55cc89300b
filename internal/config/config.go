// Package config provides centralized configuration management for the
// command line tool. It loads configuration from environment variables
// (optionally seeded from a .env file) with sensible defaults and validates
// all settings up front so a misconfigured run fails before any file is
// touched.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Engine  EngineConfig
	Wire    WireConfig
	Company CompanyConfig
	Sheet   SheetConfig
	Logging LoggingConfig
}

// EngineConfig holds the calculation engine credentials written into every
// request document.
type EngineConfig struct {
	// UserMail is the account the engine bills the calculation to
	UserMail string `env:"PILEX_ENGINE_USER_MAIL"`

	// UserKey is the license key for the axial calculation
	UserKey string `env:"PILEX_ENGINE_USER_KEY"`

	// UserKeyHorizontal is the license key for the horizontal calculation
	UserKeyHorizontal string `env:"PILEX_ENGINE_USER_KEY_HORIZONTAL"`
}

// WireConfig holds the namespaces of the request root element.
type WireConfig struct {
	Xmlns  string `env:"PILEX_WIRE_XMLNS" default:"http://schemas.datacontract.org/2004/07/DHPD"`
	XmlnsI string `env:"PILEX_WIRE_XMLNS_I" default:"http://www.w3.org/2001/XMLSchema-instance"`
}

// CompanyConfig holds settings for the company block of a request.
type CompanyConfig struct {
	// ImageDir is prefixed to the company logo file name, it is the path the
	// engine host reads logos from
	ImageDir string `env:"PILEX_IMAGE_DIR" envAlt:"WINDOW_SERVER_IMAGES_DIRECTORY"`
}

// SheetConfig holds spreadsheet export settings.
type SheetConfig struct {
	// NumberFormat is the built-in excel number format of numeric columns (default: 2, "0.00")
	NumberFormat int `env:"PILEX_SHEET_NUMBER_FORMAT" default:"2"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

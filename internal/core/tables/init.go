// Package tables registers the DHPD mapping tables with the core registry.
// Import this package to ensure all tables are registered.
package tables

// Table groups.
const (
	GroupInput  = "input"
	GroupOutput = "output"
)

func init() {
	registerInputTables()
	registerOutputTables()
}

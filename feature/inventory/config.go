package inventory

// Config holds configuration for the master inventory.
type Config struct {
	// SeedDemo loads the built-in demo stock at startup.
	SeedDemo bool `mapstructure:"seed_demo" default:"false"`
	// ImportPrefix is the object prefix listed for CSV uploads.
	ImportPrefix string `mapstructure:"import_prefix" default:"imports/"`
	// StartupObject is imported from object storage at startup when set.
	StartupObject string `mapstructure:"startup_object" default:""`
}

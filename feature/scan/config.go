package scan

// Config holds configuration for scan sessions.
type Config struct {
	// HistoryLimit caps stored history entries; 0 keeps every entry.
	HistoryLimit int `mapstructure:"history_limit" default:"0"`
}

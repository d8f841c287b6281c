package export

// Config holds configuration for report exports.
type Config struct {
	// Dir is where the file sink writes reports.
	Dir string `mapstructure:"dir" default:"exports"`
	// Prefix is prepended to object names written by the object sink.
	Prefix string `mapstructure:"prefix" default:"reports/"`
	// CacheSize is the number of rendered reports kept in memory.
	CacheSize int `mapstructure:"cache_size" default:"64"`
	// CacheTTLSeconds is how long a rendered report stays cached.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"600"`
}

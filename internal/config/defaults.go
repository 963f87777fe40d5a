package config

const (
	defaultLogLevel             = "info"
	defaultLogFormat            = "console"
	defaultSearchBaseURL        = "https://duckduckgo.com"
	defaultSearchTimeoutSeconds = 15
	defaultCachePath            = "~/.cache/recipeconv/images.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Search: Search{
			BaseURL:        defaultSearchBaseURL,
			TimeoutSeconds: defaultSearchTimeoutSeconds,
		},
		Cache: Cache{
			Enabled: true,
			Path:    defaultCachePath,
		},
	}
}

package config

// Default values applied when the configuration file omits a setting.
const (
	DefaultCatalogPath  = "~/.local/share/crtracker/episodes.csv"
	DefaultCacheDir     = "~/.cache/crtracker"
	DefaultLogDir       = "~/.local/share/crtracker/logs"
	DefaultConfigPath   = "~/.config/crtracker/config.toml"
	DefaultUserAgent    = "crtracker/1.0 (episode schedule tracker)"
	DefaultTimeout      = 30
	DefaultRequestDelay = 1500
	DefaultCacheMaxAge  = 7
	DefaultStartDate    = "2024-05-06"

	DefaultEpisodeListURL = "https://criticalrole.fandom.com/wiki/List_of_episodes"
	DefaultWikiBaseURL    = "https://criticalrole.fandom.com"

	DefaultPlaceholderPattern = `^Campaign \d+ Episode \d+$`

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Default returns a fully populated configuration using built-in defaults.
func Default() *Config {
	return &Config{
		Paths: Paths{
			CatalogPath: DefaultCatalogPath,
			CacheDir:    DefaultCacheDir,
			LogDir:      DefaultLogDir,
		},
		Fetch: Fetch{
			UserAgent:       DefaultUserAgent,
			TimeoutSeconds:  DefaultTimeout,
			RequestDelayMS:  DefaultRequestDelay,
			CacheEnabled:    true,
			CacheMaxAgeDays: DefaultCacheMaxAge,
			StartDate:       DefaultStartDate,
		},
		Wiki: Wiki{
			EpisodeListURL: DefaultEpisodeListURL,
			BaseURL:        DefaultWikiBaseURL,
		},
		Merge: Merge{
			PlaceholderPattern: DefaultPlaceholderPattern,
		},
		Logging: Logging{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

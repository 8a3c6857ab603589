package config

const (
	defaultDataDir         = "~/.local/share/waxcrate"
	defaultLogDir          = "~/.local/share/waxcrate/logs"
	defaultDiscogsBaseURL  = "https://api.discogs.com"
	defaultSpotifyTokenURL = "https://accounts.spotify.com/api/token"
	defaultSpotifyBaseURL  = "https://api.spotify.com/v1"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultShareTimeout    = 10
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Discogs: Discogs{
			BaseURL: defaultDiscogsBaseURL,
		},
		Spotify: Spotify{
			TokenURL: defaultSpotifyTokenURL,
			BaseURL:  defaultSpotifyBaseURL,
		},
		Share: Share{
			RequestTimeout: defaultShareTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

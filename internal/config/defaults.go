package config

const (
	defaultDataDir        = "~/.local/share/watchlog"
	defaultLogDir         = "~/.local/share/watchlog/logs"
	defaultBind           = "127.0.0.1:8337"
	defaultTVMazeBaseURL  = "https://api.tvmaze.com"
	defaultTVMazeCacheDir = "~/.local/share/watchlog/cache/tvmaze"
	defaultTVMazeTimeout  = 30
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			Bind:    defaultBind,
		},
		TVMaze: TVMaze{
			BaseURL:        defaultTVMazeBaseURL,
			CacheDir:       defaultTVMazeCacheDir,
			RequestTimeout: defaultTVMazeTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

package domain

// Config represents the application configuration
type Config struct {
	Downloader   DownloaderConfig   `mapstructure:"downloader"`
	Output       OutputConfig       `mapstructure:"output"`
	Batch        BatchConfig        `mapstructure:"batch"`
	Notification NotificationConfig `mapstructure:"notification"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// DownloaderConfig configures the external resolver/downloader binary
type DownloaderConfig struct {
	Binary string `mapstructure:"binary"`
}

// OutputConfig contains output-related configuration
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// BatchConfig contains batch-processing configuration
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// NotificationConfig contains notification-related configuration
type NotificationConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Method  string `mapstructure:"method"` // osascript, notify-send
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, or file path
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Downloader: DownloaderConfig{
			Binary: "yt-dlp",
		},
		Output: OutputConfig{
			Dir: "downloads",
		},
		Batch: BatchConfig{
			Concurrency: 1,
		},
		Notification: NotificationConfig{
			Enabled: false,
			Method:  "notify-send",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stderr",
		},
	}
}

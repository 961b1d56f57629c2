package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RedditConfig controls the activity fetcher.
type RedditConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	UserAgent    string `mapstructure:"user_agent"`
	CommentLimit int    `mapstructure:"comment_limit"`
	PostLimit    int    `mapstructure:"post_limit"`
	FetchRetries int    `mapstructure:"fetch_retries"`
}

// OpenAIConfig enables the optional persona narrative when an API key
// is set.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// PersonasConfig controls report generation and watch mode.
type PersonasConfig struct {
	OutputDir     string `mapstructure:"output_dir"`
	Watchlist     string `mapstructure:"watchlist"`      // path to a YAML username list
	WatchInterval string `mapstructure:"watch_interval"` // duration string, e.g., "24h"
	CacheActivity bool   `mapstructure:"cache_activity"` // cache fetched activity in redis
	CacheTTL      string `mapstructure:"cache_ttl"`      // duration string, e.g., "1h"
}

// Config is the top-level configuration structure.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Reddit   RedditConfig   `mapstructure:"reddit"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Personas PersonasConfig `mapstructure:"personas"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Reddit.BaseURL == "" {
		c.Reddit.BaseURL = "https://www.reddit.com"
	}
	if c.Reddit.UserAgent == "" {
		c.Reddit.UserAgent = "reddit-persona/0.1 (persona report generator)"
	}
	if c.Reddit.CommentLimit == 0 {
		c.Reddit.CommentLimit = 100
	}
	if c.Reddit.PostLimit == 0 {
		c.Reddit.PostLimit = 50
	}
	if c.Reddit.FetchRetries == 0 {
		c.Reddit.FetchRetries = 3
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Personas.OutputDir == "" {
		c.Personas.OutputDir = "."
	}
	if c.Personas.WatchInterval == "" {
		c.Personas.WatchInterval = "24h"
	}
	if c.Personas.CacheTTL == "" {
		c.Personas.CacheTTL = "1h"
	}
}

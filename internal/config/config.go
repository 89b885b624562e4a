package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DataDir string       `mapstructure:"data_dir"`
	DBName  string       `mapstructure:"db_name"`
	GitHub  GitHubConfig `mapstructure:"github"`
	LLM     LLMConfig    `mapstructure:"llm"`
	Reader  ReaderConfig `mapstructure:"reader"`
	Log     LogConfig    `mapstructure:"log"`
}

type GitHubConfig struct {
	APIURL  string        `mapstructure:"api_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	PerPage int           `mapstructure:"per_page"`
}

type LLMConfig struct {
	Provider string            `mapstructure:"provider"`
	Model    string            `mapstructure:"model"`
	BaseURL  string            `mapstructure:"base_url"`
	Headers  map[string]string `mapstructure:"headers"`
	Prompt   string            `mapstructure:"prompt"`
}

type ReaderConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads configuration from defaults, an optional config.yaml in the
// data directory and BARK_* environment variables. A non-empty dataDir wins
// over all of them.
func Load(dataDir string) (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	defaultDataDir := filepath.Join(homeDir, ".bark")

	v := viper.New()
	v.SetDefault("data_dir", defaultDataDir)
	v.SetDefault("db_name", "bookmarks.db")
	v.SetDefault("github.api_url", "https://api.github.com")
	v.SetDefault("github.timeout", 30*time.Second)
	v.SetDefault("github.per_page", 100)
	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.model", "claude-3-5-haiku-latest")
	v.SetDefault("reader.url", "https://r.jina.ai/")
	v.SetDefault("reader.timeout", 30*time.Second)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "bark.log")

	// Environment variable overrides
	v.SetEnvPrefix("BARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Keys without a default are invisible to AutomaticEnv during Unmarshal.
	v.BindEnv("llm.base_url")
	v.BindEnv("llm.prompt")

	if dataDir != "" {
		v.Set("data_dir", dataDir)
	}

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(v.GetString("data_dir"))

	// Read config file if exists (ignore error if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	// Ensure data directory exists
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBName)
}

// LogPath returns the log file location. Relative names live in the data dir.
func (c *Config) LogPath() string {
	if c.Log.File == "" || filepath.IsAbs(c.Log.File) {
		return c.Log.File
	}
	return filepath.Join(c.DataDir, c.Log.File)
}

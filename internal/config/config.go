// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/xkilldash9x/codeagent/internal/apperr"
)

// LLMProvider names a supported text generation backend.
type LLMProvider string

const (
	ProviderGemini LLMProvider = "gemini"
)

// Temperature is the sampling temperature used for every request. It is not
// configurable.
const Temperature float32 = 0.7

// Config holds the entire application configuration. It is loaded once at startup
// and passed by value from then on.
type Config struct {
	LLM    LLMConfig    `mapstructure:"llm" yaml:"llm"`
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug string `mapstructure:"debug" yaml:"debug"`
	Info  string `mapstructure:"info" yaml:"info"`
	Warn  string `mapstructure:"warn" yaml:"warn"`
	Error string `mapstructure:"error" yaml:"error"`
}

// LLMConfig defines the model and limits used for generation.
type LLMConfig struct {
	Provider   LLMProvider   `mapstructure:"provider" yaml:"provider"`
	Model      string        `mapstructure:"model" yaml:"model"`
	APIKey     string        `mapstructure:"api_key" yaml:"api_key"`
	Endpoint   string        `mapstructure:"endpoint" yaml:"endpoint"`
	APITimeout time.Duration `mapstructure:"api_timeout" yaml:"api_timeout"`
	MaxTokens  int           `mapstructure:"max_tokens" yaml:"max_tokens"`
}

// envBindings maps config keys onto the environment variables that may set them,
// in priority order. The unprefixed names are the ones users put in their .env file.
var envBindings = map[string][]string{
	"llm.api_key":    {"CODEAGENT_LLM_API_KEY", "GOOGLE_AI_API_KEY"},
	"llm.max_tokens": {"CODEAGENT_LLM_MAX_TOKENS", "MAX_TOKENS"},
	"llm.model":      {"CODEAGENT_LLM_MODEL", "GEMINI_MODEL"},
	"logger.level":   {"CODEAGENT_LOGGER_LEVEL", "LOG_LEVEL"},
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "INFO")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "codeagent")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")

	// -- LLM --
	v.SetDefault("llm.provider", string(ProviderGemini))
	v.SetDefault("llm.model", "gemini-1.5-flash")
	v.SetDefault("llm.api_timeout", "60s")
	v.SetDefault("llm.max_tokens", 1000)
}

// Load assembles the configuration from, lowest precedence first: defaults, the YAML
// config file, a .env file in the working directory, and the process environment.
// A missing config file or .env file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".codeagent"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, apperr.Wrap(apperr.ConfigurationError, fmt.Sprintf("error reading config file: %v", err), err)
		}
	}

	if err := mergeDotEnv(v, ".env"); err != nil {
		return nil, err
	}

	return NewConfigFromViper(v)
}

// mergeDotEnv copies values from a dotenv file into v for every binding whose
// environment variables are unset, so the real environment keeps precedence.
func mergeDotEnv(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	dotenv := viper.New()
	dotenv.SetConfigFile(path)
	dotenv.SetConfigType("env")
	if err := dotenv.ReadInConfig(); err != nil {
		return apperr.Wrap(apperr.ConfigurationError, fmt.Sprintf("error reading %s: %v", path, err), err)
	}

	for key, names := range envBindings {
		if envSet(names) {
			continue
		}
		for _, name := range names {
			if val := dotenv.GetString(strings.ToLower(name)); val != "" {
				v.Set(key, val)
				break
			}
		}
	}
	return nil
}

func envSet(names []string) bool {
	for _, name := range names {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config

	for key, names := range envBindings {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return nil, apperr.Wrap(apperr.ConfigurationError, fmt.Sprintf("binding %s: %v", key, err), err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperr.Wrap(apperr.ConfigurationError, fmt.Sprintf("error unmarshaling config: %v", err), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if err := c.LLM.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks the LLM configuration.
func (l *LLMConfig) Validate() error {
	if strings.TrimSpace(l.APIKey) == "" {
		return apperr.New(apperr.ConfigurationError, "GOOGLE_AI_API_KEY is required. Please set it in your .env file.")
	}
	if l.MaxTokens <= 0 {
		return apperr.Newf(apperr.ConfigurationError, "max_tokens must be a positive integer, got %d", l.MaxTokens)
	}
	// The API takes a 32-bit limit.
	if l.MaxTokens > math.MaxInt32 {
		return apperr.Newf(apperr.ConfigurationError, "max_tokens must not exceed %d, got %d", math.MaxInt32, l.MaxTokens)
	}
	if l.APITimeout < 0 {
		return apperr.New(apperr.ConfigurationError, "api_timeout must not be negative")
	}
	return nil
}

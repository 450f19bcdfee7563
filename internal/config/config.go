package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/Totarae/googl/client"
	"github.com/Totarae/googl/transport"
)

// EnvPrefix префикс переменных окружения.
const EnvPrefix = "GOOGL"

// Config хранит конфигурацию CLI
type Config struct {
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	LogLevel string        `mapstructure:"log_level"`
}

// NewConfig собирает конфигурацию: значения по умолчанию, JSON-файл,
// переменные окружения GOOGL_*, флаги. Каждый следующий источник
// переопределяет предыдущий. Возвращает позиционные аргументы.
func NewConfig(args []string) (*Config, []string, error) {
	v := viper.New()
	v.SetDefault("api_key", "")
	v.SetDefault("base_url", client.DefaultBaseURL)
	v.SetDefault("timeout", transport.DefaultTimeout)
	v.SetDefault("log_level", "info")

	// GOOGL_API_KEY, GOOGL_BASE_URL, GOOGL_TIMEOUT, GOOGL_LOG_LEVEL;
	// пустые переменные считаются незаданными
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindEnv("config", "CONFIG"); err != nil {
		return nil, nil, fmt.Errorf("bind CONFIG: %w", err)
	}

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	apiKey := fs.String("k", "", "API key")
	baseURL := fs.String("b", "", "API base URL")
	timeout := fs.Duration("t", 0, "HTTP timeout")
	logLevel := fs.String("l", "", "log level (debug, info, warn, error)")
	configPath := fs.String("c", "", "path to JSON config file")
	fs.StringVar(configPath, "config", "", "path to JSON config file")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("parse flags: %w", err)
	}

	// Файл конфигурации: флаг или переменная CONFIG
	if *configPath == "" {
		*configPath = v.GetString("config")
	}
	if *configPath != "" {
		v.SetConfigFile(*configPath)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("read config file %q: %w", *configPath, err)
		}
	}

	// Флаги имеют наивысший приоритет
	if *apiKey != "" {
		v.Set("api_key", *apiKey)
	}
	if *baseURL != "" {
		v.Set("base_url", *baseURL)
	}
	if *timeout != 0 {
		v.Set("timeout", *timeout)
	}
	if *logLevel != "" {
		v.Set("log_level", *logLevel)
	}

	cfg := &Config{
		APIKey:   v.GetString("api_key"),
		BaseURL:  v.GetString("base_url"),
		Timeout:  v.GetDuration("timeout"),
		LogLevel: v.GetString("log_level"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}

// Validate проверяет корректность конфигурации. Наличие ключа проверяет клиент.
func (cfg *Config) Validate() error {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base URL %q must be an absolute URL", cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

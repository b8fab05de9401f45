package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"

	NewsProviderNewsAPI = "newsapi"
	NewsProviderFinnhub = "finnhub"
)

type Config struct {
	LLM     LLM     `mapstructure:"llm"`
	News    News    `mapstructure:"news"`
	Search  Search  `mapstructure:"search"`
	Email   Email   `mapstructure:"email"`
	Server  Server  `mapstructure:"server"`
	Logging Logging `mapstructure:"logging"`
}

type LLM struct {
	Provider     string        `mapstructure:"provider"`
	APIKey       string        `mapstructure:"api_key"`
	AnthropicKey string        `mapstructure:"anthropic_key"`
	BaseURL      string        `mapstructure:"base_url"` // empty selects the provider default
	Model        string        `mapstructure:"model"`    // empty selects the provider default
	Temperature  float64       `mapstructure:"temperature"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type News struct {
	Provider   string `mapstructure:"provider"`
	NewsAPIKey string `mapstructure:"newsapi_key"`
	FinnhubKey string `mapstructure:"finnhub_key"`
}

type Search struct {
	SerpAPIKey string `mapstructure:"serpapi_key"`
}

type Email struct {
	ResendKey string `mapstructure:"resend_key"`
	From      string `mapstructure:"from"`
}

type Server struct {
	Port        string `mapstructure:"port"`
	FrontendURL string `mapstructure:"frontend_url"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

// envKeys maps config keys to the environment variables that may set them,
// in order of preference.
var envKeys = map[string][]string{
	"llm.provider":        {"LLM_PROVIDER"},
	"llm.api_key":         {"OPENROUTER_API_KEY"},
	"llm.anthropic_key":   {"ANTHROPIC_API_KEY"},
	"llm.base_url":        {"LLM_BASE_URL"},
	"llm.model":           {"LLM_MODEL"},
	"llm.temperature":     {"LLM_TEMPERATURE"},
	"llm.timeout":         {"LLM_TIMEOUT"},
	"news.provider":       {"NEWS_PROVIDER"},
	"news.newsapi_key":    {"NEWS_API_KEY"},
	"news.finnhub_key":    {"FINNHUB_API_KEY"},
	"search.serpapi_key":  {"SERPAPI_KEY", "SERPAPI_API_KEY"},
	"email.resend_key":    {"RESEND_API_KEY"},
	"email.from":          {"RESEND_FROM"},
	"server.port":         {"PORT"},
	"server.frontend_url": {"FRONTEND_URL"},
	"logging.level":       {"LOG_LEVEL"},
}

// Load reads an optional .env file and the process environment.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			slog.Warn("error loading .env file", "error", err)
		}
	}

	v := viper.New()
	setDefaults(v)

	for key, names := range envKeys {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	cfg.News.Provider = strings.ToLower(strings.TrimSpace(cfg.News.Provider))

	if err := cfg.check(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("llm.provider", ProviderOpenRouter)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.timeout", "60s")

	v.SetDefault("news.provider", NewsProviderNewsAPI)

	v.SetDefault("email.from", "onboarding@resend.dev")

	v.SetDefault("server.port", "8001")
	v.SetDefault("server.frontend_url", "*")

	v.SetDefault("logging.level", "info")
}

// check rejects values the server cannot start with.
func (c *Config) check() error {
	var errs []string

	switch c.LLM.Provider {
	case ProviderOpenRouter, ProviderAnthropic:
	default:
		errs = append(errs, fmt.Sprintf("unknown LLM provider: %s. Supported: %s, %s", c.LLM.Provider, ProviderOpenRouter, ProviderAnthropic))
	}

	switch c.News.Provider {
	case NewsProviderNewsAPI, NewsProviderFinnhub:
	default:
		errs = append(errs, fmt.Sprintf("unknown news provider: %s. Supported: %s, %s", c.News.Provider, NewsProviderNewsAPI, NewsProviderFinnhub))
	}

	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		errs = append(errs, fmt.Sprintf("LLM temperature out of range: %v", c.LLM.Temperature))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Validate returns a warning for each missing credential. Requests that need
// the credential still run and degrade as their upstream fails.
func (c *Config) Validate() []string {
	var warnings []string

	switch c.LLM.Provider {
	case ProviderAnthropic:
		if c.LLM.AnthropicKey == "" {
			warnings = append(warnings, "ANTHROPIC_API_KEY is not set; generation will fail")
		}
	default:
		if c.LLM.APIKey == "" {
			warnings = append(warnings, "OPENROUTER_API_KEY is not set; generation will fail")
		}
	}

	switch c.News.Provider {
	case NewsProviderFinnhub:
		if c.News.FinnhubKey == "" {
			warnings = append(warnings, "FINNHUB_API_KEY is not set; news will be empty")
		}
	default:
		if c.News.NewsAPIKey == "" {
			warnings = append(warnings, "NEWS_API_KEY is not set; news will be empty")
		}
	}

	if c.Search.SerpAPIKey == "" {
		warnings = append(warnings, "SERPAPI_KEY is not set; company and person enrichment disabled")
	}

	if c.Email.ResendKey == "" {
		warnings = append(warnings, "RESEND_API_KEY is not set; email sending disabled")
	}

	return warnings
}

// SlogLevel maps the configured level name, defaulting to info.
func (l Logging) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

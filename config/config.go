// Package config loads the storefront server's configuration from a .env
// file, the environment and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Server timeouts.
const (
	// ReadHeader limits how long the server waits for request headers.
	ReadHeader = 5 * time.Second
	// Idle limits how long keep-alive connections stay open between requests.
	Idle = 60 * time.Second
	// Shutdown limits how long in-flight requests may run during graceful
	// shutdown.
	Shutdown = 10 * time.Second
)

// Render modes.
const (
	ModeStream   = "stream"
	ModeFragment = "fragment"
)

// Config is the server configuration.
type Config struct {
	Addr       string `env:"HXSHOP_ADDR" envDefault:":8080"`
	StaticDir  string `env:"HXSHOP_STATIC_DIR" envDefault:"static"`
	RenderMode string `env:"HXSHOP_RENDER_MODE" envDefault:"stream"`
	// Secret signs region tokens. A random key is generated when empty,
	// which invalidates tokens across restarts.
	Secret string `env:"HXSHOP_SECRET"`

	LogLevel  slog.Level `env:"HXSHOP_LOG_LEVEL" envDefault:"info"`
	LogFormat string     `env:"HXSHOP_LOG_FORMAT" envDefault:"json"`

	Storefront Storefront
	Home       Home
}

// Storefront configures the commerce platform client.
type Storefront struct {
	Domain     string  `env:"HXSHOP_STORE_DOMAIN,required"`
	Token      string  `env:"HXSHOP_STOREFRONT_TOKEN,required"`
	APIVersion string  `env:"HXSHOP_API_VERSION" envDefault:"2024-10"`
	RateLimit  float64 `env:"HXSHOP_RATE_LIMIT" envDefault:"20"`
}

// Home configures the home page content.
type Home struct {
	Collection      string `env:"HXSHOP_HOME_COLLECTION" envDefault:"show-on-home-page"`
	ProductsLimit   int    `env:"HXSHOP_HOME_PRODUCTS_LIMIT" envDefault:"50"`
	HeroHandle      string `env:"HXSHOP_HERO_HANDLE" envDefault:"newest-release-information-qs5zqkx4"`
	HeroType        string `env:"HXSHOP_HERO_TYPE" envDefault:"newest_release_information"`
	CuratedHandle   string `env:"HXSHOP_CURATED_HANDLE" envDefault:"produced-by-omega-playlist-rntw8mza"`
	CuratedType     string `env:"HXSHOP_CURATED_TYPE" envDefault:"produced_by_omega_playlist"`
	DefaultCountry  string `env:"HXSHOP_DEFAULT_COUNTRY" envDefault:"US"`
	DefaultLanguage string `env:"HXSHOP_DEFAULT_LANGUAGE" envDefault:"EN"`
}

// Load reads configuration for a process started with args (without the
// program name). A missing .env file is not an error.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.parseFlags(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) parseFlags(args []string) error {
	fs := pflag.NewFlagSet("hxshop", pflag.ContinueOnError)
	fs.StringVar(&c.Addr, "addr", c.Addr, "HTTP listen address")
	fs.StringVar(&c.RenderMode, "render-mode", c.RenderMode, "deferred region delivery: stream or fragment")
	fs.StringVar(&c.StaticDir, "static", c.StaticDir, "static assets directory")
	level := fs.String("log-level", c.LogLevel.String(), "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if err := c.LogLevel.UnmarshalText([]byte(*level)); err != nil {
		return fmt.Errorf("parse flags: log-level: %w", err)
	}
	return nil
}

// Validate checks values the parsers cannot.
func (c Config) Validate() error {
	switch c.RenderMode {
	case ModeStream, ModeFragment:
	default:
		return fmt.Errorf("invalid render mode %q: want %s or %s", c.RenderMode, ModeStream, ModeFragment)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q: want json or text", c.LogFormat)
	}
	if c.Home.ProductsLimit <= 0 || c.Home.ProductsLimit > 250 {
		return fmt.Errorf("invalid products limit %d: want 1..250", c.Home.ProductsLimit)
	}
	return nil
}

// Logger builds the process logger described by c.
func (c Config) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if strings.EqualFold(c.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

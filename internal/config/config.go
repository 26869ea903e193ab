package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"folio.dev/internal/media"
	"folio.dev/internal/scrollspy"
	"folio.dev/internal/typewriter"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig      `mapstructure:"server"`
	Content   ContentConfig     `mapstructure:"content"`
	Hero      HeroConfig        `mapstructure:"hero"`
	ScrollSpy scrollspy.Options `mapstructure:"scrollspy"`
	Media     MediaConfig       `mapstructure:"media"`
}

// ServerConfig holds HTTP settings
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	StaticDir       string        `mapstructure:"static_dir"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ContentConfig says where the author data lives
type ContentConfig struct {
	Dir   string `mapstructure:"dir"`
	Watch bool   `mapstructure:"watch"`
}

// HeroConfig holds hero section animation settings
type HeroConfig struct {
	TypeInterval time.Duration `mapstructure:"type_interval"`
}

// MediaConfig holds image settings
type MediaConfig struct {
	Placeholder string `mapstructure:"placeholder"`
	ImageDir    string `mapstructure:"image_dir"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			StaticDir:       "static",
			ShutdownTimeout: 5 * time.Second,
		},
		Content: ContentConfig{
			Dir:   "data",
			Watch: true,
		},
		Hero: HeroConfig{
			TypeInterval: typewriter.DefaultInterval,
		},
		ScrollSpy: scrollspy.DefaultOptions(),
		Media: MediaConfig{
			Placeholder: media.Placeholder,
			ImageDir:    "assets/images",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.static_dir", d.Server.StaticDir)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("content.dir", d.Content.Dir)
	v.SetDefault("content.watch", d.Content.Watch)
	v.SetDefault("hero.type_interval", d.Hero.TypeInterval)
	v.SetDefault("scrollspy.threshold", d.ScrollSpy.Threshold)
	v.SetDefault("scrollspy.margin_top", d.ScrollSpy.RootMarginTop)
	v.SetDefault("scrollspy.margin_bottom", d.ScrollSpy.RootMarginBottom)
	v.SetDefault("media.placeholder", d.Media.Placeholder)
	v.SetDefault("media.image_dir", d.Media.ImageDir)
}

// Load reads configuration from a YAML file at path, with FOLIO_*
// environment overrides (FOLIO_SERVER_ADDR, FOLIO_CONTENT_DIR, ...).
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("folio")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			var pathErr *os.PathError
			if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Hero.TypeInterval <= 0 {
		cfg.Hero.TypeInterval = typewriter.DefaultInterval
	}
	return cfg, nil
}

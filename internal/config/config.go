package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration. Immutable after Load.
type Config struct {
	Channel  string       `yaml:"channel"`
	Platform string       `yaml:"platform"` // "twitch" or "kick"
	Twitch   TwitchConfig `yaml:"twitch"`
	Kick     KickConfig   `yaml:"kick"`
	Viewer   ViewerConfig `yaml:"viewer"`
	Badges   BadgesConfig `yaml:"badges"`
}

// TwitchConfig holds Twitch credentials. Both empty means anonymous join.
type TwitchConfig struct {
	Username string `yaml:"username"`
	OAuth    string `yaml:"oauth"`
}

// KickConfig holds Kick-specific configuration.
type KickConfig struct {
	// ChatroomID skips the Kick API lookup when set. Use
	// tools/resolve-kick-channels to find it.
	ChatroomID int `yaml:"chatroom_id"`
}

// ViewerConfig holds display and pipeline tuning.
type ViewerConfig struct {
	BufferSize  int `yaml:"buffer_size"`             // messages kept on screen
	TickMillis  int `yaml:"tick_ms"`                 // redraw period
	EventBuffer int `yaml:"event_buffer"`            // event channel capacity
	InvertBelow int `yaml:"invert_below_brightness"` // 0-255 luminance threshold
}

// BadgeConfig is one badge's rendered symbol and its column width.
type BadgeConfig struct {
	Symbol string `yaml:"symbol"`
	Width  int    `yaml:"width"`
}

// BadgesConfig holds the symbol for each badge kind.
type BadgesConfig struct {
	Moderator  BadgeConfig `yaml:"moderator"`
	VIP        BadgeConfig `yaml:"vip"`
	Subscriber BadgeConfig `yaml:"subscriber"`
	Founder    BadgeConfig `yaml:"founder"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Channel:  "stuck_overflow",
		Platform: "twitch",
		Viewer: ViewerConfig{
			BufferSize:  50,
			TickMillis:  200,
			EventBuffer: 64,
			InvertBelow: 30,
		},
		Badges: BadgesConfig{
			Moderator:  BadgeConfig{Symbol: "🗡 ", Width: 2},
			VIP:        BadgeConfig{Symbol: "💎", Width: 2},
			Subscriber: BadgeConfig{Symbol: "🌟", Width: 2},
			Founder:    BadgeConfig{Symbol: "🥇", Width: 2},
		},
	}
}

// Load resolves the configuration by merging, in increasing precedence:
// built-in defaults, the yaml file at path (skipped when absent), then
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults plus environment only.
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	// Apply environment variable overrides
	if channel := os.Getenv("CHATVIEW_CHANNEL"); channel != "" {
		cfg.Channel = channel
	}
	if platform := os.Getenv("CHATVIEW_PLATFORM"); platform != "" {
		cfg.Platform = platform
	}
	if username := os.Getenv("TWITCH_USERNAME"); username != "" {
		cfg.Twitch.Username = username
	}
	if oauth := os.Getenv("TWITCH_OAUTH"); oauth != "" {
		cfg.Twitch.OAuth = oauth
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Channel == "" {
		return fmt.Errorf("channel is required (or set CHATVIEW_CHANNEL)")
	}
	if c.Platform != "twitch" && c.Platform != "kick" {
		return fmt.Errorf("platform must be \"twitch\" or \"kick\", got %q", c.Platform)
	}
	if c.Twitch.Username != "" && c.Twitch.OAuth == "" {
		return fmt.Errorf("twitch.oauth is required when twitch.username is set (or set TWITCH_OAUTH)")
	}
	if c.Viewer.BufferSize <= 0 {
		return fmt.Errorf("viewer.buffer_size must be positive, got %d", c.Viewer.BufferSize)
	}
	if c.Viewer.TickMillis <= 0 {
		return fmt.Errorf("viewer.tick_ms must be positive, got %d", c.Viewer.TickMillis)
	}
	if c.Viewer.EventBuffer <= 0 {
		return fmt.Errorf("viewer.event_buffer must be positive, got %d", c.Viewer.EventBuffer)
	}
	if c.Viewer.InvertBelow < 0 || c.Viewer.InvertBelow > 255 {
		return fmt.Errorf("viewer.invert_below_brightness must be in 0-255, got %d", c.Viewer.InvertBelow)
	}
	for name, b := range map[string]BadgeConfig{
		"moderator":  c.Badges.Moderator,
		"vip":        c.Badges.VIP,
		"subscriber": c.Badges.Subscriber,
		"founder":    c.Badges.Founder,
	} {
		if b.Width < 0 {
			return fmt.Errorf("badges.%s.width must be non-negative, got %d", name, b.Width)
		}
	}
	return nil
}

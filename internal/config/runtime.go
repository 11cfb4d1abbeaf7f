// Package config provides centralized runtime configuration for tally.
package config

import (
	"os"
	"strconv"
	"time"
)

// RuntimeConfig holds runtime configuration values. Defaults cover
// normal interactive use; every field can be overridden via a TALLY_*
// environment variable.
type RuntimeConfig struct {
	// Notify configuration
	Notify NotifyConfig

	// UI configuration
	UI UIConfig

	// History configuration
	History HistoryConfig
}

// NotifyConfig controls which notification capabilities fire when a
// target is reached. All three together form the composite effect.
type NotifyConfig struct {
	// Sound rings the terminal bell.
	// Default: true
	Sound bool

	// Flash pulses the counter display.
	// Default: true
	Flash bool

	// Alert shows the reached message on screen.
	// Default: true
	Alert bool
}

// UIConfig holds TUI tuning values.
type UIConfig struct {
	// FlashDuration is how long the reached pulse stays on screen.
	// Default: 2s
	FlashDuration time.Duration

	// MessageDuration is how long transient status messages linger.
	// Default: 3s
	MessageDuration time.Duration
}

// HistoryConfig holds milestone history settings.
type HistoryConfig struct {
	// DefaultLimit is the number of milestones shown without --limit.
	// Default: 20
	DefaultLimit int
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Notify: NotifyConfig{
			Sound: true,
			Flash: true,
			Alert: true,
		},
		UI: UIConfig{
			FlashDuration:   2 * time.Second,
			MessageDuration: 3 * time.Second,
		},
		History: HistoryConfig{
			DefaultLimit: 20,
		},
	}
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and can be overridden via environment variables.
var Global = initGlobal()

func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("TALLY_NOTIFY_SOUND"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Notify.Sound = b
		}
	}
	if v := os.Getenv("TALLY_NOTIFY_FLASH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Notify.Flash = b
		}
	}
	if v := os.Getenv("TALLY_NOTIFY_ALERT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Notify.Alert = b
		}
	}
	if v := os.Getenv("TALLY_UI_FLASH_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.UI.FlashDuration = d
		}
	}
	if v := os.Getenv("TALLY_UI_MESSAGE_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.UI.MessageDuration = d
		}
	}
	if v := os.Getenv("TALLY_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.History.DefaultLimit = n
		}
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	assert.True(t, cfg.Notify.Sound)
	assert.True(t, cfg.Notify.Flash)
	assert.True(t, cfg.Notify.Alert)
	assert.Equal(t, 2*time.Second, cfg.UI.FlashDuration)
	assert.Equal(t, 3*time.Second, cfg.UI.MessageDuration)
	assert.Equal(t, 20, cfg.History.DefaultLimit)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TALLY_NOTIFY_SOUND", "false")
	t.Setenv("TALLY_UI_FLASH_DURATION", "500ms")
	t.Setenv("TALLY_HISTORY_LIMIT", "5")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	assert.False(t, cfg.Notify.Sound)
	assert.True(t, cfg.Notify.Flash)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.FlashDuration)
	assert.Equal(t, 5, cfg.History.DefaultLimit)
}

func TestLoadFromEnvIgnoresInvalid(t *testing.T) {
	t.Setenv("TALLY_NOTIFY_SOUND", "not-a-bool")
	t.Setenv("TALLY_UI_FLASH_DURATION", "-1s")
	t.Setenv("TALLY_HISTORY_LIMIT", "0")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	assert.True(t, cfg.Notify.Sound)
	assert.Equal(t, 2*time.Second, cfg.UI.FlashDuration)
	assert.Equal(t, 20, cfg.History.DefaultLimit)
}

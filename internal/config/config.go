package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// Ball geometry
	BallSize    = 100
	BallSpacing = BallSize + 6

	StringWidth = 4

	// Momentum parameters
	MomentumDecay     = 0.95
	MomentumThreshold = 0.001 // px/ms

	// Counter placement
	CounterInset = 10
	CounterScale = 2.0

	// Click sound
	ClickFrequency = 1760.0
	ClickDuration  = 25 * time.Millisecond
	SampleRate     = 44100
)

// Config holds runtime settings.
type Config struct {
	Window   WindowConfig
	Feedback FeedbackConfig
	Counter  CounterConfig
}

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// FeedbackConfig controls what happens when a ball crosses the line.
type FeedbackConfig struct {
	Vibrate         bool
	VibrateDuration time.Duration `mapstructure:"vibrate_duration"`
	Sound           bool
	Volume          float64
}

type CounterConfig struct {
	Enabled bool
}

// Load reads configuration from file and env. Env var overrides use prefix BALLSTRING_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("window.width", 480)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "Ball String")
	v.SetDefault("feedback.vibrate", true)
	v.SetDefault("feedback.vibrate_duration", 20*time.Millisecond)
	v.SetDefault("feedback.sound", true)
	v.SetDefault("feedback.volume", 0.3)
	v.SetDefault("counter.enabled", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BALLSTRING_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "ballstring"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BALLSTRING")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicitly named file must exist and parse.
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	c.Feedback.Volume = clamp01(c.Feedback.Volume)
	return c, nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Feedback.VibrateDuration < 0 {
		return fmt.Errorf("invalid vibrate duration %v", c.Feedback.VibrateDuration)
	}
	return nil
}

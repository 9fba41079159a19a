package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Port                 int           `env:"PORT,default=10001" validate:"min=1,max=65535"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	DataDir              string        `env:"DATA_DIR,default=." validate:"required"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64" validate:"min=1"`
	DeliveryTimeout      time.Duration `env:"DELIVERY_TIMEOUT,default=2s" validate:"min=1ms"`
	StatsInterval        time.Duration `env:"STATS_INTERVAL,default=30s" validate:"min=1s"`
	CensorMessages       bool          `env:"CENSOR_MESSAGES,default=false"`
	CensorMask           string        `env:"CENSOR_MASK,default=*"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}
	return config, nil
}

// MaskRune returns the single-character censor mask as a rune.
func (c Config) MaskRune() (rune, error) {
	r := []rune(c.CensorMask)
	if len(r) != 1 {
		return 0, fmt.Errorf("CENSOR_MASK must be a single character, got %q", c.CensorMask)
	}
	return r[0], nil
}

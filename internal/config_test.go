package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)

	config, err := Load()
	req.NoError(err)
	req.Equal(10001, config.Port)
	req.Equal("INFO", config.LogLevel)
	req.Equal(64, config.ConnectionBufferSize)
	req.Equal(2*time.Second, config.DeliveryTimeout)
	req.False(config.CensorMessages)
}

func TestLoad_Overrides(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DELIVERY_TIMEOUT", "500ms")
	t.Setenv("CENSOR_MESSAGES", "true")

	config, err := Load()
	req.NoError(err)
	req.Equal(9000, config.Port)
	req.Equal(500*time.Millisecond, config.DeliveryTimeout)
	req.True(config.CensorMessages)
}

func TestLoad_RejectsInvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")

	_, err := Load()
	require.Error(t, err)
}

func TestMaskRune(t *testing.T) {
	req := require.New(t)

	r, err := Config{CensorMask: "#"}.MaskRune()
	req.NoError(err)
	req.Equal('#', r)

	_, err = Config{CensorMask: "##"}.MaskRune()
	req.Error(err)

	_, err = Config{CensorMask: ""}.MaskRune()
	req.Error(err)
}

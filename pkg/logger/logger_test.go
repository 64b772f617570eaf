package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitLevelParsing(t *testing.T) {
	Init("test-svc", "production", "debug")
	assert.Equal(t, zerolog.DebugLevel, Logger.GetLevel())

	Init("test-svc", "production", "warn")
	assert.Equal(t, zerolog.WarnLevel, Logger.GetLevel())

	// Unknown names fall back to info instead of disabling logging
	Init("test-svc", "production", "loud")
	assert.Equal(t, zerolog.InfoLevel, Logger.GetLevel())

	Init("test-svc", "production", "")
	assert.Equal(t, zerolog.InfoLevel, Logger.GetLevel())
}

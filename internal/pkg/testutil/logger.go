package testutil

import (
	"testing"

	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger returns the process logger, initialising it at debug level on the console
// if no other test has done so yet.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	require.NoError(t, logger.InitLogger(config.ConsoleLoggerSettings(config.LogLevelDebug)))
	log, err := logger.GetLogger()
	require.NoError(t, err)
	return log
}

//go:build unit
// +build unit

package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLogger_WritesJSONRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rsa-vault.log")

	log := NewFileLogger(&config.LoggerSettings{
		LogLevel:   config.LogLevelInfo,
		LogType:    config.LogTypeFile,
		FilePath:   path,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	})
	require.NotNil(t, log)

	log.Debug("hidden")
	log.Info("encrypted ", 4, " blocks")
	log.Error("malformed ciphertext")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var records []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var record map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
		records = append(records, record)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, records, 2)
	assert.Equal(t, "INFO", records[0]["level"])
	assert.Equal(t, "encrypted 4 blocks", records[0]["msg"])
	assert.Equal(t, "ERROR", records[1]["level"])
	assert.Equal(t, "malformed ciphertext", records[1]["msg"])
}

//go:build integration
// +build integration

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/rsa-vault/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoredKeyCommands(t *testing.T) {
	dir := t.TempDir()
	dsn := filepath.Join(dir, "keys.db")

	out, err := execute(t, "generate-keys", "--db-dsn", dsn, "--label", "demo", "--seed", "21")
	require.NoError(t, err)
	keyID := parseAssignments(out)["id"]
	require.NotEmpty(t, keyID)

	listed, err := execute(t, "list-keys", "--db-dsn", dsn, "--label", "demo")
	require.NoError(t, err)
	assert.Contains(t, listed, keyID)

	listed, err = execute(t, "list-keys", "--db-dsn", dsn, "--label", "other")
	require.NoError(t, err)
	assert.Empty(t, listed)

	plaintext := testutil.PseudoRandomBytes(9, 333)
	input := testutil.CreateTestFile(t, "plain.bin", plaintext)
	encrypted := filepath.Join(dir, "cipher.bin")
	decrypted := filepath.Join(dir, "plain.out")

	_, err = execute(t, "encrypt", "--input-file", input, "--output-file", encrypted, "--key-id", keyID, "--db-dsn", dsn)
	require.NoError(t, err)

	_, err = execute(t, "decrypt", "--input-file", encrypted, "--output-file", decrypted, "--key-id", keyID, "--db-dsn", dsn)
	require.NoError(t, err)

	got, err := os.ReadFile(decrypted)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)

	_, err = execute(t, "encrypt", "--input-file", input, "--output-file", encrypted,
		"--key-id", "00000000-0000-4000-8000-000000000000", "--db-dsn", dsn)
	assert.Error(t, err)
}

//go:build unit
// +build unit

package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/random"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs args against a freshly built command tree and returns its standard output
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := &cobra.Command{Use: "rsa-vault-cli", SilenceUsage: true, SilenceErrors: true}
	require.NoError(t, InitKeyCommands(rootCmd))
	require.NoError(t, InitRSACommands(rootCmd))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// parseAssignments collects "name = value" lines
func parseAssignments(out string) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		name, value, ok := strings.Cut(line, " = ")
		if ok {
			values[name] = value
		}
	}
	return values
}

func TestGenerateKeysCmd(t *testing.T) {
	out, err := execute(t, "generate-keys", "--seed", "7")
	require.NoError(t, err)

	values := parseAssignments(out)
	assert.Equal(t, "7", values["seed"])
	for _, name := range []string{"n", "e", "d"} {
		assert.NotEmpty(t, values[name], name)
	}

	again, err := execute(t, "generate-keys", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	key, err := parseKeyPair(256, values["n"], values["e"], values["d"])
	require.NoError(t, err)
	assert.True(t, key.CanEncrypt())
	assert.True(t, key.CanDecrypt())
}

func TestEncryptDecryptCmd(t *testing.T) {
	plaintext := testutil.PseudoRandomBytes(3, 1000)
	input := testutil.CreateTestFile(t, "plain.bin", plaintext)
	dir := t.TempDir()
	encrypted := filepath.Join(dir, "cipher.bin")
	decrypted := filepath.Join(dir, "plain.out")

	t.Run("random keys with embedded decryption", func(t *testing.T) {
		out, err := execute(t, "encrypt", "--input-file", input, "--output-file", encrypted,
			"--random-keys", "--seed", "11", "--print-keys")
		require.NoError(t, err)
		assert.Equal(t, "11", parseAssignments(out)["seed"])

		_, err = execute(t, "decrypt", "--input-file", encrypted, "--output-file", decrypted)
		require.NoError(t, err)

		got, err := os.ReadFile(decrypted)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	})

	t.Run("supplied keys", func(t *testing.T) {
		out, err := execute(t, "generate-keys", "--seed", "13")
		require.NoError(t, err)
		values := parseAssignments(out)

		_, err = execute(t, "encrypt", "--input-file", input, "--output-file", encrypted,
			"--n", values["n"], "--e", values["e"], "--d", values["d"])
		require.NoError(t, err)

		_, err = execute(t, "decrypt", "--input-file", encrypted, "--output-file", decrypted,
			"--n", values["n"], "--d", values["d"])
		require.NoError(t, err)

		got, err := os.ReadFile(decrypted)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	})
}

func TestEncryptCmdEmptyFile(t *testing.T) {
	input := testutil.CreateTestFile(t, "empty.bin", nil)
	encrypted := filepath.Join(t.TempDir(), "cipher.bin")

	_, err := execute(t, "encrypt", "--input-file", input, "--output-file", encrypted, "--random-keys", "--seed", "5")
	require.NoError(t, err)

	info, err := os.Stat(encrypted)
	require.NoError(t, err)
	// d and n header plus one block of pure padding
	assert.Equal(t, int64(3*32), info.Size())
}

func TestDecryptCmdCorruptedInput(t *testing.T) {
	input := testutil.CreateTestFile(t, "plain.bin", []byte("attack at dawn"))
	dir := t.TempDir()
	encrypted := filepath.Join(dir, "cipher.bin")
	decrypted := filepath.Join(dir, "plain.out")

	_, err := execute(t, "encrypt", "--input-file", input, "--output-file", encrypted, "--random-keys", "--seed", "17")
	require.NoError(t, err)

	data, err := os.ReadFile(encrypted)
	require.NoError(t, err)
	data[len(data)-1] ^= 0x01
	require.NoError(t, os.WriteFile(encrypted, data, 0600))

	_, err = execute(t, "decrypt", "--input-file", encrypted, "--output-file", decrypted)
	require.Error(t, err)
	assert.ErrorIs(t, err, cryptoalg.ErrMalformedCiphertext)

	_, statErr := os.Stat(decrypted)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewFileCipherIgnoresSamplingSettings(t *testing.T) {
	plaintext := []byte("attack at dawn")
	input := testutil.CreateTestFile(t, "plain.bin", plaintext)
	dir := t.TempDir()
	encrypted := filepath.Join(dir, "cipher.bin")
	decrypted := filepath.Join(dir, "plain.out")

	_, err := execute(t, "encrypt", "--input-file", input, "--output-file", encrypted, "--random-keys", "--seed", "23")
	require.NoError(t, err)

	settings := config.DefaultCipherSettings()
	settings.MillerRabinRounds = 0
	settings.MaxAttempts = 0
	log := testutil.SetupTestLogger(t)

	_, err = newKeyGenerator(settings, random.NewSeeded(1), log)
	assert.Error(t, err)

	fileCipher, err := newFileCipher(settings, log)
	require.NoError(t, err)
	require.NoError(t, fileCipher.DecryptFile(context.Background(), encrypted, decrypted, nil))

	got, err := os.ReadFile(decrypted)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestEncryptCmdFlagErrors(t *testing.T) {
	input := testutil.CreateTestFile(t, "plain.bin", []byte("data"))
	output := filepath.Join(t.TempDir(), "cipher.bin")

	tests := []struct {
		name string
		args []string
	}{
		{"no key selected", []string{"encrypt", "--input-file", input, "--output-file", output}},
		{"missing input file flag", []string{"encrypt", "--output-file", output, "--random-keys"}},
		{"partial key", []string{"encrypt", "--input-file", input, "--output-file", output, "--n", "3233", "--e", "17"}},
		{"conflicting key sources", []string{"encrypt", "--input-file", input, "--output-file", output,
			"--random-keys", "--n", "3233", "--e", "17", "--d", "2753"}},
		{"key id without key store", []string{"encrypt", "--input-file", input, "--output-file", output, "--key-id", "abc"}},
		{"unparsable modulus", []string{"encrypt", "--input-file", input, "--output-file", output,
			"--n", "12ab", "--e", "17", "--d", "2753"}},
		{"modulus too small for the block size", []string{"encrypt", "--input-file", input, "--output-file", output,
			"--n", "3233", "--e", "17", "--d", "2753"}},
		{"missing input file", []string{"encrypt", "--input-file", filepath.Join(t.TempDir(), "missing"),
			"--output-file", output, "--random-keys", "--seed", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestParseKeyPair(t *testing.T) {
	key, err := parseKeyPair(64, "0xca1", "17", "")
	require.NoError(t, err)
	assert.Equal(t, uint64(3233), key.N().Uint64())
	assert.True(t, key.CanEncrypt())
	assert.False(t, key.CanDecrypt())

	_, err = parseKeyPair(64, "", "17", "2753")
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidKeyPair)

	_, err = parseKeyPair(16, "0x1ffff", "3", "")
	assert.Error(t, err)
}

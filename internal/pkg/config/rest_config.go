package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig holds the configuration of the REST API
type RestConfig struct {
	Port     string           `mapstructure:"port"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	Cipher   CipherSettings   `mapstructure:"cipher"`
}

// Validate checks the nested settings of RestConfig
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for port: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Cipher.Validate()
}

// InitializeRestConfig reads a YAML file, applies RSA_VAULT_* environment overrides and
// validates the result
func InitializeRestConfig(path string) (*RestConfig, error) {
	v, err := readConfig(path, func(v *viper.Viper) {
		v.SetDefault("port", "8080")
	})
	if err != nil {
		return nil, err
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// readConfig loads path into a viper instance carrying the shared defaults and the
// RSA_VAULT_* environment overrides
func readConfig(path string, setDefaults func(v *viper.Viper)) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("RSA_VAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultCipherSettings()
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "rsa-vault.db")
	v.SetDefault("cipher.key_bits", defaults.KeyBits)
	v.SetDefault("cipher.plain_block_size", defaults.PlainBlockSize)
	v.SetDefault("cipher.cipher_block_size", defaults.CipherBlockSize)
	v.SetDefault("cipher.miller_rabin_rounds", defaults.MillerRabinRounds)
	v.SetDefault("cipher.max_attempts", defaults.MaxAttempts)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return v, nil
}

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// GrpcConfig holds the configuration of the gRPC API and its gateway
type GrpcConfig struct {
	Port        string           `mapstructure:"port"`
	GatewayPort string           `mapstructure:"gateway_port"`
	Logger      LoggerSettings   `mapstructure:"logger"`
	Database    DatabaseSettings `mapstructure:"database"`
	Cipher      CipherSettings   `mapstructure:"cipher"`
}

// Validate checks the nested settings of GrpcConfig
func (c *GrpcConfig) Validate() error {
	validate := validator.New()
	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for port: %w", err)
	}
	if err := validate.Var(c.GatewayPort, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for gateway port: %w", err)
	}
	if c.GatewayPort == c.Port {
		return fmt.Errorf("gateway port %s collides with the gRPC port", c.GatewayPort)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Cipher.Validate()
}

// InitializeGrpcConfig reads a YAML file, applies RSA_VAULT_* environment overrides and
// validates the result
func InitializeGrpcConfig(path string) (*GrpcConfig, error) {
	v, err := readConfig(path, func(v *viper.Viper) {
		v.SetDefault("port", "50051")
		v.SetDefault("gateway_port", "8090")
	})
	if err != nil {
		return nil, err
	}

	var cfg GrpcConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

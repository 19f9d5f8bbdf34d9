package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. GOST_VAULT_DATABASE_DSN
const EnvPrefix = "GOST_VAULT"

// RestConfig holds the settings of the REST API service
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	Signer   SignerSettings   `mapstructure:"signer"`
}

// Validate checks the port and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for RestConfig port: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Signer.Validate(); err != nil {
		return err
	}

	return nil
}

// InitializeRestConfig reads the YAML file at path, applies GOST_VAULT_* environment overrides
// and validates the result
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setRestDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Logger.ApplyFileDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	signer := DefaultSignerSettings()

	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", ":memory:")
	v.SetDefault("database.name", "")
	v.SetDefault("signer.hash_algorithm", signer.HashAlgorithm)
	v.SetDefault("signer.modulus_bits", signer.ModulusBits)
	v.SetDefault("signer.max_nonce_attempts", signer.MaxNonceAttempts)
	v.SetDefault("signer.required_security_bits", signer.RequiredSecurityBits)
	v.SetDefault("signer.legacy_security_bits", signer.LegacySecurityBits)
}

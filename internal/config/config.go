package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string        `mapstructure:"ENVIRONMENT"`
	HTTPAddr    string        `mapstructure:"HTTP_ADDR"`
	DBHost      string        `mapstructure:"DB_HOST"`
	DBPort      string        `mapstructure:"DB_PORT"`
	DBUser      string        `mapstructure:"DB_USER"`
	DBPassword  string        `mapstructure:"DB_PASSWORD"`
	DBName      string        `mapstructure:"DB_NAME"`
	JWTSecret   string        `mapstructure:"JWT_SECRET"`
	JWTIssuer   string        `mapstructure:"JWT_ISSUER"`
	JWTTTL      time.Duration `mapstructure:"JWT_TTL"`
	BcryptCost  int           `mapstructure:"BCRYPT_COST"`
}

// Load reads configuration from environment variables with sane defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("ENVIRONMENT", "develop")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_USER", "taskhub")
	v.SetDefault("DB_PASSWORD", "taskhub")
	v.SetDefault("DB_NAME", "taskhub")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("JWT_ISSUER", "taskhub")
	v.SetDefault("JWT_TTL", 24*time.Hour)
	v.SetDefault("BCRYPT_COST", 10)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// DSN builds the MySQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

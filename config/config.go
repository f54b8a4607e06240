package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	Admin AdminConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	SessionExpiry time.Duration
}

// AdminConfig holds the single admin credential pair. PasswordHash, when
// set, takes precedence over Password and must be a bcrypt hash.
type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine, everything can come from the environment.
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")

	sessionExpiry, err := time.ParseDuration(viper.GetString("SESSION_EXPIRY"))
	if err != nil {
		sessionExpiry = 12 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			SessionExpiry: sessionExpiry,
		},
		Admin: AdminConfig{
			Username:     viper.GetString("ADMIN_USERNAME"),
			Password:     viper.GetString("ADMIN_PASSWORD"),
			PasswordHash: viper.GetString("ADMIN_PASSWORD_HASH"),
		},
	}

	return config, nil
}

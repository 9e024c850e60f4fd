package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/linhnt-hub/reflex-flash-cards/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	DB      DBConfig      `mapstructure:"db"`
	Env     string        `mapstructure:"env" validate:"oneof=development production staging"`
}

type StorageConfig struct {
	Backend  string `mapstructure:"backend" validate:"oneof=file bolt postgres"`
	DataFile string `mapstructure:"data_file" validate:"required"`
	BoltPath string `mapstructure:"bolt_path" validate:"required"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	v.SetDefault("env", "production")
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.data_file", "flashcards.json")
	v.SetDefault("storage.bolt_path", "flashcards.db")
	v.SetDefault("db.conn.ssl", "disable")
	v.SetDefault("db.cfg.max_open_conns", 5)
	v.SetDefault("db.cfg.max_idle_conns", 2)

	if err := v.BindEnv("env", "APP_ENV"); err != nil {
		return nil, fmt.Errorf("failed to bind APP_ENV: %w", err)
	}
	if err := v.BindEnv("storage.backend", "STORAGE_BACKEND"); err != nil {
		return nil, fmt.Errorf("failed to bind STORAGE_BACKEND: %w", err)
	}
	if err := v.BindEnv("storage.data_file", "DATA_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind DATA_FILE: %w", err)
	}
	if err := v.BindEnv("storage.bolt_path", "BOLT_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind BOLT_PATH: %w", err)
	}
	if err := v.BindEnv("db.conn.host", "DB_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_HOST: %w", err)
	}
	if err := v.BindEnv("db.conn.port", "DB_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PORT: %w", err)
	}
	if err := v.BindEnv("db.conn.user", "DB_USER"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_USER: %w", err)
	}
	if err := v.BindEnv("db.conn.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD: %w", err)
	}
	if err := v.BindEnv("db.conn.name", "DB_NAME"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_NAME: %w", err)
	}
	if err := v.BindEnv("db.conn.ssl", "DB_SSL"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_SSL: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		// A plain local run has no config file; defaults and env cover it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	if cfg.Storage.Backend == "postgres" {
		if err := validatePostgres(cfg.DB.Conn); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

func validatePostgres(conn DBConn) error {
	var missing []string
	if conn.Host == "" {
		missing = append(missing, "db.conn.host")
	}
	if conn.Port == "" {
		missing = append(missing, "db.conn.port")
	}
	if conn.User == "" {
		missing = append(missing, "db.conn.user")
	}
	if conn.Name == "" {
		missing = append(missing, "db.conn.name")
	}
	if len(missing) > 0 {
		return fmt.Errorf("postgres backend selected but config is incomplete: %v", missing)
	}
	return nil
}

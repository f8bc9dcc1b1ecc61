package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string
}

type AppConfig struct {
	Environment string
	LogLevel    string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// CharityConfig seleciona a origem do catálogo de instituições:
// "static" usa o catálogo embutido, "database" lê a tabela charities.
type CharityConfig struct {
	Source string
}

type ProcessingConfig struct {
	Delay time.Duration
}

type SeedConfig struct {
	UserName  string
	UserEmail string
	Balance   float64
}

type Config struct {
	Server     ServerConfig
	App        AppConfig
	Database   DatabaseConfig
	Charity    CharityConfig
	Processing ProcessingConfig
	Seed       SeedConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("../..")
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "flux")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "flux")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("charity.source", "static")
	v.SetDefault("processing.delay", 1500*time.Millisecond)
	v.SetDefault("seed.user_name", "Alex Maigret")
	v.SetDefault("seed.user_email", "alex@example.com")
	v.SetDefault("seed.balance", 1250.00)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("server.port"),
		},
		App: AppConfig{
			Environment: v.GetString("app.environment"),
			LogLevel:    v.GetString("app.log_level"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("database.conn_max_lifetime"),
		},
		Charity: CharityConfig{
			Source: v.GetString("charity.source"),
		},
		Processing: ProcessingConfig{
			Delay: v.GetDuration("processing.delay"),
		},
		Seed: SeedConfig{
			UserName:  v.GetString("seed.user_name"),
			UserEmail: v.GetString("seed.user_email"),
			Balance:   v.GetFloat64("seed.balance"),
		},
	}

	return cfg, nil
}

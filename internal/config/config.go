package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Defaults DefaultsConfig
}

type ServerConfig struct {
	Port      string `mapstructure:"port"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"db_host"`
	Port     string `mapstructure:"db_port"`
	User     string `mapstructure:"db_user"`
	Password string `mapstructure:"db_password"`
	Name     string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"db_sslmode"`
}

type DefaultsConfig struct {
	AdminUsername string  `mapstructure:"admin_username"`
	AdminPassword string  `mapstructure:"admin_password"`
	MinStockLevel float64 `mapstructure:"min_stock_level"`
	Currency      string  `mapstructure:"currency"`
}

// Load reads configuration from .env (if present) with OS environment
// variables as fallback/override, and applies development defaults.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("No .env file found, falling back to environment variables: %v", err)
	}
	viper.AutomaticEnv()

	viper.SetDefault("port", "8080")
	viper.SetDefault("db_host", "localhost")
	viper.SetDefault("db_port", "5432")
	viper.SetDefault("db_user", "postgres")
	viper.SetDefault("db_password", "postgres")
	viper.SetDefault("db_name", "fishshop")
	viper.SetDefault("db_sslmode", "disable")
	viper.SetDefault("admin_username", "admin")
	viper.SetDefault("min_stock_level", 10)
	viper.SetDefault("currency", "₹")

	cfg := &Config{
		Server: ServerConfig{
			Port:      viper.GetString("port"),
			JWTSecret: viper.GetString("jwt_secret"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("db_host"),
			Port:     viper.GetString("db_port"),
			User:     viper.GetString("db_user"),
			Password: viper.GetString("db_password"),
			Name:     viper.GetString("db_name"),
			SSLMode:  viper.GetString("db_sslmode"),
		},
		Defaults: DefaultsConfig{
			AdminUsername: viper.GetString("admin_username"),
			AdminPassword: viper.GetString("admin_password"),
			MinStockLevel: viper.GetFloat64("min_stock_level"),
			Currency:      viper.GetString("currency"),
		},
	}

	return cfg
}

// DSN builds the postgres connection string.
func (c DatabaseConfig) DSN() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + c.Port + "/" + c.Name + "?sslmode=" + c.SSLMode
}

package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		// Driver selects the ledger backend: "memory" or "postgres".
		Driver   string `mapstructure:"driver"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Redis struct {
		Enabled  bool   `mapstructure:"enabled"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	RabbitMQ struct {
		Enabled bool   `mapstructure:"enabled"`
		URL     string `mapstructure:"url"`
		Queue   string `mapstructure:"queue"`
	} `mapstructure:"rabbitmq"`
	// Seed accounts are loaded into the ledger at startup when the memory
	// driver is selected. The postgres driver seeds through migrations instead.
	Seed struct {
		Accounts []SeedAccount `mapstructure:"accounts"`
	} `mapstructure:"seed"`
}

type SeedAccount struct {
	AccountNumber string `mapstructure:"account_number"`
	AccountName   string `mapstructure:"account_name"`
	Balance       string `mapstructure:"balance"`
	Type          string `mapstructure:"type"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.driver", "memory")
	viper.SetDefault("rabbitmq.queue", "my_queue")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file, %s", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}

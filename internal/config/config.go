package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config regroupe toute la configuration du worker de synchronisation.
// Construit une seule fois au démarrage puis passé explicitement aux composants.
type Config struct {
	// Base de données
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`

	// LeetCode GraphQL
	GraphQLURL      string `mapstructure:"LEETCODE_GRAPHQL_URL"`
	LeetCodeSession string `mapstructure:"LEETCODE_SESSION"`

	// Politique de pacing / retry (voir sync.Pacing)
	MaxRetries       int `mapstructure:"MAX_RETRIES"`
	HTTPTimeoutS     int `mapstructure:"HTTP_TIMEOUT_S"`
	RequestDelayMs   int `mapstructure:"REQUEST_DELAY_MS"`
	RetryBaseMs      int `mapstructure:"RETRY_BASE_MS"`
	RetryIncrementMs int `mapstructure:"RETRY_INCREMENT_MS"`

	// Divers
	RecentLimit int    `mapstructure:"RECENT_LIMIT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Le fichier .env est optionnel : en production tout vient de l'environnement
	_ = viper.ReadInConfig()

	// Les valeurs par défaut enregistrent aussi les clés pour AutomaticEnv
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "leetboard")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("LEETCODE_GRAPHQL_URL", "https://leetcode.com/graphql")
	viper.SetDefault("MAX_RETRIES", 3)
	viper.SetDefault("HTTP_TIMEOUT_S", 20)
	viper.SetDefault("REQUEST_DELAY_MS", 400)
	viper.SetDefault("RETRY_BASE_MS", 600)
	viper.SetDefault("RETRY_INCREMENT_MS", 300)
	viper.SetDefault("RECENT_LIMIT", 15)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("LEETCODE_SESSION", "")
	viper.SetDefault("PORT", "")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate vérifie la cohérence de la configuration avant le lancement du run.
func (c *Config) Validate() error {
	if c.DBHost == "" || c.DBName == "" || c.DBUser == "" {
		return fmt.Errorf("database configuration is incomplete (DB_HOST, DB_USER and DB_NAME are required)")
	}
	if c.GraphQLURL == "" {
		return fmt.Errorf("LEETCODE_GRAPHQL_URL must not be empty")
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("MAX_RETRIES must be at least 1, got %d", c.MaxRetries)
	}
	if c.HTTPTimeoutS < 1 {
		return fmt.Errorf("HTTP_TIMEOUT_S must be at least 1, got %d", c.HTTPTimeoutS)
	}
	if c.RequestDelayMs < 0 || c.RetryBaseMs < 0 || c.RetryIncrementMs < 0 {
		return fmt.Errorf("delays must not be negative")
	}
	if c.RecentLimit < 1 {
		return fmt.Errorf("RECENT_LIMIT must be at least 1, got %d", c.RecentLimit)
	}
	return nil
}

// HTTPTimeout renvoie le timeout HTTP sous forme de time.Duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutS) * time.Second
}

// RequestDelay renvoie la pause entre deux utilisateurs.
func (c *Config) RequestDelay() time.Duration {
	return time.Duration(c.RequestDelayMs) * time.Millisecond
}

// RetryBase renvoie le délai de base entre deux tentatives.
func (c *Config) RetryBase() time.Duration {
	return time.Duration(c.RetryBaseMs) * time.Millisecond
}

// RetryIncrement renvoie l'incrément ajouté à chaque tentative supplémentaire.
func (c *Config) RetryIncrement() time.Duration {
	return time.Duration(c.RetryIncrementMs) * time.Millisecond
}

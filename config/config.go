package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Workflow Workflow
	App      App
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Workflow holds the outbound character-generation endpoint settings.
type Workflow struct {
	EndpointURL string
}

type App struct {
	// BaseURL is the public URL that share links are built from.
	BaseURL string
	// StateDir is where per-client session state files live.
	StateDir string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Workflow.EndpointURL = viper.GetString("WORKFLOW_ENDPOINT_URL")
	config.App.BaseURL = viper.GetString("APP_BASE_URL")
	config.App.StateDir = viper.GetString("APP_STATE_DIR")
	if config.App.StateDir == "" {
		config.App.StateDir = ".state"
	}

	if config.Database.Host == "" || config.Database.User == "" {
		log.Warn().Msg("Database credentials are not fully configured; store-backed features will be degraded")
	}
	if config.Workflow.EndpointURL == "" {
		log.Warn().Msg("WORKFLOW_ENDPOINT_URL is not set; character generation will always return the fallback character")
	}

	log.Info().Str("port", config.Server.Port).Str("app_base_url", config.App.BaseURL).Msg("Config loaded")
	return &config, nil
}

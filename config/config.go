package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Resume   Resume
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

type Auth struct {
	// JWTSecret is the HMAC secret shared with the external auth service.
	JWTSecret string
}

type Resume struct {
	PdflatexBin    string
	TimeoutSeconds int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("PDFLATEX_BIN", "pdflatex")
	viper.SetDefault("PDFLATEX_TIMEOUT_SECONDS", 60)

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
	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Resume.PdflatexBin = viper.GetString("PDFLATEX_BIN")
	config.Resume.TimeoutSeconds = viper.GetInt("PDFLATEX_TIMEOUT_SECONDS")

	log.Info().
		Str("server_port", config.Server.Port).
		Str("database_host", config.Database.Host).
		Str("database_name", config.Database.Name).
		Str("pdflatex_bin", config.Resume.PdflatexBin).
		Msg("Config loaded")
	return &config, nil
}

package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	ExamAPI  ExamAPI
	Auth     Auth
	Session  Session
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

type ExamAPI struct {
	BaseURL  string
	PageSize int
}

type Auth struct {
	JWTSecret       string
	TokenTTLMinutes int
}

type Session struct {
	TTLMinutes int
	// QuestionFallback substitutes the built-in placeholder questions when
	// the question fetch fails at session start, so a time-boxed exam never
	// opens on an empty screen.
	QuestionFallback bool
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("EXAM_API_PAGE_SIZE", 100)
	viper.SetDefault("AUTH_TOKEN_TTL_MINUTES", 480)
	viper.SetDefault("SESSION_TTL_MINUTES", 120)
	viper.SetDefault("SESSION_QUESTION_FALLBACK", true)

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

	config.ExamAPI.BaseURL = viper.GetString("EXAM_API_BASE_URL")
	config.ExamAPI.PageSize = viper.GetInt("EXAM_API_PAGE_SIZE")

	config.Auth.JWTSecret = viper.GetString("AUTH_JWT_SECRET")
	config.Auth.TokenTTLMinutes = viper.GetInt("AUTH_TOKEN_TTL_MINUTES")

	config.Session.TTLMinutes = viper.GetInt("SESSION_TTL_MINUTES")
	config.Session.QuestionFallback = viper.GetBool("SESSION_QUESTION_FALLBACK")

	log.Info().Str("port", config.Server.Port).Str("examAPI", config.ExamAPI.BaseURL).Msg("Config loaded")
	return &config, nil
}

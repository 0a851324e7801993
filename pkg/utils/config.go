package utils

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Playo    UpstreamConfig
	Reddit   UpstreamConfig
	GeoIP    UpstreamConfig
	Calendar CalendarConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type StoreConfig struct {
	// Driver selects the booking store backend: "memory" or "postgres"
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// UpstreamConfig covers one third-party HTTP API
type UpstreamConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type CalendarConfig struct {
	CredentialsFile string
	TokenFile       string
	Timezone        string
	ReminderMinutes int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "sports-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("STORE_DRIVER", "memory")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("PLAYO_API_URL", "https://api.playo.io")
	viper.SetDefault("PLAYO_TIMEOUT_SECONDS", 30)
	viper.SetDefault("REDDIT_BASE_URL", "https://www.reddit.com")
	viper.SetDefault("REDDIT_TIMEOUT_SECONDS", 30)
	viper.SetDefault("GEOIP_BASE_URL", "http://ip-api.com")
	viper.SetDefault("GEOIP_TIMEOUT_SECONDS", 10)
	viper.SetDefault("GCAL_CREDENTIALS_FILE", "google_calendar_credentials.json")
	viper.SetDefault("GCAL_TOKEN_FILE", "google_calendar_token.json")
	viper.SetDefault("CALENDAR_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("CALENDAR_REMINDER_MINUTES", 30)

	// .env is optional; defaults plus environment cover everything
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, new(*os.PathError)) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Store: StoreConfig{
			Driver: viper.GetString("STORE_DRIVER"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Playo: UpstreamConfig{
			BaseURL:        viper.GetString("PLAYO_API_URL"),
			TimeoutSeconds: viper.GetInt("PLAYO_TIMEOUT_SECONDS"),
		},
		Reddit: UpstreamConfig{
			BaseURL:        viper.GetString("REDDIT_BASE_URL"),
			TimeoutSeconds: viper.GetInt("REDDIT_TIMEOUT_SECONDS"),
		},
		GeoIP: UpstreamConfig{
			BaseURL:        viper.GetString("GEOIP_BASE_URL"),
			TimeoutSeconds: viper.GetInt("GEOIP_TIMEOUT_SECONDS"),
		},
		Calendar: CalendarConfig{
			CredentialsFile: viper.GetString("GCAL_CREDENTIALS_FILE"),
			TokenFile:       viper.GetString("GCAL_TOKEN_FILE"),
			Timezone:        viper.GetString("CALENDAR_TIMEZONE"),
			ReminderMinutes: viper.GetInt("CALENDAR_REMINDER_MINUTES"),
		},
	}

	return config, nil
}

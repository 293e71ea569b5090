package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	DB       DBConfig
	Redis    RedisConfig
	Auth     AuthConfig
	AMQP     AMQPConfig
	Tracking TrackingConfig
}

type ServerConfig struct {
	Addr string
}

// BackendConfig points at the remote transportation REST API.
type BackendConfig struct {
	BaseURL string
}

type DBConfig struct {
	User     string
	Password string
	DBName   string
	SSLMode  string
	Host     string
	Port     string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	// JWTSecret is the HS256 secret shared with the backend token issuer.
	JWTSecret string
}

type AMQPConfig struct {
	URL      string
	Exchange string
}

type TrackingConfig struct {
	// FixtureDelayMs is the artificial delay on the mock dashboard provider.
	FixtureDelayMs int
	// RecentWindowMinutes bounds "recent" pings and alerts on the dashboard.
	RecentWindowMinutes int
}

var Cfg *Config

func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("TA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("backend.baseurl", "http://localhost:8000")
	viper.SetDefault("tracking.fixturedelayms", 500)
	viper.SetDefault("tracking.recentwindowminutes", 30)

	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file, %s", err)
		}
		log.Println("No config file found, using defaults and environment")
	}

	err = viper.Unmarshal(&Cfg)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}

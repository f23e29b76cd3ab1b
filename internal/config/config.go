package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Env         string
	HTTPServer  HTTPServer
	Database    Database
	UserService UserService
	Prometheus  Prometheus
	Redis       Redis
	S3          S3
	Feed        Feed
}

type HTTPServer struct {
	Address string
	Port    int
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
}

type UserService struct {
	BaseURL        string
	TimeoutSeconds int
}

type Prometheus struct {
	Address string
	Port    int
}

type Redis struct {
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int
}

type S3 struct {
	Region        string
	Bucket        string
	Endpoint      string
	URLTTLMinutes int
}

type Feed struct {
	DefaultPageSize       int
	MaxPageSize           int
	AdSlateSize           int
	RecomputeLookbackDays int
}

func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8080)

	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "admin")
	viper.SetDefault("database.host", "feed-db")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.db_name", "feedservice")
	viper.SetDefault("database.migrations_path", "migrations")

	viper.SetDefault("user_service.base_url", "http://user-service:8081")
	viper.SetDefault("user_service.timeout_seconds", 5)

	viper.SetDefault("prometheus.address", "0.0.0.0")
	viper.SetDefault("prometheus.port", 9104)

	viper.SetDefault("redis.address", "redis")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)

	viper.SetDefault("s3.region", "ap-south-1")
	viper.SetDefault("s3.bucket", "localbuzz-post-images")
	viper.SetDefault("s3.endpoint", "")
	viper.SetDefault("s3.url_ttl_minutes", 15)

	viper.SetDefault("feed.default_page_size", 20)
	viper.SetDefault("feed.max_page_size", 100)
	viper.SetDefault("feed.ad_slate_size", 10)
	viper.SetDefault("feed.recompute_lookback_days", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address: viper.GetString("http_server.address"),
			Port:    viper.GetInt("http_server.port"),
		},
		Database: Database{
			Username:       viper.GetString("database.username"),
			Password:       viper.GetString("database.password"),
			Host:           viper.GetString("database.host"),
			Port:           viper.GetString("database.port"),
			DbName:         viper.GetString("database.db_name"),
			MigrationsPath: viper.GetString("database.migrations_path"),
		},
		UserService: UserService{
			BaseURL:        viper.GetString("user_service.base_url"),
			TimeoutSeconds: viper.GetInt("user_service.timeout_seconds"),
		},
		Prometheus: Prometheus{
			Address: viper.GetString("prometheus.address"),
			Port:    viper.GetInt("prometheus.port"),
		},
		Redis: Redis{
			Address:  viper.GetString("redis.address"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			PoolSize: viper.GetInt("redis.pool_size"),
		},
		S3: S3{
			Region:        viper.GetString("s3.region"),
			Bucket:        viper.GetString("s3.bucket"),
			Endpoint:      viper.GetString("s3.endpoint"),
			URLTTLMinutes: viper.GetInt("s3.url_ttl_minutes"),
		},
		Feed: Feed{
			DefaultPageSize:       viper.GetInt("feed.default_page_size"),
			MaxPageSize:           viper.GetInt("feed.max_page_size"),
			AdSlateSize:           viper.GetInt("feed.ad_slate_size"),
			RecomputeLookbackDays: viper.GetInt("feed.recompute_lookback_days"),
		},
	}

	return config
}

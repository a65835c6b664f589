package configuration

import (
	"os"
	"strconv"

	"vidlink/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	ParseAPI    ParseAPI    `json:"parseApi"`
	Cache       Cache       `json:"cache"`
	RedisClient RedisClient `json:"redisClient"`
	Database    Database    `json:"database"`
	Pubsub      Pubsub      `json:"pubsub"`
	ServiceBus  ServiceBus  `json:"serviceBus"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
}

// ParseAPI points at the upstream parsing service. APIKey, when set, is sent
// as a bearer token.
type ParseAPI struct {
	BaseURL        string `json:"baseUrl"`
	APIKey         string `json:"apiKey"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

type Cache struct {
	TTLSeconds int `json:"ttlSeconds"`
	MaxEntries int `json:"maxEntries"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Database struct {
	MySql Db `json:"mysql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type Pubsub struct {
	ProjectID string `json:"projectID"`
	Topic     string `json:"topic"`
}

type ServiceBus struct {
	Namespace string `json:"namespace"`
	Queue     string `json:"queue"`
}

var C Config

func init() {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("No config file found; relying on environment variables")
	}
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshalling configuration")
	}

	initApp(&C)
	initParseAPI(&C)
	initCache(&C)
	initRedis(&C)
	initDatabase(&C)
	initMessaging(&C)
}

func initApp(C *Config) {
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 10001
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10001
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; admin endpoints will reject all tokens. Provide SECRET_KEY via environment.")
	}
}

func initParseAPI(C *Config) {
	if v := os.Getenv("VIDEO_API_URL"); v != "" {
		C.ParseAPI.BaseURL = v
	}
	if v := os.Getenv("VIDEO_API_KEY"); v != "" {
		C.ParseAPI.APIKey = v
	}
	if C.ParseAPI.TimeoutSeconds == 0 {
		C.ParseAPI.TimeoutSeconds = 30
	}
	if C.ParseAPI.BaseURL == "" {
		logger.GetLogger().Warn("ParseAPI.BaseURL not set; parse requests will fail. Provide VIDEO_API_URL via environment.")
	}
}

func initCache(C *Config) {
	if C.Cache.TTLSeconds == 0 {
		C.Cache.TTLSeconds = 3600
	}
	if C.Cache.MaxEntries == 0 {
		C.Cache.MaxEntries = 50
	}
}

func initRedis(C *Config) {
	if v := os.Getenv("REDIS_HOST"); v != "" {
		C.RedisClient.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		C.RedisClient.Port = v
	}
	if v := os.Getenv("REDIS_USERNAME"); v != "" {
		C.RedisClient.Username = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		C.RedisClient.Password = v
	}
	if C.RedisClient.Host == "" {
		C.RedisClient.Host = "localhost"
	}
	if C.RedisClient.Port == "" {
		C.RedisClient.Port = "6379"
	}
}

func initDatabase(C *Config) {
	if v := os.Getenv("MYSQL_HOST"); v != "" {
		C.Database.MySql.Host = v
	}
	if v := os.Getenv("MYSQL_PORT"); v != "" {
		C.Database.MySql.Port = v
	}
	if v := os.Getenv("MYSQL_USER"); v != "" {
		C.Database.MySql.User = v
	}
	if v := os.Getenv("MYSQL_PASSWORD"); v != "" {
		C.Database.MySql.Password = v
	}
	if v := os.Getenv("MYSQL_DATABASE"); v != "" {
		C.Database.MySql.Name = v
	}
	if C.Database.MySql.Port == "" {
		C.Database.MySql.Port = "3306"
	}
}

func initMessaging(C *Config) {
	if v := os.Getenv("PUBSUB_PROJECT_ID"); v != "" {
		C.Pubsub.ProjectID = v
	}
	if C.Pubsub.Topic == "" {
		C.Pubsub.Topic = "parse-events"
	}
	if v := os.Getenv("SERVICEBUS_NAMESPACE"); v != "" {
		C.ServiceBus.Namespace = v
	}
	if C.ServiceBus.Queue == "" {
		C.ServiceBus.Queue = "parse-events"
	}
}

package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Document store.
	StoreDriver     string `mapstructure:"STORE_DRIVER"`
	MongoConnStr    string `mapstructure:"MONGO_CONN_STR"`
	MongoDB         string `mapstructure:"MONGO_DB"`
	MongoCollection string `mapstructure:"MONGO_COLLECTION"`

	// Language model.
	GeminiAPIKey string        `mapstructure:"GEMINI_API_KEY"`
	LLMProvider  string        `mapstructure:"LLM_PROVIDER"`
	LLMEndpoint  string        `mapstructure:"LLM_ENDPOINT"`
	GeminiModel  string        `mapstructure:"GEMINI_MODEL"`
	LLMTimeout   time.Duration `mapstructure:"LLM_TIMEOUT"`
	IntentStrict bool          `mapstructure:"INTENT_STRICT"`

	// Redis transcript store. Disabled when RedisAddr is empty.
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	RedisHistoryDB int           `mapstructure:"REDIS_HISTORY_DB"`
	HistoryTTL     time.Duration `mapstructure:"HISTORY_TTL"`
	HistoryLimit   int           `mapstructure:"HISTORY_LIMIT"`
}

const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"

	LLMProviderPaLM   = "palm"
	LLMProviderGemini = "gemini"

	DefaultLLMEndpoint = "https://generativelanguage.googleapis.com/v1beta2/models/text-bison-001:generateText"
)

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	v.SetDefault("STORE_DRIVER", StoreDriverMongo)
	v.SetDefault("MONGO_CONN_STR", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "AppointmentDB")
	v.SetDefault("MONGO_COLLECTION", "Appointments")

	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("LLM_PROVIDER", LLMProviderPaLM)
	v.SetDefault("LLM_ENDPOINT", DefaultLLMEndpoint)
	v.SetDefault("GEMINI_MODEL", "models/gemini-1.5-flash")
	v.SetDefault("LLM_TIMEOUT", time.Duration(0))
	v.SetDefault("INTENT_STRICT", false)

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_HISTORY_DB", 0)
	v.SetDefault("HISTORY_TTL", 30*time.Minute)
	v.SetDefault("HISTORY_LIMIT", 20)
}

// Load reads configuration from an optional .env file, an optional
// config.yaml in "." or "./config", and the environment, in rising priority.
func Load(v *viper.Viper) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig populates AppConfig from the global viper instance.
func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// HistoryEnabled reports whether a Redis transcript store is configured.
func (c Config) HistoryEnabled() bool {
	return c.RedisAddr != ""
}

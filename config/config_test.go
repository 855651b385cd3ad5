package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("MONGO_CONN_STR", "")

	cfg, err := Load(viper.New())
	req.NoError(err)

	req.Equal("5000", cfg.AppPort)
	req.Equal(StoreDriverMongo, cfg.StoreDriver)
	req.Equal("AppointmentDB", cfg.MongoDB)
	req.Equal("Appointments", cfg.MongoCollection)
	req.Equal(LLMProviderPaLM, cfg.LLMProvider)
	req.Equal(DefaultLLMEndpoint, cfg.LLMEndpoint)
	req.Equal(30*time.Minute, cfg.HistoryTTL)
	req.False(cfg.HistoryEnabled())
	req.False(cfg.IntentStrict)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	req := require.New(t)
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("MONGO_CONN_STR", "mongodb://db:27017")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("LLM_TIMEOUT", "15s")
	t.Setenv("INTENT_STRICT", "true")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load(viper.New())
	req.NoError(err)

	req.Equal("secret", cfg.GeminiAPIKey)
	req.Equal("mongodb://db:27017", cfg.MongoConnStr)
	req.Equal(StoreDriverMemory, cfg.StoreDriver)
	req.Equal(15*time.Second, cfg.LLMTimeout)
	req.True(cfg.IntentStrict)
	req.True(cfg.HistoryEnabled())
}

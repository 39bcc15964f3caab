package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/AnshNarg/bit-coin/model"
	"github.com/joho/godotenv"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

// LoadConfigs reads the 'config' environment variable (a JSON blob, loaded
// from .env when present) into typed settings. A missing variable falls back
// to demo defaults so the server runs out of the box.
func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	cfg := defaultConfig()

	rawJson := os.Getenv("config")
	if rawJson != "" {
		if err := json.Unmarshal([]byte(rawJson), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StartingBalance <= 0 {
		cfg.StartingBalance = 100000
	}

	return &SystemConfigs{Config: cfg}, nil
}

func defaultConfig() *model.EnvConfig {
	return &model.EnvConfig{
		Port:            "8080",
		Environment:     "development",
		JwtSecret:       "demo-secret-change-me",
		CoinGeckoUrl:    "https://api.coingecko.com/api/v3",
		StartingBalance: 100000,
	}
}

// ConfigManager hot-swaps runtime flags without restarting the server
type ConfigManager struct {
	value atomic.Value
}

func NewConfigManager(initial *model.RuntimeConfig) *ConfigManager {
	cm := &ConfigManager{}
	cm.value.Store(initial)
	return cm
}

func (cm *ConfigManager) GetConfig() *model.RuntimeConfig {
	return cm.value.Load().(*model.RuntimeConfig)
}

func (cm *ConfigManager) UpdateConfig(newCfg *model.RuntimeConfig) {
	cm.value.Store(newCfg)
}

// DefaultRuntimeConfig enables everything a local demo needs
func DefaultRuntimeConfig() *model.RuntimeConfig {
	return &model.RuntimeConfig{
		FrontendUrls: []string{"http://localhost:3000"},
		RateLimiter:  true,
	}
}

package config

import (
	"os"
	"strconv"

	"github.com/samber/lo"

	"face-gateway/internal/logx"
)

var configLogger = logx.GetScope("config")

// Config holds the application configuration
type Config struct {
	AppEnv string
	Server struct {
		Addr string
	}
	Log struct {
		Level  string // debug, info, warn, error
		Format string // text, json
	}
	PG struct {
		URL          string
		MaxOpenConns int
		MaxIdleConns int
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	MQ struct {
		URL string // RabbitMQ URL
	}
	ES struct {
		Addrs    string // comma separated
		Username string
		Password string
	}
	JWT struct {
		HSSecret string
		Issuer   string
		Audience string
	}
	Device struct {
		BaseURL      string
		Username     string
		Password     string
		Simulated    bool   // explicit flag; never inferred from error type
		FacilityID   string // CPMA unit stamped on persisted readings
		KeepAliveLog string
	}
	Dedup struct {
		CacheWindowSec  int // tier-1 in-process window
		CacheMaxEntries int // sweep threshold for tier-1 cache
		StoreWindowMin  int // tier-2 durable window
	}
	Apollo struct {
		Enable    bool
		AppID     string
		Cluster   string
		Namespace string
		Addrs     string
		AccessKey string
	}
}

// Load loads config from env, and if enabled, overrides with Apollo values.
// Returns config, store, optional apollo closer, and error.
func Load() (*Config, *Store, func(), error) {
	cfg := &Config{}

	// env defaults
	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.Server.Addr = getEnv("SERVER_ADDR", ":8080")
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "text")
	cfg.PG.URL = getEnv("POSTGRES_URL", "")
	cfg.PG.MaxOpenConns = getInt("PG_MAX_OPEN", 10)
	cfg.PG.MaxIdleConns = getInt("PG_MAX_IDLE", 5)

	// Redis
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)

	// RabbitMQ
	cfg.MQ.URL = getEnv("RABBITMQ_URL", "")

	// Elasticsearch
	cfg.ES.Addrs = getEnv("ES_ADDRS", "")
	cfg.ES.Username = getEnv("ES_USERNAME", "")
	cfg.ES.Password = getEnv("ES_PASSWORD", "")

	// Operator bearer tokens (verification only; issuance lives elsewhere)
	cfg.JWT.HSSecret = getEnv("JWT_HS_SECRET", "")
	cfg.JWT.Issuer = getEnv("JWT_ISSUER", "")
	cfg.JWT.Audience = getEnv("JWT_AUDIENCE", "")

	// Access-control appliance
	cfg.Device.BaseURL = getEnv("DEVICE_API_URL", "http://192.168.50.160")
	cfg.Device.Username = getEnv("DEVICE_USERNAME", "admin")
	cfg.Device.Password = getEnv("DEVICE_PASSWORD", "")
	cfg.Device.Simulated = getBool("DEVICE_SIMULATED", false)
	cfg.Device.FacilityID = getEnv("DEVICE_FACILITY_ID", "1")
	cfg.Device.KeepAliveLog = getEnv("DEVICE_KEEPALIVE_LOG", "keepalive.txt")

	// Deduplication windows
	cfg.Dedup.CacheWindowSec = getInt("DEDUP_CACHE_WINDOW_SEC", 30)
	cfg.Dedup.CacheMaxEntries = getInt("DEDUP_CACHE_MAX_ENTRIES", 1000)
	cfg.Dedup.StoreWindowMin = getInt("DEDUP_STORE_WINDOW_MIN", 5)

	cfg.Apollo.Enable = getBool("APOLLO_ENABLE", false)
	cfg.Apollo.AppID = getEnv("APOLLO_APP_ID", "")
	cfg.Apollo.Cluster = getEnv("APOLLO_CLUSTER", "default")
	cfg.Apollo.Namespace = getEnv("APOLLO_NAMESPACE", "application")
	cfg.Apollo.Addrs = getEnv("APOLLO_ADDRS", "")
	cfg.Apollo.AccessKey = getEnv("APOLLO_ACCESS_KEY", "")

	store := NewStore(cfg)

	if cfg.Apollo.Enable {
		closer, err := overrideFromApollo(cfg, store)
		if err != nil {
			configLogger.Sugar().Errorf("apollo override failed: %v", err)
			return cfg, store, closer, err
		}
		return cfg, store, closer, nil
	}

	return cfg, store, nil, nil
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	return lo.Ternary(v != "", v, def)
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

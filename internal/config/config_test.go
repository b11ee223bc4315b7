package config

import "testing"

func TestLoad_EnvDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DEVICE_API_URL", "http://10.0.0.9")
	t.Setenv("DEVICE_SIMULATED", "true")
	t.Setenv("DEDUP_CACHE_WINDOW_SEC", "45")

	cfg, store, closer, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if closer != nil {
		defer closer()
	}
	if cfg.Device.BaseURL != "http://10.0.0.9" {
		t.Fatalf("device url=%q", cfg.Device.BaseURL)
	}
	if !cfg.Device.Simulated {
		t.Fatal("simulated flag not picked up")
	}
	if cfg.Dedup.CacheWindowSec != 45 {
		t.Fatalf("cache window=%d", cfg.Dedup.CacheWindowSec)
	}
	if cfg.Dedup.StoreWindowMin != 5 {
		t.Fatalf("store window default=%d", cfg.Dedup.StoreWindowMin)
	}
	if store.Get() != cfg {
		t.Fatal("store should hold loaded config")
	}
}

func TestStore_ValidatorRejectsUpdate(t *testing.T) {
	cfg := &Config{}
	cfg.Dedup.CacheWindowSec = 30
	store := NewStore(cfg)
	store.AddValidator(func(newCfg *Config, changed map[string]bool) error {
		if changed["dedup.cache_window_sec"] && newCfg.Dedup.CacheWindowSec <= 0 {
			return errNonPositiveWindow
		}
		return nil
	})

	bad := cloneConfig(cfg)
	bad.Dedup.CacheWindowSec = 0
	if ok := store.UpdateValidated(bad, map[string]bool{"dedup.cache_window_sec": true}); ok {
		t.Fatal("update with zero window should be rejected")
	}
	if store.Get().Dedup.CacheWindowSec != 30 {
		t.Fatalf("config mutated after rejected update: %d", store.Get().Dedup.CacheWindowSec)
	}

	good := cloneConfig(cfg)
	good.Dedup.CacheWindowSec = 60
	if ok := store.UpdateValidated(good, map[string]bool{"dedup.cache_window_sec": true}); !ok {
		t.Fatal("valid update rejected")
	}
	if store.Get().Dedup.CacheWindowSec != 60 {
		t.Fatalf("window=%d", store.Get().Dedup.CacheWindowSec)
	}
}

var errNonPositiveWindow = errString("dedup window must be positive")

type errString string

func (e errString) Error() string { return string(e) }

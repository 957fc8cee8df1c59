package config

import "testing"

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			GraphQL: GraphQLConfig{URL: "http://api/graphql"},
			Cache:   CacheConfig{Backend: CacheBackendMemory, Size: 16},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid memory", func(c *Config) {}, false},
		{"valid sqlite", func(c *Config) { c.Cache = CacheConfig{Backend: CacheBackendSQLite, SQLitePath: "x.db"} }, false},
		{"missing url", func(c *Config) { c.GraphQL.URL = "" }, true},
		{"zero size", func(c *Config) { c.Cache.Size = 0 }, true},
		{"sqlite without path", func(c *Config) { c.Cache = CacheConfig{Backend: CacheBackendSQLite} }, true},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "redis" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			if err := cfg.validate(); (err != nil) != tt.wantErr {
				t.Errorf("validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPServer.Port != 8080 || cfg.Cache.Backend != CacheBackendMemory {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Forms.SessionTTL.Minutes() != 30 || cfg.Options.TTL.Minutes() != 5 {
		t.Errorf("durations not parsed: %+v %+v", cfg.Forms, cfg.Options)
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = 30 * time.Second
	cfg.Store.URL = "https://worker.example.com"
	cfg.Blob.Endpoint = "https://account.r2.example.com"
	cfg.Blob.Bucket = "collector"
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	require.NoError(t, VerifyAgainstEmbeddedSchema(validConfig()))
}

func TestVerifyAgainstEmbeddedSchema_MissingFields(t *testing.T) {
	tbl := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"no listen", func(c *Config) { c.Server.Listen = "" }, "server.listen is required"},
		{"no timeout", func(c *Config) { c.Server.Timeout = 0 }, "server.timeout is required"},
		{"no store url", func(c *Config) { c.Store.URL = "" }, "store.url is required"},
		{"no blob endpoint", func(c *Config) { c.Blob.Endpoint = "" }, "blob.endpoint is required"},
		{"no blob bucket", func(c *Config) { c.Blob.Bucket = "" }, "blob.bucket is required"},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
}

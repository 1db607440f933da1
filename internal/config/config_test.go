package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "newsflow", cfg.Database.Name)
	assert.Equal(t, 5*time.Minute, cfg.Cache.NewsTTL)
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTTTL)
	assert.Equal(t, "https://gnews.io", cfg.News.BaseURL)
	assert.Equal(t, 10*time.Minute, cfg.News.RefreshInterval)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("NEWS_CACHE_TTL", "90s")
	t.Setenv("CACHE_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 90*time.Second, cfg.Cache.NewsTTL)
	assert.Equal(t, 3, cfg.Cache.DB)
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		Port:     "3307",
		User:     "svc",
		Password: "pw",
		Name:     "newsflow",
	}
	assert.Equal(t, "svc:pw@tcp(db.internal:3307)/newsflow?parseTime=1&loc=UTC", db.DSN())
}

func TestCacheAddr(t *testing.T) {
	c := CacheConfig{Host: "cache.internal", Port: "6380"}
	assert.Equal(t, "cache.internal:6380", c.Addr())
}

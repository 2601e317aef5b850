package config

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnStringAssemblesFromParts(t *testing.T) {
	cfg := DBConfig{
		Host:     "ep-cool-night.eu-central-1.aws.neon.tech",
		User:     "portfolio",
		Password: "p@ss/word",
		Name:     "neondb",
	}

	u, err := url.Parse(cfg.ConnString())
	require.NoError(t, err)

	assert.Equal(t, "postgresql", u.Scheme)
	assert.Equal(t, cfg.Host, u.Host)
	assert.Equal(t, "/neondb", u.Path)
	assert.Equal(t, "portfolio", u.User.Username())
	pass, _ := u.User.Password()
	assert.Equal(t, "p@ss/word", pass)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
	assert.Empty(t, u.Query().Get("channel_binding"))
}

func TestConnStringHonoursOverrides(t *testing.T) {
	cfg := DBConfig{Host: "localhost:5432", User: "u", Password: "p", Name: "db", SSLMode: "disable", ChannelBinding: "require"}
	u, err := url.Parse(cfg.ConnString())
	require.NoError(t, err)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
	assert.Equal(t, "require", u.Query().Get("channel_binding"))

	cfg.DSN = "postgres://other/db"
	assert.Equal(t, "postgres://other/db", cfg.ConnString())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("NEXT_PUBLIC_SITE_URL", "https://example.dev")
	t.Setenv("APP_REVALIDATE", "30m")
	t.Setenv("PGHOST", "db.internal")
	t.Setenv("PGUSER", "reader")
	t.Setenv("PGPASSWORD", "secret")
	t.Setenv("PGDATABASE", "portfolio")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "https://example.dev", cfg.App.SiteURL)
	assert.Equal(t, 30*time.Minute, cfg.App.Revalidate)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "reader", cfg.DB.User)
	assert.Equal(t, "secret", cfg.DB.Password)
	assert.Equal(t, "portfolio", cfg.DB.Name)
	assert.Equal(t, "require", cfg.DB.SSLMode)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.App.Revalidate)
	assert.NotEmpty(t, cfg.App.Port)
}

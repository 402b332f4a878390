package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret-key-must-be-at-least-32-characters-long"

func TestLoad_SQLiteFromEnv(t *testing.T) {
	// Given
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SERVICE", "ifclub.db")
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("JWT_EXPIRY", "15m")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	// When
	cfg, err := Load("test")

	// Then
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "ifclub.db", cfg.GetDSN())
	assert.Equal(t, 15*time.Minute, cfg.JWT.Expiry)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SERVICE", "ifclub.db")
	t.Setenv("JWT_SECRET", "short")

	_, err := Load("test")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:       AppConfig{Port: 8080},
			Database:  DatabaseConfig{Driver: DriverPostgres, Host: "localhost", Service: "ifclub", User: "u", Password: "p"},
			JWT:       JWTConfig{Secret: testSecret, Expiry: time.Minute, RefreshExpiry: time.Hour},
			Auth:      AuthConfig{BcryptCost: 10},
			RateLimit: RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 5},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mongo" }, true},
		{"missing host", func(c *Config) { c.Database.Host = "" }, true},
		{"sqlite needs only path", func(c *Config) { c.Database = DatabaseConfig{Driver: DriverSQLite, Service: "x.db"} }, false},
		{"refresh shorter than access", func(c *Config) { c.JWT.RefreshExpiry = time.Second }, true},
		{"bcrypt cost too low", func(c *Config) { c.Auth.BcryptCost = 3 }, true},
		{"rate limit burst zero", func(c *Config) { c.RateLimit.Burst = 0 }, true},
		{"rate limit disabled ignores burst", func(c *Config) { c.RateLimit = RateLimitConfig{} }, false},
		{"bad port", func(c *Config) { c.App.Port = 0 }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: 1521, Service: "ORCL", User: "app", Password: "p@ss", SSL: true}

	db.Driver = DriverOracle
	assert.Equal(t, "oracle://app:p%40ss@db:1521/ORCL?SSL=true", (&Config{Database: db}).GetDSN())

	db.Driver, db.Port, db.SSL = DriverPostgres, 5432, false
	assert.Equal(t, "postgres://app:p%40ss@db:5432/ORCL?TimeZone=UTC&sslmode=disable", (&Config{Database: db}).GetDSN())

	db.Driver, db.Port = DriverMySQL, 3306
	assert.Equal(t, "app:p@ss@tcp(db:3306)/ORCL?charset=utf8mb4&parseTime=True&loc=UTC", (&Config{Database: db}).GetDSN())
}

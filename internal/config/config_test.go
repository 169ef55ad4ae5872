package config

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: "8080"},
		JWT:    JWTConfig{AccessTokenDuration: time.Hour},
		Security: SecurityConfig{
			RateLimitPerSecond: 5,
			RateLimitBurst:     10,
		},
		Statement: StatementConfig{
			Layout:   "english",
			MaxBytes: 1024,
		},
		Verification: VerificationConfig{
			MinimumMonthlyIncome:    decimal.NewFromInt(85000),
			DeclaredIncomeTolerance: decimal.RequireFromString("0.8"),
		},
		Audit: AuditConfig{
			Retention:     365 * 24 * time.Hour,
			PurgeInterval: time.Hour,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "kaspi layout is accepted",
			mutate:  func(c *Config) { c.Statement.Layout = "Kaspi" },
			wantErr: false,
		},
		{
			name:    "zero audit retention keeps entries",
			mutate:  func(c *Config) { c.Audit = AuditConfig{} },
			wantErr: false,
		},
		{
			name:        "negative audit retention",
			mutate:      func(c *Config) { c.Audit.Retention = -time.Hour },
			wantErr:     true,
			errorString: "audit retention cannot be negative",
		},
		{
			name:        "retention without purge interval",
			mutate:      func(c *Config) { c.Audit.PurgeInterval = 0 },
			wantErr:     true,
			errorString: "audit purge interval must be positive when retention is set",
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Server.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.Server.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "unknown layout",
			mutate:      func(c *Config) { c.Statement.Layout = "swift" },
			wantErr:     true,
			errorString: "invalid statement layout 'swift'",
		},
		{
			name:        "zero size limit",
			mutate:      func(c *Config) { c.Statement.MaxBytes = 0 },
			wantErr:     true,
			errorString: "invalid statement size limit 0",
		},
		{
			name:        "negative minimum income",
			mutate:      func(c *Config) { c.Verification.MinimumMonthlyIncome = decimal.NewFromInt(-1) },
			wantErr:     true,
			errorString: "minimum monthly income cannot be negative",
		},
		{
			name:        "tolerance above one",
			mutate:      func(c *Config) { c.Verification.DeclaredIncomeTolerance = decimal.RequireFromString("1.5") },
			wantErr:     true,
			errorString: "invalid declared income tolerance 1.5",
		},
		{
			name:        "burst below rate",
			mutate:      func(c *Config) { c.Security.RateLimitBurst = 1 },
			wantErr:     true,
			errorString: "invalid rate limit burst 1",
		},
		{
			name:        "non-positive token duration",
			mutate:      func(c *Config) { c.JWT.AccessTokenDuration = 0 },
			wantErr:     true,
			errorString: "JWT access token duration must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestConfig_ValidateCollectsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = "abc"
	cfg.Statement.Layout = "swift"

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
	assert.Contains(t, err.Error(), "invalid statement layout")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "english", cfg.Statement.Layout)
	assert.Equal(t, int64(2<<20), cfg.Statement.MaxBytes)
	assert.True(t, cfg.Verification.MinimumMonthlyIncome.Equal(decimal.NewFromInt(85000)))
	assert.True(t, cfg.Verification.DeclaredIncomeTolerance.Equal(decimal.RequireFromString("0.8")))
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, 5*365*24*time.Hour, cfg.Audit.Retention)
	assert.Equal(t, 24*time.Hour, cfg.Audit.PurgeInterval)
	assert.NotNil(t, cfg.JWT.PrivateKey)
	assert.True(t, cfg.IsTesting())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("STATEMENT_LAYOUT", "kaspi")
	t.Setenv("STATEMENT_EXCLUDED_SOURCES", " from savings jar , ,from piggy bank")
	t.Setenv("VERIFICATION_MINIMUM_MONTHLY_INCOME", "120000.50")
	t.Setenv("VERIFICATION_DECLARED_TOLERANCE", "not-a-number")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "kaspi", cfg.Statement.Layout)
	assert.Equal(t, []string{"from savings jar", "from piggy bank"}, cfg.Statement.ExcludedSources)
	assert.Equal(t, "120000.5", cfg.Verification.MinimumMonthlyIncome.String())
	assert.Equal(t, "0.8", cfg.Verification.DeclaredIncomeTolerance.String())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_ProductionRequiresKeys(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "must be set in production")
}

func TestLoad_KeysFromEnvironment(t *testing.T) {
	privateKey, publicKey, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	publicDER, err := x509.MarshalPKIXPublicKey(publicKey)
	require.NoError(t, err)
	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privateKey)})
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})

	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_PRIVATE_KEY", base64.StdEncoding.EncodeToString(privatePEM))
	t.Setenv("JWT_PUBLIC_KEY", base64.StdEncoding.EncodeToString(publicPEM))

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, privateKey.Equal(cfg.JWT.PrivateKey))
	assert.True(t, publicKey.Equal(cfg.JWT.PublicKey))
}

func TestLoad_InvalidKeyEncoding(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("JWT_PRIVATE_KEY", "%%%")
	t.Setenv("JWT_PUBLIC_KEY", "%%%")

	_, err := Load()

	assert.ErrorContains(t, err, "failed to decode JWT_PRIVATE_KEY")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", db.DSN())
}

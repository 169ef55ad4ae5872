package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"credit-backoffice/internal/statement"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	JWT          JWTConfig
	Security     SecurityConfig
	Statement    StatementConfig
	Verification VerificationConfig
	Audit        AuditConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	LogLevel         string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	MigrationsPath  string
}

type JWTConfig struct {
	AccessTokenDuration time.Duration
	PrivateKey          *rsa.PrivateKey
	PublicKey           *rsa.PublicKey
	Issuer              string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// StatementConfig controls how uploaded statements are parsed
type StatementConfig struct {
	Layout          string
	MaxBytes        int64
	ExcludedSources []string
}

// VerificationConfig holds the income decision thresholds
type VerificationConfig struct {
	MinimumMonthlyIncome    decimal.Decimal
	DeclaredIncomeTolerance decimal.Decimal
}

// AuditConfig controls how long audit entries are kept. A zero retention
// keeps them forever.
type AuditConfig struct {
	Retention     time.Duration
	PurgeInterval time.Duration
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "backoffice_user"),
			Password:        getEnv("DB_PASSWORD", "backoffice_password"),
			Name:            getEnv("DB_NAME", "credit_backoffice"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", true),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
		JWT: JWTConfig{
			AccessTokenDuration: getDurationEnv("JWT_ACCESS_TOKEN_DURATION", 8*time.Hour),
			Issuer:              getEnv("JWT_ISSUER", "credit-backoffice"),
		},
		Statement: StatementConfig{
			Layout:          getEnv("STATEMENT_LAYOUT", statement.LayoutEnglish),
			MaxBytes:        int64(getIntEnv("STATEMENT_MAX_BYTES", 2<<20)),
			ExcludedSources: getListEnv("STATEMENT_EXCLUDED_SOURCES"),
		},
		Verification: VerificationConfig{
			MinimumMonthlyIncome:    getDecimalEnv("VERIFICATION_MINIMUM_MONTHLY_INCOME", decimal.NewFromInt(85000)),
			DeclaredIncomeTolerance: getDecimalEnv("VERIFICATION_DECLARED_TOLERANCE", decimal.RequireFromString("0.8")),
		},
		Audit: AuditConfig{
			Retention:     getDurationEnv("AUDIT_RETENTION", 5*365*24*time.Hour),
			PurgeInterval: getDurationEnv("AUDIT_PURGE_INTERVAL", 24*time.Hour),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	var err error
	config.JWT.PrivateKey, config.JWT.PublicKey, err = config.loadJWTKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to load RSA keys: %w", err)
	}

	return config, nil
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Server.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := statement.LayoutByName(c.Statement.Layout); err != nil {
		problems = append(problems, fmt.Sprintf("invalid statement layout '%s': must be one of [%s %s]",
			c.Statement.Layout, statement.LayoutEnglish, statement.LayoutKaspi))
	}

	if c.Statement.MaxBytes < 1 {
		problems = append(problems, fmt.Sprintf("invalid statement size limit %d: must be positive", c.Statement.MaxBytes))
	}

	if c.Verification.MinimumMonthlyIncome.IsNegative() {
		problems = append(problems, "minimum monthly income cannot be negative")
	}

	tolerance := c.Verification.DeclaredIncomeTolerance
	if tolerance.IsNegative() || tolerance.GreaterThan(decimal.NewFromInt(1)) {
		problems = append(problems, fmt.Sprintf("invalid declared income tolerance %s: must be between 0 and 1", tolerance))
	}

	if c.Security.RateLimitPerSecond < 1 {
		problems = append(problems, fmt.Sprintf("invalid rate limit %d: must be at least 1", c.Security.RateLimitPerSecond))
	}
	if c.Security.RateLimitBurst < c.Security.RateLimitPerSecond {
		problems = append(problems, fmt.Sprintf("invalid rate limit burst %d: must be at least the per-second rate", c.Security.RateLimitBurst))
	}

	if c.Audit.Retention < 0 {
		problems = append(problems, "audit retention cannot be negative")
	}
	if c.Audit.Retention > 0 && c.Audit.PurgeInterval <= 0 {
		problems = append(problems, "audit purge interval must be positive when retention is set")
	}

	if c.JWT.AccessTokenDuration <= 0 {
		problems = append(problems, "JWT access token duration must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Server.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(strings.TrimSpace(value)); err == nil {
			return d
		}
	}
	return defaultValue
}

func getListEnv(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// loadJWTKeys loads RSA keys for JWT signing and verification
// Priority order:
// 1. If JWT_PRIVATE_KEY and JWT_PUBLIC_KEY env vars are set, use them
// 2. In production, missing keys are an error
// 3. Otherwise a fresh keypair is generated; tokens do not survive a restart
func (c *Config) loadJWTKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyB64 := os.Getenv("JWT_PRIVATE_KEY")
	publicKeyB64 := os.Getenv("JWT_PUBLIC_KEY")

	if privateKeyB64 != "" && publicKeyB64 != "" {
		slog.Info("Loading RSA keypair from environment variables")
		return loadKeysFromEnvVars(privateKeyB64, publicKeyB64)
	}

	if c.IsProduction() {
		return nil, nil, errors.New("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY environment variables must be set in production environments")
	}

	slog.Info("Generating ephemeral RSA keypair for JWT", "environment", c.Server.Environment)
	return GenerateRSAKeyPair()
}

func loadKeysFromEnvVars(privateKeyB64, publicKeyB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyBytes, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PRIVATE_KEY: %w", err)
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PUBLIC_KEY: %w", err)
	}

	privateKey, err := loadRSAPrivateKey(privateKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	publicKey, err := loadRSAPublicKey(publicKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	return privateKey, publicKey, nil
}

func (c *Config) loadCORSAllowOrigins() []string {
	origins := getListEnv("CORS_ALLOW_ORIGINS")
	if len(origins) == 0 {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, allowing all origins")
		}
		return []string{"*"}
	}
	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// loadRSAPrivateKey accepts PKCS1 or PKCS8 PEM
func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	if privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return privateKey, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	privateKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}
	return privateKey, nil
}

func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}

package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	StorageDriver string
	DatabaseURL   string
	SQLitePath    string
	EnableDBCheck bool
	MigrationsURL string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RateLimit          string
	CORSAllowedOrigins []string

	StrictAccountRefs bool
	ChartRolesFile    string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_DRIVER", DriverPostgres)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "ledger.db")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "bookkeeping-ledger")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("LEDGER_STRICT_ACCOUNT_REFS", false)
	viper.SetDefault("CHART_ROLES_FILE", "")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		StorageDriver:     strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_DRIVER"))),
		DatabaseURL:       viper.GetString("PGSQL_URL"),
		SQLitePath:        viper.GetString("SQLITE_PATH"),
		EnableDBCheck:     viper.GetBool("ENABLE_DB_CHECK"),
		MigrationsURL:     "file://" + viper.GetString("MIGRATIONS_PATH"),
		JWTSecret:         viper.GetString("JWT_SECRET"),
		JWTIssuer:         viper.GetString("JWT_ISSUER"),
		RateLimit:         viper.GetString("RATE_LIMIT"),
		StrictAccountRefs: viper.GetBool("LEDGER_STRICT_ACCOUNT_REFS"),
		ChartRolesFile:    viper.GetString("CHART_ROLES_FILE"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORAGE_DRIVER is %s", DriverPostgres)
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH must be set when STORAGE_DRIVER is %s", DriverSQLite)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q (want %s or %s)", cfg.StorageDriver, DriverPostgres, DriverSQLite)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// LoadChartRoles returns the default roles, or the roles read from path when it is set.
// The file is YAML (or any format viper detects from the extension) with the keys of
// domain.ChartRoles. A key present in the file replaces the default value as a whole;
// missing keys keep their default.
func LoadChartRoles(path string) (domain.ChartRoles, error) {
	if path == "" {
		return domain.DefaultChartRoles(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return domain.ChartRoles{}, fmt.Errorf("read chart roles file %s: %w", path, err)
	}

	var fromFile domain.ChartRoles
	if err := v.Unmarshal(&fromFile); err != nil {
		return domain.ChartRoles{}, fmt.Errorf("decode chart roles file %s: %w", path, err)
	}

	roles := overlayRoles(domain.DefaultChartRoles(), fromFile)
	if err := roles.Validate(); err != nil {
		return domain.ChartRoles{}, fmt.Errorf("chart roles file %s: %w", path, err)
	}
	return roles, nil
}

func overlayRoles(base, over domain.ChartRoles) domain.ChartRoles {
	pick := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	pick(&base.CapitalAccount, over.CapitalAccount)
	pick(&base.DrawingAccount, over.DrawingAccount)
	pick(&base.IncomeSummaryAccount, over.IncomeSummaryAccount)
	pick(&base.OtherAssetBucket, over.OtherAssetBucket)
	pick(&base.OtherContraBucket, over.OtherContraBucket)
	pick(&base.OtherLiabilityBucket, over.OtherLiabilityBucket)
	pick(&base.OtherExpenseBucket, over.OtherExpenseBucket)

	if over.COGSAccounts != nil {
		base.COGSAccounts = over.COGSAccounts
	}
	if over.AssetBuckets != nil {
		base.AssetBuckets = over.AssetBuckets
	}
	if over.ContraAssetBuckets != nil {
		base.ContraAssetBuckets = over.ContraAssetBuckets
	}
	if over.LiabilityBuckets != nil {
		base.LiabilityBuckets = over.LiabilityBuckets
	}
	if over.ExpenseBuckets != nil {
		base.ExpenseBuckets = over.ExpenseBuckets
	}
	return base
}

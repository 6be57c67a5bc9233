package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort                    = "8080"
	defaultDBConnectMaxElapsed     = 30 * time.Second
	defaultRateCacheTTL            = 10 * time.Minute
	defaultRateLimit               = "300-M"
	defaultBusinessTimezone        = "Asia/Kolkata"
	defaultBatchPricingConcurrency = 4
	defaultShopName                = "Jewellery Billing"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL         string
	Port                string
	IsProduction        bool
	DBConnectMaxElapsed time.Duration

	// RedisURL enables the rate snapshot cache when set.
	RedisURL     string
	RateCacheTTL time.Duration

	// RateLimit is a ulule/limiter formatted rate, e.g. "300-M".
	RateLimit          string
	CORSAllowedOrigins []string

	BusinessTimezone        string
	BusinessLocation        *time.Location
	BatchPricingConcurrency int
	ShopName                string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("DB_CONNECT_MAX_ELAPSED", defaultDBConnectMaxElapsed.String())
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("RATE_CACHE_TTL", defaultRateCacheTTL.String())
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("BUSINESS_TIMEZONE", defaultBusinessTimezone)
	v.SetDefault("BATCH_PRICING_CONCURRENCY", defaultBatchPricingConcurrency)
	v.SetDefault("SHOP_NAME", defaultShopName)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:  v.GetString("PGSQL_URL"),
		Port:         v.GetString("PORT"),
		IsProduction: v.GetBool("IS_PRODUCTION"),
		RedisURL:     v.GetString("REDIS_URL"),
		RateLimit:    v.GetString("RATE_LIMIT"),
		ShopName:     v.GetString("SHOP_NAME"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}
	if cfg.ShopName == "" {
		cfg.ShopName = defaultShopName
	}

	cfg.DBConnectMaxElapsed = durationOrDefault(v, "DB_CONNECT_MAX_ELAPSED", defaultDBConnectMaxElapsed)
	cfg.RateCacheTTL = durationOrDefault(v, "RATE_CACHE_TTL", defaultRateCacheTTL)

	cfg.BatchPricingConcurrency = v.GetInt("BATCH_PRICING_CONCURRENCY")
	if cfg.BatchPricingConcurrency <= 0 {
		log.Printf("Warning: Invalid value for BATCH_PRICING_CONCURRENCY. Defaulting to %d.\n", defaultBatchPricingConcurrency)
		cfg.BatchPricingConcurrency = defaultBatchPricingConcurrency
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.BusinessTimezone = v.GetString("BUSINESS_TIMEZONE")
	loc, err := time.LoadLocation(cfg.BusinessTimezone)
	if err != nil {
		log.Printf("Warning: Invalid value for BUSINESS_TIMEZONE ('%s'). Defaulting to %s.\n", cfg.BusinessTimezone, defaultBusinessTimezone)
		cfg.BusinessTimezone = defaultBusinessTimezone
		if loc, err = time.LoadLocation(defaultBusinessTimezone); err != nil {
			// No tz database on the host.
			loc = time.FixedZone("IST", 5*3600+30*60)
		}
	}
	cfg.BusinessLocation = loc

	return cfg, nil
}

func durationOrDefault(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

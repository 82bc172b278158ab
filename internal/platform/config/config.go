package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Quote provider settings
	QuoteAPIURL   string
	QuoteAPIKey   string
	QuoteTimeout  time.Duration
	QuoteCacheTTL time.Duration

	// Cash granted to a freshly registered user, in minor units.
	StartingBalanceCents int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "stock-trading-app")
	viper.SetDefault("QUOTE_API_URL", "http://localhost:9090")
	viper.SetDefault("QUOTE_API_KEY", "")
	viper.SetDefault("QUOTE_TIMEOUT", "5s")
	viper.SetDefault("QUOTE_CACHE_TTL", "30s")
	viper.SetDefault("STARTING_BALANCE_CENTS", int64(1000000)) // $10,000.00

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.QuoteAPIURL = viper.GetString("QUOTE_API_URL")
	cfg.QuoteAPIKey = viper.GetString("QUOTE_API_KEY")

	quoteTimeoutStr := viper.GetString("QUOTE_TIMEOUT")
	quoteTimeout, err := time.ParseDuration(quoteTimeoutStr)
	if err != nil {
		quoteTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for QUOTE_TIMEOUT ('%s'). Defaulting to %s.\n", quoteTimeoutStr, quoteTimeout)
	}
	cfg.QuoteTimeout = quoteTimeout

	cacheTTLStr := viper.GetString("QUOTE_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil {
		cacheTTL = 30 * time.Second
		log.Printf("Warning: Invalid value for QUOTE_CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL)
	}
	cfg.QuoteCacheTTL = cacheTTL

	cfg.StartingBalanceCents = viper.GetInt64("STARTING_BALANCE_CENTS")
	if cfg.StartingBalanceCents < 0 {
		log.Printf("Warning: STARTING_BALANCE_CENTS is negative (%d). Defaulting to 0.\n", cfg.StartingBalanceCents)
		cfg.StartingBalanceCents = 0
	}

	return cfg, nil
}

package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RefreshTokenExpiryDuration time.Duration

	// OTP settings
	OTPDigits         int
	OTPExpiryDuration time.Duration

	// Notification provider selection: "log", "twilio", "whatsapp".
	// Providers are tried in order; delivery always degrades to the log
	// sender rather than failing the primary operation.
	NotificationProviders []string
	TwilioAccountSID      string
	TwilioAuthToken       string
	TwilioFromNumber      string
	WhatsAppAPIURL        string
	WhatsAppAPIToken      string

	// AppointmentUpdateConflictCheck enables the hardened update path that
	// re-runs the overlap scan when appointment boundaries change. Off by
	// default to match the historical behavior.
	AppointmentUpdateConflictCheck bool
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Defaults are suitable for local development only.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "bookora-backend")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("OTP_DIGITS", 6)
	viper.SetDefault("OTP_EXPIRY_DURATION", "5m")
	viper.SetDefault("NOTIFICATION_PROVIDERS", []string{"log"})
	viper.SetDefault("TWILIO_ACCOUNT_SID", "")
	viper.SetDefault("TWILIO_AUTH_TOKEN", "")
	viper.SetDefault("TWILIO_FROM_NUMBER", "")
	viper.SetDefault("WHATSAPP_API_URL", "")
	viper.SetDefault("WHATSAPP_API_TOKEN", "")
	viper.SetDefault("APPOINTMENT_UPDATE_CONFLICT_CHECK", false)

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
		log.Println("Warning: JWT_SECRET not set. Using default insecure key. THIS IS NOT FOR PRODUCTION.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshExpiryDuration, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiryDuration = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiryDuration)
	}
	cfg.RefreshTokenExpiryDuration = refreshExpiryDuration

	cfg.OTPDigits = viper.GetInt("OTP_DIGITS")
	if cfg.OTPDigits <= 0 {
		cfg.OTPDigits = 6
	}

	otpExpiryStr := viper.GetString("OTP_EXPIRY_DURATION")
	otpExpiryDuration, err := time.ParseDuration(otpExpiryStr)
	if err != nil {
		otpExpiryDuration = 5 * time.Minute
		log.Printf("Warning: Invalid value for OTP_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", otpExpiryStr, otpExpiryDuration)
	}
	cfg.OTPExpiryDuration = otpExpiryDuration

	cfg.NotificationProviders = viper.GetStringSlice("NOTIFICATION_PROVIDERS")
	if len(cfg.NotificationProviders) == 0 {
		cfg.NotificationProviders = []string{"log"}
	}
	cfg.TwilioAccountSID = viper.GetString("TWILIO_ACCOUNT_SID")
	cfg.TwilioAuthToken = viper.GetString("TWILIO_AUTH_TOKEN")
	cfg.TwilioFromNumber = viper.GetString("TWILIO_FROM_NUMBER")
	cfg.WhatsAppAPIURL = viper.GetString("WHATSAPP_API_URL")
	cfg.WhatsAppAPIToken = viper.GetString("WHATSAPP_API_TOKEN")

	cfg.AppointmentUpdateConflictCheck = viper.GetBool("APPOINTMENT_UPDATE_CONFLICT_CHECK")

	return cfg, nil
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/o2scale/goodboyholidayhomesverce/internal/utils"
)

const AppName = "booking-service"

type Config struct {
	AppPort string
	AppURL  string

	// Record store
	DataFile       string
	StoreOpTimeout time.Duration

	// Auth
	JWTSecret []byte
	TokenTTL  time.Duration

	// Outbound notifications (optional; empty disables the channel)
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridSandbox   bool
	OpsEmail          string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioFromPhone   string

	// Daily pending-booking digest
	DigestCronSpec string

	// Hardening switch: also enforce the submission-time availability
	// policy server-side inside booking creation.
	EnforceSubmissionCheck bool
}

func LoadConfig() *Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		utils.Logger.Fatal("JWT_SECRET env var is missing")
	}

	cfg := &Config{
		AppPort:                envOr("APP_PORT", "8080"),
		AppURL:                 envOr("APP_URL", "http://localhost:8080"),
		DataFile:               envOr("DATA_FILE", "data.json"),
		StoreOpTimeout:         envDurationOr("STORE_OP_TIMEOUT", 5*time.Second),
		JWTSecret:              []byte(secret),
		TokenTTL:               envDurationOr("TOKEN_TTL", 24*time.Hour),
		SendGridAPIKey:         os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail:      envOr("SENDGRID_FROM_EMAIL", "bookings@goodboyholidayhomes.com"),
		SendGridSandbox:        envBool("SENDGRID_SANDBOX"),
		OpsEmail:               envOr("OPS_EMAIL", "team@goodboyholidayhomes.com"),
		TwilioAccountSID:       os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:        os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromPhone:        os.Getenv("TWILIO_FROM_PHONE"),
		DigestCronSpec:         envOr("DIGEST_CRON", "0 8 * * *"),
		EnforceSubmissionCheck: envBool("ENFORCE_SUBMISSION_CHECK"),
	}

	if cfg.SendGridAPIKey == "" {
		utils.Logger.Warn("SENDGRID_API_KEY not set, email notifications disabled")
	}
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		utils.Logger.Warn("Twilio credentials not set, SMS notifications disabled")
	}

	return cfg
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func envDurationOr(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		utils.Logger.Warnf("Invalid %s %q, defaulting to %s", key, v, def)
		return def
	}
	return d
}

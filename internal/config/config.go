package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config is read once from the environment at startup and passed down
// explicitly; nothing else in the tree touches os.Getenv.
type Config struct {
	Port        string
	FrontendURL string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr     string
	RedisPassword string

	SessionSecret string

	SMSGatewayURL string
	SMSToken      string
	SMSDevice     string

	WhatsAppURL      string
	WhatsAppToken    string
	WhatsAppTemplate string
	WhatsAppLanguage string
	WhatsAppImageURL string

	// Local trunk prefix "0" is rewritten to this country code when
	// normalizing phone numbers.
	CountryCode  string
	SupportPhone string

	// Direction of the stored currency rate: true means foreign amounts are
	// divided by in_due_inv_curr_val to reach the nominal currency, false
	// means multiplied.
	CurrencyRateDivides bool
}

func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "erp_auth"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		SessionSecret: getEnv("SESSION_SECRET", "secret"),

		SMSGatewayURL: getEnv("SMS_GATEWAY_URL", "https://semysms.net/api/3/sms.php"),
		SMSToken:      getEnv("SMS_TOKEN", ""),
		SMSDevice:     getEnv("SMS_DEVICE", "active"),

		WhatsAppURL:      getEnv("WHATSAPP_URL", ""),
		WhatsAppToken:    getEnv("WHATSAPP_TOKEN", ""),
		WhatsAppTemplate: getEnv("WHATSAPP_TEMPLATE", "invoice_remainder"),
		WhatsAppLanguage: getEnv("WHATSAPP_LANGUAGE", "ar"),
		WhatsAppImageURL: getEnv("WHATSAPP_IMAGE_URL", ""),

		CountryCode:  getEnv("COUNTRY_CODE", "218"),
		SupportPhone: getEnv("SUPPORT_PHONE", ""),

		CurrencyRateDivides: getEnvBool("CURRENCY_RATE_DIVIDES", true),
	}
}

// DSN builds a Postgres DSN for the given database name. Tenant databases
// live on the same server as the auth database and differ only by name.
func (c Config) DSN(dbName string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, dbName, c.DBSSLMode)
}

// InitDB opens the auth database (users, sessions).
func InitDB(cfg Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN(cfg.DBName)), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Str("database", cfg.DBName).Msg("failed to connect database")
	}
	return db
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

// Config is built once in main and passed to every component that needs it.
type Config struct {
	AppName     string   `env:"APP_NAME" envDefault:"agency-backoffice"`
	Port        int      `env:"PORT" envDefault:"8080"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	PrettyLogs  bool     `env:"PRETTY_LOGS" envDefault:"false"`
	PublicURL   string   `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`
	AppURL      string   `env:"APP_URL" envDefault:"http://localhost:3000"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	HTTPReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	HTTPWriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`

	// Relational store
	DatabaseDriver       string        `env:"DB_DRIVER" envDefault:"postgres"`
	DatabaseDSN          string        `env:"DATABASE_DSN" envDefault:""`
	DatabaseDebug        bool          `env:"DB_DEBUG" envDefault:"false"`
	DatabaseConnectTries int           `env:"DB_CONNECT_TRIES" envDefault:"10"`
	DatabaseMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DatabaseMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DatabaseConnMaxLife  time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`

	// DynamoDB (notifications)
	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT" envDefault:""`
	NotificationsTable string `env:"NOTIFICATIONS_TABLE" envDefault:"notifications"`

	// PaymentWebhookSecret signs POST /v1/webhooks/payments bodies (HMAC-SHA256).
	// Empty rejects every call to that route.
	PaymentWebhookSecret string `env:"PAYMENT_WEBHOOK_SECRET" envDefault:""`

	// Mercado Pago
	MercadoPagoAccessToken     string `env:"MERCADOPAGO_ACCESS_TOKEN" envDefault:""`
	MercadoPagoNotificationURL string `env:"MERCADOPAGO_NOTIFICATION_URL" envDefault:""`
	PaymentGatewayMock         bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`

	// SMTP
	SMTPHost     string `env:"SMTP_HOST" envDefault:""`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER" envDefault:""`
	SMTPPassword string `env:"SMTP_PASSWORD" envDefault:""`
	SMTPFrom     string `env:"SMTP_FROM" envDefault:"no-reply@agency.local"`

	// Auth
	JWTSecret   string `env:"JWT_SECRET" envDefault:""`
	AuthEnabled bool   `env:"AUTH_ENABLED" envDefault:"true"`
	// SeedAdminEmail creates an ADMIN user at startup when no admin exists.
	SeedAdminEmail string `env:"SEED_ADMIN_EMAIL" envDefault:""`
	SeedAdminName  string `env:"SEED_ADMIN_NAME" envDefault:"Administrador"`

	// Kafka payment events
	KafkaPaymentsEnabled bool     `env:"KAFKA_PAYMENTS_ENABLED" envDefault:"false"`
	KafkaBrokers         []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	KafkaPaymentsTopic   string   `env:"KAFKA_PAYMENTS_TOPIC" envDefault:"payment-confirmations"`
	KafkaConsumerGroup   string   `env:"KAFKA_CONSUMER_GROUP" envDefault:"agency-backoffice"`
}

// Load parses the process environment. `.env` is loaded by godotenv/autoload in main.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SMTPEnabled reports whether outbound email has a relay configured.
func (c Config) SMTPEnabled() bool {
	return c.SMTPHost != ""
}

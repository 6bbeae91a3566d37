package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (guild, DB connection, tokens), security settings
// - default: Values common across all environments (timeouts, concurrency, retry schedule), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Discord    DiscordConfig
	Reconciler ReconcilerConfig
	Retry      RetryConfig
	Invite     InviteConfig
	Mail       MailConfig
	Telemetry  TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"720h"`
}

type DiscordConfig struct {
	BotToken string `envconfig:"DISCORD_BOT_TOKEN" required:"true"`
	GuildID  string `envconfig:"DISCORD_GUILD_ID" required:"true"`
	// channel the single-use invites point at
	WelcomeChannelID string `envconfig:"DISCORD_WELCOME_CHANNEL_ID" required:"true"`
	// channel where the "accept rules" prompt is posted
	RulesChannelID string `envconfig:"DISCORD_RULES_CHANNEL_ID" required:"true"`
	VerifyButtonID string `envconfig:"DISCORD_VERIFY_BUTTON_ID" default:"accept_rules"`
	InviteBaseURL  string `envconfig:"DISCORD_INVITE_BASE_URL" default:"https://discord.gg/"`
}

type ReconcilerConfig struct {
	MaxConcurrent int64         `envconfig:"RECONCILER_MAX_CONCURRENT" default:"3"`
	FetchTimeout  time.Duration `envconfig:"RECONCILER_FETCH_TIMEOUT" default:"10s"`
	// upper bound for draining in-flight joins on shutdown
	DrainTimeout time.Duration `envconfig:"RECONCILER_DRAIN_TIMEOUT" default:"15s"`
}

type RetryConfig struct {
	MaxAttempts     uint64        `envconfig:"RETRY_MAX_ATTEMPTS" default:"3"`
	InitialInterval time.Duration `envconfig:"RETRY_INITIAL_INTERVAL" default:"250ms"`
	MaxInterval     time.Duration `envconfig:"RETRY_MAX_INTERVAL" default:"2s"`
	Multiplier      float64       `envconfig:"RETRY_MULTIPLIER" default:"2"`
	MaxElapsed      time.Duration `envconfig:"RETRY_MAX_ELAPSED" default:"8s"`
}

type InviteConfig struct {
	TTL time.Duration `envconfig:"INVITE_TTL" default:"24h"`
}

type MailConfig struct {
	// empty sender disables mail delivery
	FromEmail string `envconfig:"MAIL_FROM_EMAIL"`
	FromName  string `envconfig:"MAIL_FROM_NAME" default:"Community Team"`
	AWSRegion string `envconfig:"MAIL_AWS_REGION" default:"us-east-1"`
	Subject   string `envconfig:"MAIL_SUBJECT" default:"Your invitation to our Discord server"`
}

type TelemetryConfig struct {
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"invite-role-bridge"`
	// empty endpoint keeps tracing disabled
	Endpoint string `envconfig:"OTEL_EXPORTER_ENDPOINT"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *DiscordConfig) InviteURL(code string) string {
	return c.InviteBaseURL + code
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Reconciler.MaxConcurrent < 1 {
		return Config{}, fmt.Errorf("RECONCILER_MAX_CONCURRENT must be at least 1, got %d", cfg.Reconciler.MaxConcurrent)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       time.Hour,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Discord: DiscordConfig{
			BotToken:         "test-token",
			GuildID:          "1100000000000000001",
			WelcomeChannelID: "1100000000000000002",
			RulesChannelID:   "1100000000000000003",
			VerifyButtonID:   "accept_rules",
			InviteBaseURL:    "https://discord.gg/",
		},
		Reconciler: ReconcilerConfig{
			MaxConcurrent: 3,
			FetchTimeout:  2 * time.Second,
			DrainTimeout:  2 * time.Second,
		},
		Retry: RetryConfig{
			MaxAttempts:     3,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			Multiplier:      2,
			MaxElapsed:      time.Second,
		},
		Invite: InviteConfig{
			TTL: 24 * time.Hour,
		},
	}
}

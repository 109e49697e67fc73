package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/gommon/bytes"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Provider ProviderConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Auth     AuthConfig
	Log      LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	MaxUploadSize   string   `envconfig:"MAX_UPLOAD_SIZE" default:"100M"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" default:"localhost"`
	Port           string        `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" default:"postgres"`
	Password       string        `envconfig:"DB_PASSWORD" default:"postgres"`
	Name           string        `envconfig:"DB_NAME" default:"meeting_summarizer"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns       int           `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns       int           `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate    bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"30s"`
}

// ProviderConfig selects the transcription/summarization backend and its credentials
type ProviderConfig struct {
	Name            string        `envconfig:"PROVIDER" default:"auto"`
	OpenAIAPIKey    string        `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL   string        `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com"`
	OpenAIChatModel string        `envconfig:"OPENAI_CHAT_MODEL" default:"gpt-4o-mini"`
	HFToken         string        `envconfig:"HF_TOKEN"`
	HFBaseURL       string        `envconfig:"HF_BASE_URL" default:"https://api-inference.huggingface.co"`
	HFTextModel     string        `envconfig:"HF_TEXT_MODEL" default:"microsoft/DialoGPT-medium"`
	AssemblyAIKey   string        `envconfig:"ASSEMBLYAI_API_KEY"`
	AssemblyAIURL   string        `envconfig:"ASSEMBLYAI_API_URL" default:"https://api.assemblyai.com"`
	GroqAPIKey      string        `envconfig:"GROQ_API_KEY"`
	GroqBaseURL     string        `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	GroqModel       string        `envconfig:"GROQ_MODEL" default:"llama-3.1-70b-versatile"`
	Timeout         time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"120s"`
	MockDelay       time.Duration `envconfig:"MOCK_DELAY" default:"1s"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string        `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	StatsTTL time.Duration `envconfig:"STATS_CACHE_TTL" default:"30s"`
}

// StorageConfig holds object storage configuration for archived audio
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-audio"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// AuthConfig holds API token configuration
type AuthConfig struct {
	Enabled      bool          `envconfig:"AUTH_ENABLED" default:"false"`
	AccessSecret string        `envconfig:"JWT_ACCESS_SECRET"`
	AccessExpiry time.Duration `envconfig:"JWT_ACCESS_EXPIRY" default:"24h"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Provider.Name)) {
	case "openai":
		if c.Provider.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is not configured but PROVIDER=openai is set")
		}
	case "hf", "huggingface", "hugging_face":
		if c.Provider.HFToken == "" {
			return fmt.Errorf("HF_TOKEN is not configured but PROVIDER=hf is set")
		}
	case "assemblyai":
		if c.Provider.AssemblyAIKey == "" {
			return fmt.Errorf("ASSEMBLYAI_API_KEY is not configured but PROVIDER=assemblyai is set")
		}
		if c.Provider.GroqAPIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required for summaries when PROVIDER=assemblyai is set")
		}
	}
	if _, err := bytes.Parse(c.Server.MaxUploadSize); err != nil {
		return fmt.Errorf("invalid MAX_UPLOAD_SIZE %q: %w", c.Server.MaxUploadSize, err)
	}
	if c.Auth.Enabled && c.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required when AUTH_ENABLED=true")
	}
	return nil
}

// MaxUploadBytes returns MAX_UPLOAD_SIZE in bytes
func (c *Config) MaxUploadBytes() int64 {
	n, err := bytes.Parse(c.Server.MaxUploadSize)
	if err != nil {
		return 100 << 20
	}
	return n
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

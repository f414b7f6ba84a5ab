package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Woerter   WoerterConfig   `yaml:"woerter"`
	Generator GeneratorConfig `yaml:"generator"`
	LLM       LLMConfig       `yaml:"llm"`
	Speech    SpeechConfig    `yaml:"speech"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"              env:"SERVER_HOST"              env-default:"0.0.0.0"`
	Port            int           `yaml:"port"              env:"SERVER_PORT"              env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"      env:"SERVER_READ_TIMEOUT"      env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"     env:"SERVER_WRITE_TIMEOUT"     env-default:"10m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"      env:"SERVER_IDLE_TIMEOUT"      env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"  env:"SERVER_SHUTDOWN_TIMEOUT"  env-default:"10s"`
	UploadPerMinute int           `yaml:"upload_per_minute" env:"SERVER_UPLOAD_PER_MINUTE" env-default:"6"`
}

// DatabaseConfig holds PostgreSQL connection settings. DSN is required by
// the server and by CLI commands that touch the word entry lists.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// RedisConfig holds the optional Redis connection. An empty URL disables
// the page cache and selects the file-based generation registry.
type RedisConfig struct {
	URL       string        `yaml:"url"        env:"REDIS_URL"`
	KeyPrefix string        `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"wortschatz"`
	PageTTL   time.Duration `yaml:"page_ttl"   env:"REDIS_PAGE_TTL"   env-default:"168h"`
}

// Enabled reports whether a Redis URL is configured.
func (c RedisConfig) Enabled() bool { return c.URL != "" }

// AuthConfig holds API token settings.
type AuthConfig struct {
	Enabled   bool          `yaml:"enabled"    env:"AUTH_ENABLED"    env-default:"false"`
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"wortschatz"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"720h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// WoerterConfig holds dictionary site client settings.
type WoerterConfig struct {
	BaseURL    string        `yaml:"base_url"    env:"WOERTER_BASE_URL"    env-default:"https://www.woerter.net/"`
	Timeout    time.Duration `yaml:"timeout"     env:"WOERTER_TIMEOUT"     env-default:"30s"`
	MinDelay   time.Duration `yaml:"min_delay"   env:"WOERTER_MIN_DELAY"   env-default:"1200ms"`
	MaxDelay   time.Duration `yaml:"max_delay"   env:"WOERTER_MAX_DELAY"   env-default:"2500ms"`
	RetryDelay time.Duration `yaml:"retry_delay" env:"WOERTER_RETRY_DELAY" env-default:"3s"`
}

// GeneratorConfig holds content generation pipeline settings.
type GeneratorConfig struct {
	WordsFile      string `yaml:"words_file"       env:"GENERATOR_WORDS_FILE"       env-default:"./input/words_list.txt"`
	OutputDir      string `yaml:"output_dir"       env:"GENERATOR_OUTPUT_DIR"       env-default:"./output"`
	RegistryFile   string `yaml:"registry_file"    env:"GENERATOR_REGISTRY_FILE"    env-default:"./output/generation_registry.json"`
	ChunkMaxLength int    `yaml:"chunk_max_length" env:"GENERATOR_CHUNK_MAX_LENGTH" env-default:"2000"`
	MinDialogLines int    `yaml:"min_dialog_lines" env:"GENERATOR_MIN_DIALOG_LINES" env-default:"120"`
}

// LLMConfig holds dialog generation settings.
type LLMConfig struct {
	APIKey    string `yaml:"api_key"    env:"ANTHROPIC_API_KEY"`
	Model     string `yaml:"model"      env:"LLM_MODEL"      env-default:"claude-sonnet-4-5"`
	MaxTokens int64  `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"16000"`
}

// SpeechConfig holds speech synthesis settings.
type SpeechConfig struct {
	APIKey      string        `yaml:"api_key"     env:"GEMINI_API_KEY"`
	Model       string        `yaml:"model"       env:"SPEECH_MODEL"       env-default:"gemini-2.5-flash-preview-tts"`
	Concurrency int           `yaml:"concurrency" env:"SPEECH_CONCURRENCY" env-default:"3"`
	Timeout     time.Duration `yaml:"timeout"     env:"SPEECH_TIMEOUT"     env-default:"5m"`
}

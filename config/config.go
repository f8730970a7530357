package config

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV"      envDefault:"development"`
		Port        string `env:"PORT"         envDefault:"8088"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
		LogLevel    string `env:"LOG_LEVEL"`
	}
	DB struct {
		Driver          string        `env:"DB_DRIVER"            envDefault:"postgres"`
		Host            string        `env:"DB_HOST"              envDefault:"localhost"`
		Port            string        `env:"DB_PORT"              envDefault:"5432"`
		User            string        `env:"DB_USER"              envDefault:"postgres"`
		Password        string        `env:"DB_PASSWORD"          envDefault:"password"`
		Name            string        `env:"DB_NAME"              envDefault:"scrim_db"`
		SSLMode         string        `env:"DB_SSLMODE"           envDefault:"disable"`
		Path            string        `env:"DB_PATH"              envDefault:"./scrim.db"`
		MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS"    envDefault:"20"`
		MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS"    envDefault:"5"`
		ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	}
	JWT struct {
		Secret string `env:"JWT_SECRET" envDefault:"your-very-strong-access-secret"`
	}
	Scrim struct {
		SlotCapacity   int    `env:"SCRIM_SLOT_CAPACITY"   envDefault:"12"`
		MaxMembers     int    `env:"SCRIM_MAX_MEMBERS"     envDefault:"4"`
		TeamNameMaxLen int    `env:"SCRIM_TEAM_NAME_MAX"   envDefault:"3"`
		Timezone       string `env:"SCRIM_TIMEZONE"        envDefault:"Asia/Seoul"`
		WindowDays     int    `env:"SCRIM_WINDOW_DAYS"     envDefault:"7"`
		PeriodLayout   string `env:"SCRIM_PERIOD_LAYOUT"   envDefault:"02/01"`
	}
	Tx struct {
		MaxAttempts     uint          `env:"TX_MAX_ATTEMPTS"     envDefault:"4"`
		InitialInterval time.Duration `env:"TX_INITIAL_INTERVAL" envDefault:"50ms"`
		MaxInterval     time.Duration `env:"TX_MAX_INTERVAL"     envDefault:"1s"`
	}
	Interaction struct {
		TTL   time.Duration `env:"INTERACTION_TTL"   envDefault:"60s"`
		Store string        `env:"INTERACTION_STORE" envDefault:"memory"`
	}
	Redis struct {
		Addr      string `env:"REDIS_ADDR"       envDefault:"localhost:6379"`
		Password  string `env:"REDIS_PASSWORD"`
		DB        int    `env:"REDIS_DB"         envDefault:"0"`
		KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"scrim:interaction"`
	}
	RateLimit struct {
		Enabled bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
		RPS     float64 `env:"RATE_LIMIT_RPS"     envDefault:"5"`
		Burst   int     `env:"RATE_LIMIT_BURST"   envDefault:"10"`
	}
}

// Global DB instance, accessible after ConnectDB() is called via Initialize.
var DB *gorm.DB

// Global AppConfig instance, accessible after LoadConfig() is called via Initialize.
var appConfig *Config
var once sync.Once // Used for singleton pattern to load config only once

// LoadConfig loads configuration from environment variables into the Config struct.
// It's designed to be called once.
func LoadConfig() (*Config, error) {
	// Load .env file. It's okay if it doesn't exist, especially in production
	// where env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	// Basic validation for critical secrets
	if cfg.JWT.Secret == "your-very-strong-access-secret" {
		log.Println("WARNING: Using default JWT secret. Please set JWT_SECRET for production.")
	}
	if cfg.DB.Driver == "postgres" && cfg.DB.Password == "password" && cfg.App.Env == "production" {
		log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
	}

	appConfig = cfg // Set the global instance
	return cfg, nil
}

// Parse reads the environment into a Config and checks the values that
// cannot be fixed up later.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.DB.Driver = strings.ToLower(strings.TrimSpace(cfg.DB.Driver))
	switch cfg.DB.Driver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", cfg.DB.Driver)
	}
	switch cfg.Interaction.Store {
	case "memory", "redis":
	default:
		return nil, fmt.Errorf("INTERACTION_STORE must be memory or redis, got %q", cfg.Interaction.Store)
	}
	if cfg.Scrim.SlotCapacity <= 0 || cfg.Scrim.MaxMembers <= 0 || cfg.Scrim.TeamNameMaxLen <= 0 {
		return nil, fmt.Errorf("scrim limits must be positive")
	}
	return cfg, nil
}

// ConnectDB establishes a connection to the database using the provided configuration.
// It sets the global DB variable.
func ConnectDB(dbCfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}
	if dbCfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent) // Less verbose in production
	}

	var dialector gorm.Dialector
	switch dbCfg.DB.Driver {
	case "sqlite":
		dialector = sqlite.Open(dbCfg.DB.Path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			dbCfg.DB.Host,
			dbCfg.DB.User,
			dbCfg.DB.Password,
			dbCfg.DB.Name,
			dbCfg.DB.Port,
			dbCfg.DB.SSLMode,
		)
		dialector = postgres.Open(dsn)
	}

	gormDB, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if dbCfg.DB.Driver == "sqlite" {
		// SQLite allows a single writer; one connection keeps transactions from tripping over each other.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(dbCfg.DB.MaxOpenConns)
		sqlDB.SetMaxIdleConns(dbCfg.DB.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(dbCfg.DB.ConnMaxLifetime)

	DB = gormDB // Set the global DB instance
	log.Printf("Successfully connected to %s database!", dbCfg.DB.Driver)
	return gormDB, nil
}

// NewRedisClient builds a client for the interaction session store.
func NewRedisClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// Initialize loads all configurations and connects to the database.
// This should be called once at the start of your application (e.g., in main.go).
func Initialize() error {
	var loadErr error
	// Load configuration only once
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg // Ensure global appConfig is set

		_, err = ConnectDB(*appConfig) // Use the loaded configuration
		if err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It panics if the configuration has not been loaded yet,
// ensuring that configuration is always available when requested after Initialize().
func GetConfig() *Config {
	if appConfig == nil {
		// This should ideally not happen if Initialize() is called correctly in main.
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

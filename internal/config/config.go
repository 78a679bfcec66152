package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Enabled  bool   `yaml:"enabled"`
	} `yaml:"redis"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
		Enabled      bool   `yaml:"enabled"`
	} `yaml:"email"`

	JWT struct {
		Secret        string `yaml:"secret"`
		TTL           int    `yaml:"ttl"`              // access token lifetime, minutes
		RefreshTTLDay int    `yaml:"refresh_ttl_days"` // refresh token lifetime, days
	} `yaml:"jwt"`

	Analysis struct {
		CacheTTLMinutes int `yaml:"cache_ttl_minutes"` // analysis read cache
		AnalyticsTTLMin int `yaml:"analytics_ttl_minutes"`
	} `yaml:"analysis"`

	Workers struct {
		JobCloseIntervalMin       int `yaml:"job_close_interval_minutes"`
		SessionExpiryIntervalMin  int `yaml:"session_expiry_interval_minutes"`
		SessionMaxAgeHours        int `yaml:"session_max_age_hours"`
		CleanupIntervalHours      int `yaml:"cleanup_interval_hours"`
		NotificationRetentionDays int `yaml:"notification_retention_days"`
	} `yaml:"workers"`

	// Seeded on first start when both are set (env only, never yaml).
	FirstAdminEmail    string `yaml:"-"`
	FirstAdminPassword string `yaml:"-"`
}

var AppConfig *Config

// LoadConfig fills AppConfig either from config.yaml or, when DATABASE_URL
// is set, entirely from environment variables (test and container mode).
func LoadConfig() {
	// Optional local overrides; production supplies real env vars.
	_ = godotenv.Load()

	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")
	serverEnv := os.Getenv("SERVER_ENV")
	portStr := os.Getenv("SERVER_PORT")
	jwtSecret := os.Getenv("JWT_SECRET")

	if dbURL == "" {
		log.Println("Loading configuration from config.yaml")

		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		applyEnvOverrides(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Loading configuration from environment variables")

	cfg.Database.DSN = dbURL
	cfg.Server.Env = serverEnv
	cfg.Server.Port, _ = strconv.Atoi(portStr)
	cfg.JWT.Secret = jwtSecret
	cfg.JWT.TTL = 60

	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Enabled = cfg.Redis.Addr != ""

	cfg.Email.SMTPHost = "smtp.test.com"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "noreply@talentiq.test"
	cfg.Email.Enabled = false

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	AppConfig = &cfg
}

// applyDefaults fills the knobs a minimal yaml can omit.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.JWT.RefreshTTLDay == 0 {
		cfg.JWT.RefreshTTLDay = 30
	}
	if cfg.Analysis.CacheTTLMinutes == 0 {
		cfg.Analysis.CacheTTLMinutes = 60
	}
	if cfg.Analysis.AnalyticsTTLMin == 0 {
		cfg.Analysis.AnalyticsTTLMin = 5
	}
	if cfg.Workers.JobCloseIntervalMin == 0 {
		cfg.Workers.JobCloseIntervalMin = 10
	}
	if cfg.Workers.SessionExpiryIntervalMin == 0 {
		cfg.Workers.SessionExpiryIntervalMin = 15
	}
	if cfg.Workers.SessionMaxAgeHours == 0 {
		cfg.Workers.SessionMaxAgeHours = 24
	}
	if cfg.Workers.CleanupIntervalHours == 0 {
		cfg.Workers.CleanupIntervalHours = 24
	}
	if cfg.Workers.NotificationRetentionDays == 0 {
		cfg.Workers.NotificationRetentionDays = 90
	}
}

// applyEnvOverrides lets the environment win over yaml for secrets and
// deploy-specific endpoints.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
		cfg.Redis.Enabled = true
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.Email.SMTPPassword = v
	}
	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

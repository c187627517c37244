package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	JWT       JWTConfig       `yaml:"jwt"`
	Security  SecurityConfig  `yaml:"security"`
	Admins    []AdminConfig   `yaml:"admins"`
	Recovery  []RecoveryEntry `yaml:"recovery"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Retention RetentionConfig `yaml:"retention"`
	Business  BusinessConfig  `yaml:"business"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Mode string `yaml:"mode"`
}

type DatabaseConfig struct {
	Type   string       `yaml:"type"`
	SQLite SQLiteConfig `yaml:"sqlite"`
	MySQL  MySQLConfig  `yaml:"mysql"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	Charset  string `yaml:"charset"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	ExpiresIn string `yaml:"expires_in"`
	Issuer    string `yaml:"issuer"`
}

// SecretKey returns the token signing secret, falling back to a development
// default when unset.
func (j JWTConfig) SecretKey() []byte {
	if j.Secret == "" {
		return []byte("la-automotive-default-secret-change-in-production")
	}
	return []byte(j.Secret)
}

type SecurityConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

// AdminConfig seeds one dashboard account. Passwords here are plaintext in
// the config file only; they are bcrypt-hashed at load time and never
// compared directly.
type AdminConfig struct {
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	Role       string `yaml:"role"`
	FullAccess bool   `yaml:"full_access"`
}

// RecoveryEntry holds the self-service password recovery challenge for a
// role: the security question, its expected answer and the password revealed
// when the answer matches.
type RecoveryEntry struct {
	Role             string `yaml:"role"`
	Question         string `yaml:"question"`
	Answer           string `yaml:"answer"`
	RecoveryPassword string `yaml:"recovery_password"`
}

type SMTPConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
}

type RetentionConfig struct {
	MaxActivities   int `yaml:"max_activities"`
	ActivityDisplay int `yaml:"activity_display"`
	MaxInquiries    int `yaml:"max_inquiries"`
}

type BusinessConfig struct {
	Name    string `yaml:"name"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Address string `yaml:"address"`
	Hours   string `yaml:"hours"`
}

var Global *Config

// Load reads the configuration file and environment variables
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables
	if jwtSecret := os.Getenv("LAAUTO_JWT_SECRET"); jwtSecret != "" {
		cfg.JWT.Secret = jwtSecret
	}

	if dbType := os.Getenv("LAAUTO_DB_TYPE"); dbType != "" {
		cfg.Database.Type = dbType
	}

	if dbPath := os.Getenv("LAAUTO_DB_PATH"); dbPath != "" {
		cfg.Database.SQLite.Path = dbPath
	}

	if mysqlHost := os.Getenv("LAAUTO_MYSQL_HOST"); mysqlHost != "" {
		cfg.Database.MySQL.Host = mysqlHost
	}

	if mysqlUser := os.Getenv("LAAUTO_MYSQL_USER"); mysqlUser != "" {
		cfg.Database.MySQL.Username = mysqlUser
	}

	if mysqlPass := os.Getenv("LAAUTO_MYSQL_PASSWORD"); mysqlPass != "" {
		cfg.Database.MySQL.Password = mysqlPass
	}

	if mysqlDB := os.Getenv("LAAUTO_MYSQL_DATABASE"); mysqlDB != "" {
		cfg.Database.MySQL.Database = mysqlDB
	}

	if smtpPass := os.Getenv("LAAUTO_SMTP_PASSWORD"); smtpPass != "" {
		cfg.SMTP.Password = smtpPass
	}

	// Ensure data directory exists for SQLite
	if cfg.Database.Type == "sqlite" {
		dataDir := filepath.Dir(cfg.Database.SQLite.Path)
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// Validate MySQL configuration if MySQL is selected
	if cfg.Database.Type == "mysql" {
		if cfg.Database.MySQL.Username == "" {
			return nil, fmt.Errorf("MySQL username is required")
		}
		if cfg.Database.MySQL.Database == "" {
			return nil, fmt.Errorf("MySQL database name is required")
		}
	}

	applyDefaults(&cfg)

	Global = &cfg
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Security.BcryptCost == 0 {
		cfg.Security.BcryptCost = 10
	}
	if cfg.JWT.ExpiresIn == "" {
		cfg.JWT.ExpiresIn = "4h"
	}
	if cfg.Retention.MaxActivities == 0 {
		cfg.Retention.MaxActivities = 500
	}
	if cfg.Retention.ActivityDisplay == 0 {
		cfg.Retention.ActivityDisplay = 100
	}
	if cfg.Retention.MaxInquiries == 0 {
		cfg.Retention.MaxInquiries = 1000
	}
}

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// AdminUser is one entry of the admin allow-list. Password is either a
// plaintext secret or a bcrypt hash (recognised by its "$2" prefix, see
// the auth package).
type AdminUser struct {
	Username string
	Password string
}

type Config struct {
	Port             string   `mapstructure:"PORT"`
	Env              string   `mapstructure:"ENV"`
	DatabaseURL      string   `mapstructure:"DATABASE_URL"`
	DBMaxConns       int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns       int32    `mapstructure:"DB_MIN_CONNS"`
	AdminTokenSecret string   `mapstructure:"ADMIN_TOKEN_SECRET"`
	AdminTokenTTL    int      `mapstructure:"ADMIN_TOKEN_TTL_MINUTES"`
	AdminUsersRaw    string   `mapstructure:"ADMIN_USERS"`
	CORSOrigins      []string `mapstructure:"CORS_ORIGINS"`
}

// defaultAdminUsers is the out-of-the-box allow-list. Deployments override
// it with ADMIN_USERS, ideally with bcrypt-hashed entries generated by
// `clinic-server admin hash`.
const defaultAdminUsers = "admin:ABCClinic2025!,Clinic_Admin:ABC@clinic"

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("ADMIN_TOKEN_TTL_MINUTES", 480)
	v.SetDefault("ADMIN_USERS", defaultAdminUsers)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("ADMIN_TOKEN_SECRET")
	v.BindEnv("ADMIN_TOKEN_TTL_MINUTES")
	v.BindEnv("ADMIN_USERS")
	v.BindEnv("CORS_ORIGINS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	// The two required connection/credential parameters. Missing either is
	// a fatal startup condition.
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.AdminTokenSecret == "" {
		return nil, fmt.Errorf("ADMIN_TOKEN_SECRET is required")
	}

	if _, err := cfg.AdminUsers(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// AdminUsers parses ADMIN_USERS, a comma-separated list of username:password
// entries. The password part may itself contain colons (bcrypt hashes do),
// so only the first colon splits.
func (c *Config) AdminUsers() ([]AdminUser, error) {
	var users []AdminUser
	for _, entry := range strings.Split(c.AdminUsersRaw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, pass, ok := strings.Cut(entry, ":")
		if !ok || name == "" || pass == "" {
			return nil, fmt.Errorf("ADMIN_USERS entry %q is not username:password", entry)
		}
		users = append(users, AdminUser{Username: name, Password: pass})
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("ADMIN_USERS must contain at least one entry")
	}
	return users, nil
}

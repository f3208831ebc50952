package config

import (
	"testing"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ADMIN_TOKEN_SECRET", "secret")

	if _, err := Load(); err == nil {
		t.Error("expected error when DATABASE_URL is missing")
	}
}

func TestLoad_RequiresAdminTokenSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/clinic")
	t.Setenv("ADMIN_TOKEN_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("expected error when ADMIN_TOKEN_SECRET is missing")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/clinic")
	t.Setenv("ADMIN_TOKEN_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Error("expected development mode by default")
	}
	if cfg.AdminTokenTTL != 480 {
		t.Errorf("expected default token TTL 480, got %d", cfg.AdminTokenTTL)
	}
}

func TestAdminUsers_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/clinic")
	t.Setenv("ADMIN_TOKEN_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	users, err := cfg.AdminUsers()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 default admin users, got %d", len(users))
	}
	if users[0].Username != "admin" || users[0].Password != "ABCClinic2025!" {
		t.Errorf("unexpected first admin entry: %+v", users[0])
	}
	if users[1].Username != "Clinic_Admin" || users[1].Password != "ABC@clinic" {
		t.Errorf("unexpected second admin entry: %+v", users[1])
	}
}

func TestAdminUsers_Parsing(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"single", "ops:secret", 1, false},
		{"bcrypt entry keeps colons intact", "ops:$2a$10$abc", 1, false},
		{"trailing comma", "a:b,", 1, false},
		{"missing password", "opsonly", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{AdminUsersRaw: tt.raw}
			users, err := c.AdminUsers()
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(users) != tt.want {
				t.Errorf("expected %d users, got %d", tt.want, len(users))
			}
		})
	}
}

func TestAdminUsers_BcryptPasswordPreserved(t *testing.T) {
	c := &Config{AdminUsersRaw: "ops:$2a$10$N9qo8uLOickgx2ZMRZoMye"}
	users, err := c.AdminUsers()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users[0].Password != "$2a$10$N9qo8uLOickgx2ZMRZoMye" {
		t.Errorf("bcrypt hash mangled: %q", users[0].Password)
	}
}

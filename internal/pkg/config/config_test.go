package config

import (
	"context"
	"strings"
	"testing"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "5000" || cfg.Env != EnvDevelopment || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.FrontendURL != "http://localhost:3000" {
		t.Fatalf("unexpected frontend url %q", cfg.FrontendURL)
	}
	if cfg.Postgres.MaxConns != 10 || cfg.Audit.Workers != 4 {
		t.Fatalf("unexpected pool defaults: %+v", cfg)
	}
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Fatalf("expected development mode")
	}
}

func TestLoad_NormalisesEnv(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"ENV": " Production "}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production, got %q", cfg.Env)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"SUPABASE_URL": "https://x.supabase.co",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	err = cfg.Validate()
	if err == nil {
		t.Fatalf("expected missing variables error")
	}
	for _, name := range []string{"DATABASE_URL", "SUPABASE_ANON_KEY", "SUPABASE_SERVICE_ROLE_KEY"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("error %q does not name %s", err, name)
		}
	}
	if strings.Contains(err.Error(), "SUPABASE_URL") {
		t.Fatalf("SUPABASE_URL is set and must not be reported")
	}

	cfg.Supabase.AnonKey = "a"
	cfg.Supabase.ServiceRoleKey = "s"
	cfg.Postgres.URL = "postgres://localhost/office"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

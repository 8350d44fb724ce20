package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("DAY_START_HOUR")
	os.Unsetenv("CLINIC_TIMEZONE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.DayStartHour != 8 {
		t.Errorf("expected default day start hour 8, got %d", cfg.DayStartHour)
	}
	if cfg.DayEndHour != 20 {
		t.Errorf("expected default day end hour 20, got %d", cfg.DayEndHour)
	}
	if !cfg.SeedDemoData {
		t.Error("expected demo seeding to default to true")
	}
	if cfg.MaxUploadBytes != 25*1024*1024 {
		t.Errorf("expected default upload limit 25MB, got %d", cfg.MaxUploadBytes)
	}
}

func TestLoad_InvalidDayWindow(t *testing.T) {
	os.Setenv("DAY_START_HOUR", "22")
	os.Setenv("DAY_END_HOUR", "9")
	defer os.Unsetenv("DAY_START_HOUR")
	defer os.Unsetenv("DAY_END_HOUR")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when DAY_END_HOUR is before DAY_START_HOUR")
	}
}

func TestLoad_InvalidTimezone(t *testing.T) {
	os.Setenv("CLINIC_TIMEZONE", "Not/AZone")
	defer os.Unsetenv("CLINIC_TIMEZONE")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for unknown clinic timezone")
	}
}

func TestConfig_Location(t *testing.T) {
	c := &Config{ClinicTimezone: "America/Mexico_City"}
	loc, err := c.Location()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.String() != "America/Mexico_City" {
		t.Errorf("expected America/Mexico_City, got %s", loc)
	}

	c.ClinicTimezone = "Local"
	loc, err = c.Location()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc != nil && loc.String() != "Local" {
		t.Errorf("expected Local, got %s", loc)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

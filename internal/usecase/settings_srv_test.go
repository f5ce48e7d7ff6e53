package usecase

import (
	"context"
	"testing"

	"solar-shop/internal/dto/request"
)

func TestGetSettingsReturnsDefaultsOnEmptyDB(t *testing.T) {
	repo := newTestRepository()
	svc := NewSettingsService(repo.Settings, testLogger())

	settings, err := svc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if settings.SiteName == "" {
		t.Error("expected seeded default site name")
	}
	if !settings.EnableShop || !settings.EnableBlog {
		t.Error("shop and blog should default to enabled")
	}
}

func TestUpdateSettingsPersists(t *testing.T) {
	repo := newTestRepository()
	svc := NewSettingsService(repo.Settings, testLogger())

	updated, err := svc.UpdateSettings(context.Background(), &request.SettingsRequest{
		SiteName:        "Solar Depot",
		SiteDescription: "Panels and storage",
		ContactEmail:    "hello@solardepot.test",
		ContactPhone:    "+15550100",
		MaintenanceMode: true,
		EnableBlog:      false,
		EnableShop:      true,
	})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if updated.SiteName != "Solar Depot" || !updated.MaintenanceMode {
		t.Errorf("unexpected settings after update: %+v", updated)
	}

	reloaded, err := svc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if reloaded.SiteName != "Solar Depot" || reloaded.EnableBlog {
		t.Errorf("settings did not persist: %+v", reloaded)
	}
}

func TestPublicSettingsHideMaintenanceMode(t *testing.T) {
	repo := newTestRepository()
	svc := NewSettingsService(repo.Settings, testLogger())

	if _, err := svc.UpdateSettings(context.Background(), &request.SettingsRequest{
		SiteName:     "Solar Depot",
		ContactEmail: "hello@solardepot.test",
		EnableBlog:   true,
		EnableShop:   true,
	}); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	public, err := svc.GetPublicSettings(context.Background())
	if err != nil {
		t.Fatalf("get public settings: %v", err)
	}

	if _, exposed := public["maintenanceMode"]; exposed {
		t.Error("maintenanceMode leaked into the public settings")
	}
	if public["siteName"] != "Solar Depot" {
		t.Errorf("expected site name in public settings, got %v", public["siteName"])
	}
}

package entity

import "time"

// Settings is the single-row site configuration record. It replaces the flat
// JSON settings file the admin dashboard used to write to disk.
type Settings struct {
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
	ContactEmail    string `json:"contactEmail"`
	ContactPhone    string `json:"contactPhone"`
	MaintenanceMode bool   `json:"maintenanceMode"`
	EnableBlog      bool   `json:"enableBlog"`
	EnableShop      bool   `json:"enableShop"`

	UpdatedAt time.Time `json:"-"`
}

// DefaultSettings seeds the settings row on first boot.
func DefaultSettings() Settings {
	return Settings{
		SiteName:        "Limpias Technologies",
		SiteDescription: "Your trusted partner in solar technology solutions",
		ContactEmail:    "contact@limpiastech.com",
		ContactPhone:    "+1234567890",
		MaintenanceMode: false,
		EnableBlog:      true,
		EnableShop:      true,
	}
}

// Public strips fields that should not be visible without a session.
func (s Settings) Public() map[string]any {
	return map[string]any{
		"siteName":        s.SiteName,
		"siteDescription": s.SiteDescription,
		"contactEmail":    s.ContactEmail,
		"contactPhone":    s.ContactPhone,
		"enableBlog":      s.EnableBlog,
		"enableShop":      s.EnableShop,
	}
}

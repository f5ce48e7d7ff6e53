package request

type SettingsRequest struct {
	SiteName        string `json:"siteName" validate:"required,max=100"`
	SiteDescription string `json:"siteDescription" validate:"max=300"`
	ContactEmail    string `json:"contactEmail" validate:"required,email"`
	ContactPhone    string `json:"contactPhone" validate:"max=20"`
	MaintenanceMode bool   `json:"maintenanceMode"`
	EnableBlog      bool   `json:"enableBlog"`
	EnableShop      bool   `json:"enableShop"`
}

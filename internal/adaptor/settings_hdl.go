package adaptor

import (
	"encoding/json"
	"net/http"

	"solar-shop/internal/dto/request"
	"solar-shop/internal/usecase"
	"solar-shop/pkg/utils"

	"go.uber.org/zap"
)

type SettingsHandler struct {
	service usecase.SettingsService
	log     *zap.Logger
}

func NewSettingsHandler(service usecase.SettingsService, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		log:     log.With(zap.String("handler", "settings")),
	}
}

// GetSettings handles GET /api/settings (manage_settings)
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetSettings(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get settings")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}

// GetPublicSettings handles GET /api/public-settings (public)
func (h *SettingsHandler) GetPublicSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetPublicSettings(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get public settings")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}

// UpdateSettings handles PUT /api/settings (manage_settings)
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req request.SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update settings")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}

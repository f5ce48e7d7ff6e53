package adaptor

import (
	"net/http"
	"strings"

	"solar-shop/internal/usecase"
	"solar-shop/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Product  *ProductHandler
	Blog     *BlogHandler
	Order    *OrderHandler
	Contact  *ContactHandler
	Settings *SettingsHandler
	Upload   *UploadHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, config, log),
		User:     NewUserHandler(service.User, log),
		Product:  NewProductHandler(service.Product, log),
		Blog:     NewBlogHandler(service.Blog, log),
		Order:    NewOrderHandler(service.Order, log),
		Contact:  NewContactHandler(service.Contact, log),
		Settings: NewSettingsHandler(service.Settings, log),
		Upload:   NewUploadHandler(service.Upload, config, log),
	}
}

// handleServiceError maps service error messages to HTTP responses. Services
// return plain-message errors; the prefix decides the status code.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already exists"):
		log.Warn(operation+" failed - duplicate",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid credentials"):
		log.Warn(operation+" failed - invalid credentials",
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "forbidden"):
		log.Warn(operation+" failed - forbidden",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "cannot"):
		log.Warn(operation+" failed - invalid state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

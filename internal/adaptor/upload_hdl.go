package adaptor

import (
	"net/http"

	"solar-shop/internal/usecase"
	"solar-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UploadHandler struct {
	service usecase.UploadService
	config  *utils.Config
	log     *zap.Logger
}

func NewUploadHandler(service usecase.UploadService, config *utils.Config, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		service: service,
		config:  config,
		log:     log.With(zap.String("handler", "upload")),
	}
}

// UploadImage handles POST /api/upload/{uploadType} (manage_products or
// write_blog). Expects a multipart form with a "file" part; the path segment
// chooses the target folder and resize profile.
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.config.Upload.MaxSizeMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.ResponseBadRequest(w, "File too large or malformed upload", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "Missing file", nil)
		return
	}
	defer file.Close()

	uploadType := chi.URLParam(r, "uploadType")
	contentType := header.Header.Get("Content-Type")

	url, err := h.service.SaveImage(uploadType, contentType, file)
	if err != nil {
		handleServiceError(h.log, w, err, "upload image")
		return
	}

	utils.ResponseCreated(w, "success", map[string]string{"url": url})
}

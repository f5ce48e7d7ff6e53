package adaptor

import (
	"encoding/json"
	"net/http"

	"solar-shop/internal/dto/request"
	"solar-shop/internal/usecase"
	"solar-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// SubmitContact handles POST /api/contact (public)
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	submission, err := h.service.SubmitContact(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "submit contact")
		return
	}

	utils.ResponseCreated(w, "success", submission)
}

// GetContactSubmissions handles GET /api/contact (view_inbox)
func (h *ContactHandler) GetContactSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.service.GetContactSubmissions(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get contact submissions")
		return
	}

	utils.ResponseSuccess(w, "success", submissions)
}

// ResolveContactSubmission handles PUT /api/contact/{id} (view_inbox)
func (h *ContactHandler) ResolveContactSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid submission ID", nil)
		return
	}

	if err := h.service.ResolveContactSubmission(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "resolve contact submission")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// SubscribeNewsletter handles POST /api/newsletter (public). Subscribing an
// already-subscribed address succeeds without creating a duplicate.
func (h *ContactHandler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var req request.NewsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	subscription, err := h.service.SubscribeNewsletter(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "subscribe newsletter")
		return
	}

	utils.ResponseCreated(w, "success", subscription)
}

// GetNewsletterSubscriptions handles GET /api/newsletter (view_inbox)
func (h *ContactHandler) GetNewsletterSubscriptions(w http.ResponseWriter, r *http.Request) {
	subscriptions, err := h.service.GetNewsletterSubscriptions(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get newsletter subscriptions")
		return
	}

	utils.ResponseSuccess(w, "success", subscriptions)
}

package adaptor

import (
	"encoding/json"
	"net/http"

	"solar-shop/internal/data/entity"
	"solar-shop/internal/dto/request"
	"solar-shop/internal/usecase"
	"solar-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BlogHandler struct {
	service usecase.BlogService
	log     *zap.Logger
}

func NewBlogHandler(service usecase.BlogService, log *zap.Logger) *BlogHandler {
	return &BlogHandler{
		service: service,
		log:     log.With(zap.String("handler", "blog")),
	}
}

// viewerRole reads the optional session role; anonymous viewers get an empty
// role and see only approved posts.
func viewerRole(r *http.Request) entity.UserRole {
	role, _ := utils.GetRoleFromContext(r.Context())
	return entity.UserRole(role)
}

// GetPosts handles GET /api/blog-posts (public, session optional)
func (h *BlogHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.GetPosts(r.Context(), viewerRole(r))
	if err != nil {
		handleServiceError(h.log, w, err, "get blog posts")
		return
	}

	utils.ResponseSuccess(w, "success", posts)
}

// GetPostByID handles GET /api/blog-posts/{id} (public, session optional)
func (h *BlogHandler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid blog post ID", nil)
		return
	}

	post, err := h.service.GetPostByID(r.Context(), id, viewerRole(r))
	if err != nil {
		handleServiceError(h.log, w, err, "get blog post by ID")
		return
	}

	utils.ResponseSuccess(w, "success", post)
}

// CreatePost handles POST /api/blog-posts (write_blog)
func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.BlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	post, err := h.service.CreatePost(r.Context(), userID, viewerRole(r), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create blog post")
		return
	}

	utils.ResponseCreated(w, "success", post)
}

// UpdatePost handles PUT /api/blog-posts/{id} (write_blog)
func (h *BlogHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid blog post ID", nil)
		return
	}

	var req request.BlogPostUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	post, err := h.service.UpdatePost(r.Context(), id, userID, viewerRole(r), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update blog post")
		return
	}

	utils.ResponseSuccess(w, "success", post)
}

// DeletePost handles DELETE /api/blog-posts/{id} (moderate_blog)
func (h *BlogHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid blog post ID", nil)
		return
	}

	if err := h.service.DeletePost(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete blog post")
		return
	}

	utils.ResponseNoContent(w)
}

package adaptor

import (
	"encoding/json"
	"net/http"

	"solar-shop/internal/data/repository"
	"solar-shop/internal/dto/request"
	"solar-shop/internal/usecase"
	"solar-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// GetProducts handles GET /api/products (public)
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	var filter repository.ProductFilter

	query := r.URL.Query()
	if category := query.Get("category"); category != "" {
		filter.Category = &category
	}
	if featured := query.Get("featured"); featured != "" {
		isFeatured := featured == "true"
		filter.Featured = &isFeatured
	}

	products, err := h.service.GetProducts(r.Context(), filter)
	if err != nil {
		handleServiceError(h.log, w, err, "get products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// GetProductByID handles GET /api/products/{id} (public)
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	product, err := h.service.GetProductByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get product by ID")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// CreateProduct handles POST /api/products (manage_products)
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create product")
		return
	}

	utils.ResponseCreated(w, "success", product)
}

// UpdateProduct handles PUT /api/products/{id} (manage_products)
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	var req request.ProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// DeleteProduct handles DELETE /api/products/{id} (manage_products)
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete product")
		return
	}

	utils.ResponseNoContent(w)
}

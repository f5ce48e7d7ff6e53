package response

import (
	"time"

	"solar-shop/internal/data/entity"
)

type ProductResponse struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	Category       string            `json:"category"`
	ImageURL       string            `json:"imageUrl"`
	Specifications map[string]string `json:"specifications"`
	Stock          int               `json:"stock"`
	Featured       bool              `json:"featured"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:             product.ID,
		Name:           product.Name,
		Description:    product.Description,
		Price:          product.Price,
		Category:       product.Category,
		ImageURL:       product.ImageURL,
		Specifications: product.Specifications,
		Stock:          product.Stock,
		Featured:       product.Featured,
		CreatedAt:      product.CreatedAt,
		UpdatedAt:      product.UpdatedAt,
	}
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = ProductToResponse(product)
	}
	return responses
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"solar-shop/internal/data/entity"
	"solar-shop/internal/data/repository"
	"solar-shop/internal/dto/request"
	"solar-shop/internal/dto/response"
	"solar-shop/pkg/utils"

	"go.uber.org/zap"
)

type ProductService interface {
	GetProducts(ctx context.Context, filter repository.ProductFilter) ([]response.ProductResponse, error)
	GetProductByID(ctx context.Context, id int64) (*response.ProductResponse, error)
	CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, id int64, req *request.ProductUpdateRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) GetProducts(ctx context.Context, filter repository.ProductFilter) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to get products", zap.Error(err))
		return nil, fmt.Errorf("get products: %w", err)
	}

	return response.ProductsToResponse(products), nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.Int64("product_id", id))
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		Specifications: req.Specifications,
		Stock:          req.Stock,
		Featured:       req.Featured,
	}
	if product.Specifications == nil {
		product.Specifications = entity.Specifications{}
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create product")
	}

	s.log.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *request.ProductUpdateRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Product update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.Int64("product_id", id))
		return nil, fmt.Errorf("failed to find product")
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Specifications != nil {
		product.Specifications = *req.Specifications
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.Int64("product_id", id))
		return nil, fmt.Errorf("failed to update product")
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.Int64("product_id", id))
		return fmt.Errorf("failed to find product")
	}
	if product == nil {
		return fmt.Errorf("product not found")
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete product", zap.Error(err), zap.Int64("product_id", id))
		return fmt.Errorf("failed to delete product")
	}

	s.log.Info("Product deleted", zap.Int64("product_id", id))
	return nil
}

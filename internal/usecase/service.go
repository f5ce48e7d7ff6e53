package usecase

import (
	"solar-shop/internal/data/repository"
	"solar-shop/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Product  ProductService
	Blog     BlogService
	Order    OrderService
	Contact  ContactService
	Settings SettingsService
	Upload   UploadService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		User:     NewUserService(repo, log),
		Product:  NewProductService(repo, log),
		Blog:     NewBlogService(repo, log),
		Order:    NewOrderService(repo, log),
		Contact:  NewContactService(repo, log),
		Settings: NewSettingsService(repo.Settings, log),
		Upload:   NewUploadService(config.Upload, log),
	}
}

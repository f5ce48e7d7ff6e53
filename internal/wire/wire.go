package wire

import (
	"net/http"

	"solar-shop/internal/adaptor"
	"solar-shop/internal/data/repository"
	"solar-shop/internal/usecase"
	"solar-shop/pkg/middleware"
	"solar-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireProduct(r, handler.Product, repo, config, logger)
	wireBlog(r, handler.Blog, repo, config, logger)
	wireOrder(r, handler.Order, repo, config, logger)
	wireContact(r, handler.Contact, repo, config, logger)
	wireSettings(r, handler.Settings, repo, config, logger)
	wireUpload(r, handler.Upload, repo, config, logger)

	// Uploaded images are served straight off disk
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.Upload.Dir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

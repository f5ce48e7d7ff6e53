package wire

import (
	"testing"

	"solar-shop/internal/adaptor"
	"solar-shop/internal/data/repository"
	"solar-shop/internal/usecase"
	"solar-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func testRouter() *chi.Mux {
	config := &utils.Config{
		Session: utils.SessionConfig{CookieName: "session_token", TTLDays: 7},
	}
	logger := zap.NewNop()
	handler := adaptor.NewHandler(&usecase.Service{}, config, logger)
	return setupRouter(handler, &repository.Repository{}, config, logger)
}

func TestRouterRegistersAPIRoutes(t *testing.T) {
	router := testRouter()

	routes := []struct {
		method string
		path   string
	}{
		{"POST", "/api/register"},
		{"POST", "/api/login"},
		{"POST", "/api/logout"},
		{"GET", "/api/user"},
		{"GET", "/api/products"},
		{"GET", "/api/products/3"},
		{"POST", "/api/products"},
		{"PUT", "/api/products/3"},
		{"DELETE", "/api/products/3"},
		{"GET", "/api/blog-posts"},
		{"GET", "/api/blog-posts/3"},
		{"POST", "/api/blog-posts"},
		{"PUT", "/api/blog-posts/3"},
		{"DELETE", "/api/blog-posts/3"},
		{"POST", "/api/orders"},
		{"GET", "/api/orders"},
		{"GET", "/api/orders/3"},
		{"PUT", "/api/orders/3"},
		{"POST", "/api/contact"},
		{"GET", "/api/contact"},
		{"PUT", "/api/contact/3"},
		{"POST", "/api/newsletter"},
		{"GET", "/api/newsletter"},
		{"GET", "/api/users"},
		{"PUT", "/api/users/3"},
		{"DELETE", "/api/users/3"},
		{"GET", "/api/profile"},
		{"PUT", "/api/profile"},
		{"PUT", "/api/profile/password"},
		{"GET", "/api/settings"},
		{"PUT", "/api/settings"},
		{"GET", "/api/public-settings"},
		{"POST", "/api/upload/products"},
		{"GET", "/uploads/products/x.jpg"},
		{"GET", "/health"},
	}

	for _, route := range routes {
		rctx := chi.NewRouteContext()
		if !router.Match(rctx, route.method, route.path) {
			t.Errorf("%s %s is not routed", route.method, route.path)
		}
	}
}

func TestRouterHasNoNestedAuthPrefix(t *testing.T) {
	router := testRouter()

	// Auth endpoints live at the API root, not under a resource prefix.
	stale := []struct {
		method string
		path   string
	}{
		{"POST", "/api/auth/register"},
		{"POST", "/api/auth/login"},
		{"POST", "/api/auth/logout"},
		{"GET", "/api/blog"},
	}

	for _, route := range stale {
		rctx := chi.NewRouteContext()
		if router.Match(rctx, route.method, route.path) {
			t.Errorf("%s %s should not be routed", route.method, route.path)
		}
	}
}

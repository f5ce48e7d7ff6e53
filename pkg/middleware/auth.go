package middleware

import (
	"net/http"
	"strings"

	"solar-shop/internal/data/entity"
	"solar-shop/internal/data/repository"
	"solar-shop/pkg/utils"

	"go.uber.org/zap"
)

// extractToken pulls the session token from the session cookie, falling back
// to an Authorization bearer header for non-browser clients.
func extractToken(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// resolveUser loads the session and re-fetches the user record. Role changes
// therefore take effect on the next request, not retroactively.
func resolveUser(r *http.Request, cookieName string, sessionRepo repository.SessionRepository, userRepo repository.UserRepository) (*entity.User, string, error) {
	token := extractToken(r, cookieName)
	if token == "" {
		return nil, "", nil
	}

	session, err := sessionRepo.FindValidSession(r.Context(), token)
	if err != nil {
		return nil, token, err
	}
	if session == nil {
		return nil, token, nil
	}

	user, err := userRepo.FindByID(r.Context(), session.UserID)
	if err != nil {
		return nil, token, err
	}
	return user, token, nil
}

// Auth rejects requests without a valid session
func Auth(cookieName string, sessionRepo repository.SessionRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, token, err := resolveUser(r, cookieName, sessionRepo, userRepo)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if token == "" {
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}
			if user == nil {
				logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Optional attaches the session user when one is present and passes the
// request through untouched otherwise. Used by routes whose response differs
// for logged-in staff (e.g. blog listing).
func Optional(cookieName string, sessionRepo repository.SessionRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, token, err := resolveUser(r, cookieName, sessionRepo, userRepo)
			if err != nil {
				logger.Warn("Session lookup failed on optional route", zap.Error(err))
			}
			if user != nil {
				ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
				ctx = utils.SetTokenContext(ctx, token)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAny gates a route on holding at least one of the listed
// capabilities. Must run after Auth. The order update route uses this:
// accountants hold update_payment_status but not manage_orders.
func RequireAny(perms []entity.Permission, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			held := entity.PermissionsFor(entity.UserRole(role))
			for _, perm := range perms {
				if held.Has(perm) {
					next.ServeHTTP(w, r)
					return
				}
			}

			userID, _ := utils.GetUserIDFromContext(r.Context())
			logger.Warn("Permission denied",
				zap.Int64("user_id", userID),
				zap.String("role", role),
				zap.String("path", r.URL.Path),
			)
			utils.ResponseForbidden(w, "Forbidden")
		})
	}
}

// Require gates a route on a capability. Must run after Auth.
func Require(perm entity.Permission, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			perms := entity.PermissionsFor(entity.UserRole(role))
			if !perms.Has(perm) {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Permission denied",
					zap.Int64("user_id", userID),
					zap.String("role", role),
					zap.String("permission", string(perm)),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
)

type contextKey string

const hostIDKey contextKey = "hostID"

const (
	msgMissingToken = "Authentification requise"
	msgInvalidToken = "Jeton invalide ou expiré"
)

// Auth проверяет заголовок Authorization: Bearer <token> и кладет ID хоста в контекст
func Auth(parser TokenParser, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				logger.Warn("Auth - Invalid Authorization header format: path=%s", r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			claims, err := parser.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				logger.Warn("Auth - Token rejected: path=%s, error=%v", r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			hostID, err := claims.HostID()
			if err != nil {
				logger.Warn("Auth - Bad token subject: %v", err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithHostID(r.Context(), hostID)))
		})
	}
}

// WithHostID возвращает контекст с ID хоста
func WithHostID(ctx context.Context, hostID int64) context.Context {
	return context.WithValue(ctx, hostIDKey, hostID)
}

// GetHostID извлекает ID хоста, положенный middleware Auth
func GetHostID(ctx context.Context) (int64, bool) {
	hostID, ok := ctx.Value(hostIDKey).(int64)
	return hostID, ok && hostID > 0
}

package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

type contextKey string

const actorContextKey contextKey = "actor"

// Роли, которые шлет API gateway в заголовке X-User-Role
const (
	roleClient  = "client"
	roleManager = "manager"
)

// Auth middleware аутентификации через заголовки gateway.
// X-User-ID - идентификатор пользователя, X-User-Role - его роль.
// Кладет в контекст типизированного domain.Actor: дальше по коду
// права проверяются типом актора, а не строкой роли.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, "missing X-User-ID header")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid X-User-ID header")
			return
		}

		var actor domain.Actor
		switch r.Header.Get("X-User-Role") {
		case roleManager:
			actor = domain.ManagerActor{ID: userID}
		case roleClient, "":
			// По умолчанию считаем пользователя клиентом
			actor = domain.ClientActor{ID: userID}
		default:
			handlers.RespondUnauthorized(w, "invalid X-User-Role header")
			return
		}

		ctx := context.WithValue(r.Context(), actorContextKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActor извлекает актора из контекста запроса
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(domain.Actor)
	return actor, ok
}

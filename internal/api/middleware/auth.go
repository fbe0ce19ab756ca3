package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
)

// Заголовки аутентификации, проставляются API gateway
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	roleAdmin = "admin"
)

const (
	msgUnauthorized = "требуется аутентификация"
	msgAdminOnly    = "доступ только для администраторов"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	isAdminKey
)

// Auth извлекает идентификатор и роль пользователя из заголовков gateway.
// Запросы без валидного X-User-ID отклоняются
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(HeaderUserID)
		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		isAdmin := r.Header.Get(HeaderUserRole) == roleAdmin

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, isAdminKey, isAdmin)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly пропускает только администраторов. Вешается поверх Auth
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdminFromContext(r.Context()) {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// UserIDFromContext возвращает ID аутентифицированного пользователя
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// IsAdminFromContext возвращает true, если запрос выполняет администратор
func IsAdminFromContext(ctx context.Context) bool {
	isAdmin, ok := ctx.Value(isAdminKey).(bool)
	return ok && isAdmin
}

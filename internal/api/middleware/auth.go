package middleware

import (
	"context"
	"net/http"
	"strconv"
)

type contextKey string

const (
	userIDKey  contextKey = "userID"
	isAdminKey contextKey = "isAdmin"
)

// Заголовки аутентификации, проставляются API-шлюзом
const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	roleAdmin = "admin"
)

// Auth извлекает идентификатор и роль пользователя из заголовков запроса
// и кладёт их в контекст. Запросы без заголовков пропускаются дальше:
// решение о доступе принимает конкретный handler
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if userIDStr := r.Header.Get(headerUserID); userIDStr != "" {
			if userID, err := strconv.ParseInt(userIDStr, 10, 64); err == nil {
				ctx = context.WithValue(ctx, userIDKey, userID)
			}
		}

		if r.Header.Get(headerUserRole) == roleAdmin {
			ctx = context.WithValue(ctx, isAdminKey, true)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// IsAdmin возвращает true, если запрос выполнен от имени администратора
func IsAdmin(ctx context.Context) bool {
	isAdmin, _ := ctx.Value(isAdminKey).(bool)
	return isAdmin
}

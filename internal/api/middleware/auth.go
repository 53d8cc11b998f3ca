package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/castelmar/CH-BookingService/internal/api/handlers"
)

// AdminTokenHeader заголовок с токеном доступа к админским маршрутам
const AdminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "доступ запрещён"

// Auth проверяет админский токен в заголовке X-Admin-Token.
// Маршруты под этим middleware доступны только стойке регистрации.
func Auth(adminToken string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(AdminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

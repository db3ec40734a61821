package server

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"gift_bot/pkg/errcodes"
	"gift_bot/pkg/httpx/reply"
)

const bearerPrefix = "Bearer "

// bearerAuth пускает только запросы со статическим токеном администратора.
// Пустой токен закрывает API целиком.
func bearerAuth(token string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)

			if !ok || token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				reply.Error(r.Context(), w, failure.NewUnauthorizedError(
					"invalid bearer token",
					failure.WithCode(errcodes.Unauthorized),
					failure.WithDescription("Unauthorized"),
				))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http"
)

// MaxBodySize limita o corpo da requisição a limit bytes. Ler além do limite retorna erro
// para o handler. limit <= 0 desativa o limite.
func MaxBodySize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http"
)

// Cabeçalhos CORS enviados em todas as respostas
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
}

// Cors aplica os cabeçalhos permissivos e responde o preflight (OPTIONS) com 200 e corpo vazio
func Cors() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for key, value := range corsHeaders {
				w.Header().Set(key, value)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

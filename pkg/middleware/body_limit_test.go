package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxBodySize(t *testing.T) {
	tests := []struct {
		name    string
		limit   int64
		body    string
		wantErr bool
	}{
		{name: "Corpo dentro do limite", limit: 10, body: "0123456789"},
		{name: "Corpo acima do limite", limit: 10, body: "0123456789A", wantErr: true},
		{name: "Limite desativado", limit: 0, body: strings.Repeat("x", 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var readErr error
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, readErr = io.ReadAll(r.Body)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/data", strings.NewReader(tt.body))
			MaxBodySize(tt.limit)(next).ServeHTTP(httptest.NewRecorder(), req)

			if tt.wantErr {
				assert.Error(t, readErr)
				return
			}
			assert.NoError(t, readErr)
		})
	}
}

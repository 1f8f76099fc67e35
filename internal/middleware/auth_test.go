package middleware

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func newAuthTestApp(token string, handlerCalls *int) *fiber.App {
	app := fiber.New()
	auth := NewAdminAuth(token)
	// Registered the way routes.go does it: the token check first, the
	// handler only reachable through c.Next().
	app.Get("/protected", auth.RequireToken, func(c fiber.Ctx) error {
		*handlerCalls++
		return c.SendString("ok")
	})
	return app
}

func TestRequireToken(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{
			name:       "valid token",
			header:     "Bearer test-admin-token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong token",
			header:     "Bearer nope",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token without bearer prefix",
			header:     "test-admin-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic dGVzdA==",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token with trailing garbage",
			header:     "Bearer test-admin-token-extended",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "lowercase bearer",
			header:     "bearer test-admin-token",
			wantStatus: http.StatusUnauthorized,
		},
	}

	var handlerCalls int
	app := newAuthTestApp("test-admin-token", &handlerCalls)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalls = 0

			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			// A rejected request must never reach the protected handler.
			wantCalls := 0
			if tt.wantStatus == http.StatusOK {
				wantCalls = 1
			}
			if handlerCalls != wantCalls {
				t.Errorf("handler ran %d times, want %d", handlerCalls, wantCalls)
			}
		})
	}
}

package permissions

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type stubOracle struct {
	allow bool
}

func (s stubOracle) Allowed(userID, action, module string) (bool, error) {
	return s.allow, nil
}

func TestRequire(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		allow      bool
		wantStatus int
	}{
		{name: "granted", userID: "user-1", allow: true, wantStatus: 200},
		{name: "denied", userID: "user-1", allow: false, wantStatus: 403},
		{name: "unauthenticated", userID: "", allow: true, wantStatus: 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/guarded",
				func(c *fiber.Ctx) error {
					if tt.userID != "" {
						c.Locals("user_id", tt.userID)
					}
					return c.Next()
				},
				Require(stubOracle{allow: tt.allow}, "read", "attendance"),
				func(c *fiber.Ctx) error {
					return c.SendString("ok")
				},
			)

			resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

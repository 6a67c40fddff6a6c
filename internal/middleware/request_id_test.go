package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})
	return app
}

func TestRequestIDGenerated(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	header := resp.Header.Get(RequestIDHeader)
	if _, err := uuid.Parse(header); err != nil {
		t.Fatalf("header %q is not a uuid: %v", header, err)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != header {
		t.Errorf("Locals request id = %q, header = %q", body, header)
	}
}

func TestRequestIDPropagated(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get(RequestIDHeader); got != "upstream-id" {
		t.Errorf("header = %q, want upstream-id", got)
	}
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if id := GetRequestID(c); id != "" {
			t.Errorf("GetRequestID() = %q, want empty", id)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	resp.Body.Close()
}

package utils

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientIP(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetClientIP(c))
	})

	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded list", map[string]string{"X-Forwarded-For": " 203.0.113.7 , 10.0.0.1"}, "203.0.113.7"},
		{"single forwarded", map[string]string{"X-Forwarded-For": "198.51.100.2"}, "198.51.100.2"},
		{"real ip fallback", map[string]string{"X-Real-IP": "192.0.2.9"}, "192.0.2.9"},
		{"forwarded wins", map[string]string{"X-Forwarded-For": "198.51.100.2", "X-Real-IP": "192.0.2.9"}, "198.51.100.2"},
		{"no header", nil, UnknownClientIP},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tc.want, string(body))
		})
	}
}

package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UnknownClientIP ist der Platzhalter, wenn kein Proxy-Header vorhanden ist.
const UnknownClientIP = "unknown"

// GetClientIP ermittelt die Client-Kennung aus den Proxy-Headern:
// erster Eintrag von X-Forwarded-For, sonst X-Real-IP, sonst UnknownClientIP.
func GetClientIP(c *fiber.Ctx) string {
	if xff := c.Get(fiber.HeaderXForwardedFor); xff != "" {
		first := xff
		if comma := strings.IndexByte(xff, ','); comma >= 0 {
			first = xff[:comma]
		}
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(c.Get("X-Real-IP")); xri != "" {
		return xri
	}

	return UnknownClientIP
}

package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieConfig beschreibt das Sitzungs-Cookie.
type CookieConfig struct {
	Name   string
	Secure bool // nur in Produktion
	MaxAge time.Duration
}

// SetSessionCookie setzt das Token als HttpOnly-, SameSite=Strict-Cookie auf Pfad "/".
func SetSessionCookie(c *fiber.Ctx, cfg CookieConfig, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		Expires:  time.Now().Add(cfg.MaxAge),
		Secure:   cfg.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// ClearSessionCookie löscht das Cookie mit denselben Attributen, mit denen es gesetzt wurde.
func ClearSessionCookie(c *fiber.Ctx, cfg CookieConfig) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   cfg.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

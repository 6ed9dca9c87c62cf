package middleware

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// Nur Sprachen mit eigener Übersetzungsdatei. Reihenfolge gleich mit matcher.
var supportedLangs = []string{"en", "de"}

var matcher = language.NewMatcher([]language.Tag{language.English, language.German})

// AcceptLanguageMiddleware wählt aus Accept-Language (z. B. "de-DE,de;q=0.9,en;q=0.7") die beste unterstützte Sprache und speichert sie bei c.Locals.
func AcceptLanguageMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := supportedLangs[0]

		tags, _, err := language.ParseAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
		if err == nil && len(tags) > 0 {
			if _, idx, conf := matcher.Match(tags...); conf != language.No {
				lang = supportedLangs[idx]
			}
		}

		c.Locals("lang", lang)
		return c.Next()
	}
}

package middleware

import (
	"github.com/arganshop/backend/internal/i18n"
	"github.com/gin-gonic/gin"
)

const localeKey = "locale"

// Locale resolves the response language from the Accept-Language header.
// Unsupported or missing languages fall back to English.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.Match(c.GetHeader("Accept-Language"))
		c.Set(localeKey, locale)
		c.Writer.Header().Set("Content-Language", locale.Tag().String())
		c.Next()
	}
}

// GetLocale returns the locale resolved for this request
func GetLocale(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(localeKey); ok {
		if locale, ok := v.(i18n.Locale); ok {
			return locale
		}
	}
	return i18n.Match("")
}

package middleware

import (
	"todo/pkg/translator"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const langKey = "lang"

var (
	supportedLanguages = []string{translator.LanguageEn, translator.LanguageJa, translator.LanguageFr}
	languageMatcher    = language.NewMatcher([]language.Tag{language.English, language.Japanese, language.French})
)

// LanguageMiddleware is a Gin middleware that sets the language based on the Accept-Language header.
// The stored value is the best supported match, English when nothing matches.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, matchLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func matchLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.LanguageEn
	}
	_, index, confidence := languageMatcher.Match(tags...)
	if confidence == language.No {
		return translator.LanguageEn
	}
	return supportedLanguages[index]
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}

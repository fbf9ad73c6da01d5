package translator

import (
	"io/fs"
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	FS                 fs.FS    // Read instead of TranslationFolder when set
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageEn = "en"
	LanguageFr = "fr"
	LanguageJa = "ja"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	fsys := cfg.FS
	if fsys == nil {
		fsys = os.DirFS(cfg.TranslationFolder)
	}

	lstFiles, err := fs.ReadDir(fsys, ".")
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() || path.Ext(f.Name()) != ".toml" {
			continue
		}

		buf, err := fs.ReadFile(fsys, f.Name())
		if err != nil {
			zap.L().Warn("failed to read translation file", zap.String("file", f.Name()), zap.Error(err))
			continue
		}

		if _, err := Translator.ParseMessageFileBytes(buf, f.Name()); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// Localize returns the message for msgID in lang, falling back to English and
// then to msgID itself.
func Localize(lang, msgID string) (string, error) {
	if Translator == nil {
		return msgID, nil
	}

	l := i18n.NewLocalizer(Translator, lang, LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: msgID})
	if err != nil {
		return msgID, err
	}
	return msg, nil
}

package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/es_ES"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"

	"github.com/arloliu/rota/types"
)

// DefaultLocale is used when no locale, or an unsupported one, is requested.
const DefaultLocale = "es_ES"

var (
	uniOnce sync.Once
	uni     *ut.UniversalTranslator
)

func universal() *ut.UniversalTranslator {
	uniOnce.Do(func() {
		fallback := es_ES.New()
		uni = ut.New(fallback, fallback, es.New(), en.New(), fr.New(), pt_BR.New())
	})

	return uni
}

// Supported reports whether locale has month names available.
func Supported(locale string) bool {
	_, found := universal().GetTranslator(normalizeLocale(locale))
	return found
}

// translator returns the locale translator, falling back to DefaultLocale.
func translator(locale string) locales.Translator {
	if locale == "" {
		locale = DefaultLocale
	}
	trans, _ := universal().GetTranslator(normalizeLocale(locale))

	return trans
}

// normalizeLocale accepts BCP 47 style tags ("es-ES") as well as CLDR ones ("es_ES").
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "-", "_")
}

// MonthLabel returns the long month name and year in the given locale.
//
// Examples:
//   - es_ES: "junio de 2024"
//   - en:    "June 2024"
//   - fr:    "juin 2024"
//
// Unsupported locales fall back to DefaultLocale.
func MonthLabel(month types.Month, locale string) string {
	trans := translator(locale)
	name := trans.MonthWide(month.Month)

	switch lang, _, _ := strings.Cut(trans.Locale(), "_"); lang {
	case "es", "pt":
		return fmt.Sprintf("%s de %d", name, month.Year)
	default:
		return fmt.Sprintf("%s %d", name, month.Year)
	}
}

// FormatDate formats a date as dd/mm/yyyy.
func FormatDate(d types.Date) string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

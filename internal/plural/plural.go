// Package plural maps language tags to the number of plural forms a gettext
// catalog for that language is expected to declare in its Plural-Forms header.
package plural

import "strings"

// NPlurals returns the expected nplurals value for the given language tag and
// whether the language is known. Tags are normalized to their base
// ("pt-BR" -> "pt", "sr_Latn" -> "sr"); unknown languages report ok=false so
// callers can skip the check instead of guessing.
func NPlurals(lang string) (int, bool) {
	base := strings.ToLower(strings.TrimSpace(lang))
	if idx := strings.Index(base, "-"); idx > 0 {
		base = base[:idx]
	}
	if idx := strings.Index(base, "_"); idx > 0 {
		base = base[:idx]
	}
	switch base {
	case "ja", "ko", "zh", "th", "vi", "id":
		// No grammatical plural.
		return 1, true
	case "ar":
		return 6, true
	case "ga":
		return 5, true
	case "cy":
		return 4, true
	case "ru", "uk", "be", "sr", "hr", "bs", "sh", "pl", "cs", "sk", "lt":
		return 3, true
	case "en", "es", "fr", "de", "it", "pt", "nl", "no", "nb", "sv", "da", "fi", "tr", "el", "hi", "he", "hu", "ro", "bg", "ca", "et", "eu", "gl":
		return 2, true
	default:
		return 0, false
	}
}

package translit

import (
	"fmt"

	iso "github.com/barbashov/iso639-3"
	"github.com/vidyapeetha/vyakarana"
)

// ValidateLanguageHint resolves a caller-supplied language code (any of
// ISO 639-1/2/3, per iso639-3's own FromAnyCode matching), returning
// ErrEnumParse for an unrecognized code. It does not compare the language
// with any scheme; TransliterateForLanguage makes that check. Grounded on the teacher's own use of iso.FromAnyCode in
// common/static.go.
func ValidateLanguageHint(code string) (*iso.Language, error) {
	lang := iso.FromAnyCode(code)
	if lang == nil {
		return nil, fmt.Errorf("%w: %q is not a recognized language code", vyakarana.ErrEnumParse, code)
	}
	return lang, nil
}

// schemeLanguage names the ISO 639-3 code each abugida scheme and
// CyrillicPractical is native to, so TransliterateForLanguage can
// cross-check a caller's language hint against the scheme they asked for;
// the Latin romanizations have no entry and are not checked.
var schemeLanguage = map[Scheme]string{
	Devanagari:        "san",
	Bengali:           "ben",
	Kannada:           "kan",
	Telugu:            "tel",
	Grantha:           "san",
	Tamil:             "tam",
	Khmer:             "khm",
	Thai:              "tha",
	Tibetan:           "bod",
	CyrillicPractical: "rus",
}

// TransliterateForLanguage behaves like Transliterate but first validates
// languageHint against dest's native language (schemeLanguage), rejecting
// a mismatch (e.g. dest=Kannada with languageHint="hi") before spending
// any work on the scheme tables. An empty languageHint skips the check.
func TransliterateForLanguage(text string, source, dest Scheme, languageHint string) (string, error) {
	if languageHint != "" {
		lang, err := ValidateLanguageHint(languageHint)
		if err != nil {
			return "", err
		}
		if want, ok := schemeLanguage[dest]; ok && lang.Part3 != want {
			return "", fmt.Errorf("%w: language hint %q (%s) does not match destination scheme %q",
				vyakarana.ErrEnumParse, languageHint, lang.Part3, dest)
		}
	}
	return Transliterate(text, source, dest)
}

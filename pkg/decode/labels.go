package decode

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Translator resolves a journal identifier to a display name. It is an
// injected vocabulary lookup; an empty result means "not known".
type Translator interface {
	Translate(id string) string
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(id string) string

func (f TranslatorFunc) Translate(id string) string { return f(id) }

// CanonicalID strips the localisation wrapping from a journal symbol and
// lowercases it, so "$gold_name;" and "Gold" key the same item.
func CanonicalID(id string) string {
	s := strings.TrimSpace(id)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, ";")
	s = strings.TrimSuffix(s, "_name")
	s = strings.TrimSuffix(s, "_Name")
	return strings.ToLower(s)
}

// FallbackLabel derives a display label from a raw identifier when no
// localised name is available. It is a pure function of id: the symbol is
// unwrapped, split on separators, case changes and letter/digit
// boundaries, and each token is title-cased.
//
//	"$int_hullreinforcement_size3_class2_name;" -> "Int Hullreinforcement Size 3 Class 2"
//	"FerDeLance" -> "Fer De Lance"
func FallbackLabel(id string) string {
	s := strings.TrimSpace(id)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, ";")
	if low := strings.ToLower(s); strings.HasSuffix(low, "_name") {
		s = s[:len(s)-len("_name")]
	}
	tokens := splitTokens(s)
	if len(tokens) == 0 {
		return ""
	}
	caser := cases.Title(language.English)
	for i, tok := range tokens {
		tokens[i] = caser.String(tok)
	}
	return norm.NFC.String(strings.Join(tokens, " "))
}

func splitTokens(s string) []string {
	var tokens []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
		}
	}
	runes := []rune(s)
	for i, r := range runes {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			flush()
			continue
		}
		if i > 0 && len(cur) > 0 {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case unicode.IsLetter(prev) && unicode.IsDigit(r):
				flush()
			case unicode.IsDigit(prev) && unicode.IsLetter(r):
				flush()
			case unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return tokens
}

package language

import (
	"fmt"
	"sort"
	"strings"
)

// Language is a language code accepted by the Youdao API.
type Language struct {
	Code string
	Name string
}

const (
	Auto              = "auto"
	English           = "en"
	ChineseSimplified = "zh-CHS"
)

// Languages maps CLI identifiers to Youdao language codes. Aliases point at
// the canonical entry.
var Languages = map[string]Language{
	"auto":    {Code: "auto", Name: "Auto Detect"},
	"ar":      {Code: "ar", Name: "Arabic"},
	"bg":      {Code: "bg", Name: "Bulgarian"},
	"ca":      {Code: "ca", Name: "Catalan"},
	"cs":      {Code: "cs", Name: "Czech"},
	"cy":      {Code: "cy", Name: "Welsh"},
	"da":      {Code: "da", Name: "Danish"},
	"de":      {Code: "de", Name: "German"},
	"el":      {Code: "el", Name: "Greek"},
	"en":      {Code: "en", Name: "English"},
	"es":      {Code: "es", Name: "Spanish"},
	"et":      {Code: "et", Name: "Estonian"},
	"fa":      {Code: "fa", Name: "Persian"},
	"fi":      {Code: "fi", Name: "Finnish"},
	"fr":      {Code: "fr", Name: "French"},
	"he":      {Code: "he", Name: "Hebrew"},
	"hi":      {Code: "hi", Name: "Hindi"},
	"hr":      {Code: "hr", Name: "Croatian"},
	"hu":      {Code: "hu", Name: "Hungarian"},
	"id":      {Code: "id", Name: "Indonesian"},
	"it":      {Code: "it", Name: "Italian"},
	"ja":      {Code: "ja", Name: "Japanese"},
	"ko":      {Code: "ko", Name: "Korean"},
	"lt":      {Code: "lt", Name: "Lithuanian"},
	"lv":      {Code: "lv", Name: "Latvian"},
	"ms":      {Code: "ms", Name: "Malay"},
	"nl":      {Code: "nl", Name: "Dutch"},
	"no":      {Code: "no", Name: "Norwegian"},
	"pl":      {Code: "pl", Name: "Polish"},
	"pt":      {Code: "pt", Name: "Portuguese"},
	"ro":      {Code: "ro", Name: "Romanian"},
	"ru":      {Code: "ru", Name: "Russian"},
	"sk":      {Code: "sk", Name: "Slovak"},
	"sl":      {Code: "sl", Name: "Slovenian"},
	"sv":      {Code: "sv", Name: "Swedish"},
	"th":      {Code: "th", Name: "Thai"},
	"tr":      {Code: "tr", Name: "Turkish"},
	"uk":      {Code: "uk", Name: "Ukrainian"},
	"ur":      {Code: "ur", Name: "Urdu"},
	"vi":      {Code: "vi", Name: "Vietnamese"},
	"yue":     {Code: "yue", Name: "Cantonese"},
	"zh-CHS":  {Code: "zh-CHS", Name: "Chinese (Simplified)"},
	"zh-CHT":  {Code: "zh-CHT", Name: "Chinese (Traditional)"},
	"zh":      {Code: "zh-CHS", Name: "Chinese (Simplified)"}, // alias
	"zh-Hans": {Code: "zh-CHS", Name: "Chinese (Simplified)"}, // alias
	"zh-Hant": {Code: "zh-CHT", Name: "Chinese (Traditional)"}, // alias
}

// GetLanguage returns the exact match for id.
func GetLanguage(id string) (Language, bool) {
	lang, ok := Languages[id]
	return lang, ok
}

// LanguageEntry represents a map entry for listing.
type LanguageEntry struct {
	ID string // The map key (CLI flag)
	Language
}

// GetSupportedLanguages returns a list of supported languages sorted by Name and then ID.
func GetSupportedLanguages() []LanguageEntry {
	entries := make([]LanguageEntry, 0, len(Languages))
	for k, v := range Languages {
		entries = append(entries, LanguageEntry{ID: k, Language: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].ID < entries[j].ID
	})
	return entries
}

// Resolve accepts an identifier, a Youdao code in any case, or an English
// language name and returns the Youdao code.
func Resolve(input string) (string, error) {
	needle := strings.TrimSpace(input)
	if needle == "" {
		return "", fmt.Errorf("language is empty")
	}
	if lang, ok := GetLanguage(needle); ok {
		return lang.Code, nil
	}
	for id, lang := range Languages {
		if strings.EqualFold(id, needle) || strings.EqualFold(lang.Name, needle) {
			return lang.Code, nil
		}
	}
	return "", fmt.Errorf("unsupported language: %s", input)
}

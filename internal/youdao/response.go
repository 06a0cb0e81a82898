package youdao

import (
	"errors"
	"strings"

	"github.com/oukeidos/ydt/internal/apperrors"
	"github.com/oukeidos/ydt/internal/dict"
	"github.com/tidwall/gjson"
)

// outcome is the closed set of decoded response shapes.
type outcome interface {
	outcome()
}

type failure struct {
	code string
}

type success struct {
	doc gjson.Result
}

func (failure) outcome() {}
func (success) outcome() {}

// Parse normalizes a raw Youdao response. It is a pure function of raw.
func Parse(raw []byte) (*dict.Result, error) {
	return parse(raw, "")
}

// parse is Parse with the looked-up word standing in for an absent query
// field.
func parse(raw []byte, word string) (*dict.Result, error) {
	o, err := decode(raw)
	if err != nil {
		return nil, err
	}
	switch v := o.(type) {
	case failure:
		return nil, providerError(v.code)
	case success:
		return v.result(word), nil
	default:
		return nil, apperrors.Parse(errors.New("unhandled response shape"))
	}
}

func decode(raw []byte) (outcome, error) {
	if !gjson.ValidBytes(raw) {
		return nil, apperrors.Parse(errors.New("malformed JSON"))
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, apperrors.Parse(errors.New("response is not a JSON object"))
	}

	code := doc.Get("errorCode")
	if !code.Exists() || code.Type == gjson.Null {
		return success{doc: doc}, nil
	}
	if code.Type != gjson.String && code.Type != gjson.Number {
		return nil, apperrors.Parse(errors.New("errorCode is neither a string nor a number"))
	}
	c := strings.TrimSpace(code.String())
	if c == "" || c == "0" {
		return success{doc: doc}, nil
	}
	return failure{code: c}, nil
}

func (s success) result(word string) *dict.Result {
	doc := s.doc
	basic := doc.Get("basic")

	res := &dict.Result{
		Query:        strings.TrimSpace(doc.Get("query").String()),
		Phonetic:     strings.TrimSpace(basic.Get("phonetic").String()),
		Translations: stringList(doc.Get("translation")),
		Explanations: []dict.Explanation{},
	}
	if res.Query == "" {
		res.Query = strings.TrimSpace(word)
	}
	for _, text := range stringList(basic.Get("explains")) {
		res.Explanations = append(res.Explanations, dict.Explanation{Text: text})
	}
	if uk := strings.TrimSpace(basic.Get("uk-phonetic").String()); uk != "" {
		res.Phonetics = append(res.Phonetics, dict.Phonetic{Label: "UK", Notation: uk})
	}
	if us := strings.TrimSpace(basic.Get("us-phonetic").String()); us != "" {
		res.Phonetics = append(res.Phonetics, dict.Phonetic{Label: "US", Notation: us})
	}
	doc.Get("web").ForEach(func(_, item gjson.Result) bool {
		key := strings.TrimSpace(item.Get("key").String())
		values := stringList(item.Get("value"))
		if key != "" && len(values) > 0 {
			res.Phrases = append(res.Phrases, dict.Phrase{Key: key, Values: values})
		}
		return true
	})

	if len(res.Translations) == 0 && len(res.Explanations) == 0 {
		res.IsWord = false
		if guess := bestGuess(res.Query, res.Phrases); guess != "" {
			res.Translations = []string{guess}
		}
		return res
	}

	if flag := doc.Get("isWord"); flag.Type == gjson.True || flag.Type == gjson.False {
		res.IsWord = flag.Bool()
	} else {
		res.IsWord = len(res.Explanations) > 0
	}
	return res
}

// bestGuess picks a fallback translation from the web phrases: the entry
// whose key matches the query, otherwise the first entry.
func bestGuess(query string, phrases []dict.Phrase) string {
	if len(phrases) == 0 {
		return ""
	}
	for _, p := range phrases {
		if strings.EqualFold(p.Key, query) {
			return p.Values[0]
		}
	}
	return phrases[0].Values[0]
}

// stringList reads a JSON array of strings, or a lone string, dropping
// blanks and non-string members.
func stringList(v gjson.Result) []string {
	out := []string{}
	switch {
	case v.IsArray():
		v.ForEach(func(_, item gjson.Result) bool {
			if item.Type == gjson.String {
				if s := strings.TrimSpace(item.String()); s != "" {
					out = append(out, s)
				}
			}
			return true
		})
	case v.Type == gjson.String:
		if s := strings.TrimSpace(v.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

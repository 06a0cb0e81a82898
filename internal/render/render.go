// Package render prints lookup results for the terminal or as JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/oukeidos/ydt/internal/dict"
	"github.com/rivo/uniseg"
)

// ColorMode selects when ANSI styling is emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a --color value.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

const noResults = "No results."

type Renderer struct {
	w        io.Writer
	phonetic lipgloss.Style
	pos      lipgloss.Style
	text     lipgloss.Style
	heading  lipgloss.Style
	key      lipgloss.Style
	muted    lipgloss.Style
}

// New returns a Renderer writing to w. In auto mode the color profile is
// detected from w, so pipes and files get plain text.
func New(w io.Writer, mode ColorMode) *Renderer {
	lr := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		lr.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		w:        w,
		phonetic: lr.NewStyle().Foreground(lipgloss.Color("6")),
		pos:      lr.NewStyle().Foreground(lipgloss.Color("3")).Italic(true),
		text:     lr.NewStyle(),
		heading:  lr.NewStyle().Bold(true),
		key:      lr.NewStyle().Foreground(lipgloss.Color("4")),
		muted:    lr.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Render writes a human-readable definition. An empty result prints
// "No results.".
func (r *Renderer) Render(res *dict.Result) error {
	if res == nil || res.Empty() {
		_, err := fmt.Fprintln(r.w, r.muted.Render(noResults))
		return err
	}

	var lines []string
	if line := r.phoneticLine(res); line != "" {
		lines = append(lines, line)
	}
	for _, exp := range res.Explanations {
		if exp.PartOfSpeech != "" {
			lines = append(lines, r.pos.Render(exp.PartOfSpeech+":")+" "+r.text.Render(exp.Text))
			continue
		}
		lines = append(lines, r.text.Render(exp.Text))
	}
	if len(res.Translations) > 0 {
		if len(res.Explanations) > 0 {
			lines = append(lines, r.heading.Render("Translation:")+" "+strings.Join(res.Translations, "; "))
		} else {
			lines = append(lines, res.Translations...)
		}
	}
	if len(res.Phrases) > 0 {
		lines = append(lines, r.heading.Render("Web:"))
		lines = append(lines, r.phraseLines(res.Phrases)...)
	}

	_, err := fmt.Fprintln(r.w, strings.Join(lines, "\n"))
	return err
}

// phoneticLine prefers labeled transcriptions and falls back to the
// generic one in brackets.
func (r *Renderer) phoneticLine(res *dict.Result) string {
	if len(res.Phonetics) > 0 {
		parts := make([]string, 0, len(res.Phonetics))
		for _, p := range res.Phonetics {
			parts = append(parts, p.Label+" "+r.phonetic.Render(p.Notation))
		}
		return strings.Join(parts, " ")
	}
	if res.Phonetic != "" {
		return r.phonetic.Render("[" + res.Phonetic + "]")
	}
	return ""
}

// phraseLines aligns phrase keys by display width so CJK keys line up.
func (r *Renderer) phraseLines(phrases []dict.Phrase) []string {
	width := 0
	for _, p := range phrases {
		if w := uniseg.StringWidth(p.Key); w > width {
			width = w
		}
	}
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		pad := strings.Repeat(" ", width-uniseg.StringWidth(p.Key))
		out = append(out, "  "+r.key.Render(p.Key)+pad+"  "+strings.Join(p.Values, "; "))
	}
	return out
}

// JSON writes res as indented JSON.
func JSON(w io.Writer, res *dict.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

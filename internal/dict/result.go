// Package dict holds the canonical lookup result that every response is
// normalized into before rendering.
package dict

// Explanation is one dictionary sense. PartOfSpeech is empty when the
// source does not tag the sense separately from its gloss.
type Explanation struct {
	PartOfSpeech string `json:"part_of_speech,omitempty"`
	Text         string `json:"text"`
}

// Phonetic is a labeled transcription such as the UK or US pronunciation.
type Phonetic struct {
	Label    string `json:"label"`
	Notation string `json:"notation"`
}

// Phrase is a web phrase or example with its translations.
type Phrase struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

// Result is the canonical lookup result. Slices keep source order.
type Result struct {
	Query        string        `json:"query"`
	Phonetic     string        `json:"phonetic,omitempty"`
	Phonetics    []Phonetic    `json:"phonetics,omitempty"`
	Translations []string      `json:"translations"`
	Explanations []Explanation `json:"explanations"`
	Phrases      []Phrase      `json:"phrases,omitempty"`
	IsWord       bool          `json:"is_word"`
}

// Empty reports whether the result carries nothing worth rendering.
func (r *Result) Empty() bool {
	return r.Phonetic == "" &&
		len(r.Phonetics) == 0 &&
		len(r.Translations) == 0 &&
		len(r.Explanations) == 0 &&
		len(r.Phrases) == 0
}

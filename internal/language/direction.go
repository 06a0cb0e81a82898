package language

// Pair is a source and target language code.
type Pair struct {
	From string
	To   string
}

// DefaultPair picks the lookup direction for word: Chinese words are looked
// up into English, everything else into Simplified Chinese.
func DefaultPair(word string) Pair {
	if ContainsCJKIdeograph(word) {
		return Pair{From: ChineseSimplified, To: English}
	}
	return Pair{From: English, To: ChineseSimplified}
}

// PairFor resolves the direction, letting explicit codes override the
// detected defaults.
func PairFor(word, from, to string) (Pair, error) {
	pair := DefaultPair(word)
	if from != "" {
		code, err := Resolve(from)
		if err != nil {
			return Pair{}, err
		}
		pair.From = code
	}
	if to != "" {
		code, err := Resolve(to)
		if err != nil {
			return Pair{}, err
		}
		pair.To = code
	}
	return pair, nil
}

// ContainsCJKIdeograph reports whether text has a character from a CJK
// Unified Ideographs block or its extensions.
func ContainsCJKIdeograph(text string) bool {
	for _, r := range text {
		switch {
		case r >= 0x3400 && r <= 0x4DBF,
			r >= 0x4E00 && r <= 0x9FFF,
			r >= 0xF900 && r <= 0xFAFF,
			r >= 0x20000 && r <= 0x2A6DF,
			r >= 0x2A700 && r <= 0x2B73F,
			r >= 0x2B740 && r <= 0x2B81F,
			r >= 0x2B820 && r <= 0x2CEAF,
			r >= 0x2CEB0 && r <= 0x2EBEF,
			r >= 0x30000 && r <= 0x3134F,
			r >= 0x31350 && r <= 0x323AF:
			return true
		}
	}
	return false
}

package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsCJKIdeograph(t *testing.T) {
	assert.True(t, ContainsCJKIdeograph("学习"))
	assert.True(t, ContainsCJKIdeograph("study 学"))
	assert.True(t, ContainsCJKIdeograph("𠀀"))
	assert.False(t, ContainsCJKIdeograph("hello"))
	assert.False(t, ContainsCJKIdeograph("こんにちは"))
	assert.False(t, ContainsCJKIdeograph(""))
}

func TestDefaultPair(t *testing.T) {
	assert.Equal(t, Pair{From: "en", To: "zh-CHS"}, DefaultPair("hello"))
	assert.Equal(t, Pair{From: "zh-CHS", To: "en"}, DefaultPair("学习"))
}

func TestPairFor_Overrides(t *testing.T) {
	pair, err := PairFor("hello", "", "ja")
	require.NoError(t, err)
	assert.Equal(t, Pair{From: "en", To: "ja"}, pair)

	pair, err = PairFor("学习", "zh", "French")
	require.NoError(t, err)
	assert.Equal(t, Pair{From: "zh-CHS", To: "fr"}, pair)

	_, err = PairFor("hello", "klingon", "")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	tests := map[string]string{
		"en":                    "en",
		"zh-chs":                "zh-CHS",
		"zh-Hant":               "zh-CHT",
		"Chinese (Traditional)": "zh-CHT",
		" japanese ":            "ja",
	}
	for in, want := range tests {
		got, err := Resolve(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := Resolve("  ")
	assert.Error(t, err)
}

func TestGetSupportedLanguages_Sorted(t *testing.T) {
	entries := GetSupportedLanguages()
	require.Len(t, entries, len(Languages))
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if prev.Name == cur.Name {
			assert.Less(t, prev.ID, cur.ID)
		} else {
			assert.Less(t, prev.Name, cur.Name)
		}
	}
}

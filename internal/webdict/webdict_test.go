package webdict

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/oukeidos/ydt/internal/apperrors"
	"github.com/oukeidos/ydt/internal/dict"
	"github.com/oukeidos/ydt/internal/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const englishPage = `
<div class="trans-container">
  <div class="per-phone">
    <span>英</span><span class="phonetic">/həˈləʊ/</span>
  </div>
  <div class="per-phone">
    <span>美</span><span class="phonetic">/həˈloʊ/</span>
  </div>
</div>
<div class="trans-container">
  <li class="word-exp">
    <span class="pos">int.</span>
    <span class="trans">你好</span>
  </li>
  <li class="word-exp">
    <span class="pos">n.</span>
    <span class="trans">表示问候</span>
  </li>
  <li class="word-exp">
    <span class="trans">no part of speech</span>
  </li>
</div>
`

const chinesePage = `
<li class="word-exp-ce mcols-layout">
  <a class="point">study</a>
</li>
<li class="word-exp-ce mcols-layout">
  <a class="point">learn</a>
</li>
<li class="word-exp-ce">
  <a class="point">ignored</a>
</li>
`

func TestParse_EnglishWord(t *testing.T) {
	got, err := Parse("hello", []byte(englishPage))
	require.NoError(t, err)
	assert.Equal(t, []dict.Phonetic{
		{Label: "英", Notation: "/həˈləʊ/"},
		{Label: "美", Notation: "/həˈloʊ/"},
	}, got.Phonetics)
	assert.Equal(t, []dict.Explanation{
		{PartOfSpeech: "int.", Text: "你好"},
		{PartOfSpeech: "n.", Text: "表示问候"},
	}, got.Explanations)
	assert.True(t, got.IsWord)
}

func TestParse_ChineseWord(t *testing.T) {
	got, err := Parse("学习", []byte(chinesePage))
	require.NoError(t, err)
	assert.Equal(t, []string{"study", "learn"}, got.Translations)
	assert.Empty(t, got.Explanations)
}

func TestParse_NoResults(t *testing.T) {
	got, err := Parse("qwzx", []byte(`<html><body><p>nothing here</p></body></html>`))
	require.NoError(t, err)
	assert.True(t, got.Empty())
	assert.False(t, got.IsWord)
}

func TestClient_Lookup(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "hello", r.URL.Query().Get("word"))
		assert.Equal(t, "en", r.URL.Query().Get("lang"))
		assert.Contains(t, r.UserAgent(), "ydt/")
		w.Write([]byte(englishPage))
	}))
	defer server.Close()

	got, err := NewClient(server.URL, nil).Lookup(context.Background(), " hello ")
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Query)
	assert.Len(t, got.Explanations, 2)
	assert.EqualValues(t, 1, hits.Load())
}

func TestClient_Lookup_ForbiddenNotRetried(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	restore := httpclient.SetDefaultClientForTesting(httpclient.NewClient(time.Second))
	defer restore()

	_, err := NewClient(server.URL, nil).Lookup(context.Background(), "hello")
	kind, _ := apperrors.KindOf(err)
	assert.Equal(t, apperrors.KindHTTPStatus, kind)
	assert.EqualValues(t, 1, hits.Load())
}

func TestClient_Lookup_EmptyWord(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:1", nil).Lookup(context.Background(), "")
	kind, _ := apperrors.KindOf(err)
	assert.Equal(t, apperrors.KindInvalidInput, kind)
}

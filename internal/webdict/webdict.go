// Package webdict looks words up on Youdao's public result page and
// normalizes the HTML into a dict.Result. It needs no credentials.
package webdict

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/oukeidos/ydt/internal/apperrors"
	"github.com/oukeidos/ydt/internal/dict"
	"github.com/oukeidos/ydt/internal/httpclient"
	"github.com/oukeidos/ydt/internal/language"
)

// DefaultURL is the Youdao web dictionary result page.
const DefaultURL = "https://www.youdao.com/result"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for baseURL, or DefaultURL when empty.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultURL
	}
	if httpClient == nil {
		httpClient = httpclient.GetDefaultClient()
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Lookup fetches the result page for word once and parses it.
func (c *Client) Lookup(ctx context.Context, word string) (*dict.Result, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, apperrors.InvalidInput("Word is empty.")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to build request URL: %w", err)
	}
	q := u.Query()
	q.Set("word", word)
	q.Set("lang", "en")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", httpclient.UserAgent())

	slog.Debug("Youdao web request", "word", word)
	body, err := httpclient.Fetch(c.httpClient, req)
	if err != nil {
		return nil, err
	}
	return Parse(word, body)
}

// Parse extracts phonetics, senses and translations from a result page.
// Chinese words read the Chinese-English list; other words read the
// phonetic block and the sense list that follows it.
func Parse(word string, html []byte) (*dict.Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, apperrors.Parse(fmt.Errorf("HTML parse failed: %w", err))
	}

	res := &dict.Result{
		Query:        word,
		Translations: []string{},
		Explanations: []dict.Explanation{},
	}

	if language.ContainsCJKIdeograph(word) {
		doc.Find("li.word-exp-ce.mcols-layout").Each(func(_ int, exp *goquery.Selection) {
			if text := cleanText(exp.Find("a.point").First()); text != "" {
				res.Translations = append(res.Translations, text)
			}
		})
	} else {
		containers := doc.Find("div.trans-container")
		containers.Eq(0).Find("div.per-phone").Each(func(_ int, phone *goquery.Selection) {
			label := cleanText(phone.Find("span").First())
			notation := cleanText(phone.Find("span.phonetic").First())
			if label != "" && notation != "" {
				res.Phonetics = append(res.Phonetics, dict.Phonetic{Label: label, Notation: notation})
			}
		})
		containers.Eq(1).Find("li.word-exp").Each(func(_ int, exp *goquery.Selection) {
			pos := exp.Find("span.pos").First()
			trans := exp.Find("span.trans").First()
			if pos.Length() == 0 || trans.Length() == 0 {
				return
			}
			res.Explanations = append(res.Explanations, dict.Explanation{
				PartOfSpeech: cleanText(pos),
				Text:         cleanText(trans),
			})
		})
	}

	res.IsWord = len(res.Explanations) > 0 || len(res.Translations) > 0
	return res, nil
}

func cleanText(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

package youdao

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oukeidos/ydt/internal/apperrors"
)

// Clock supplies the request timestamp.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SaltSource supplies the per-request nonce.
type SaltSource interface {
	Salt() (string, error)
}

// SaltFunc adapts a function to SaltSource.
type SaltFunc func() (string, error)

func (f SaltFunc) Salt() (string, error) { return f() }

var (
	SystemClock Clock      = ClockFunc(time.Now)
	UUIDSalt    SaltSource = SaltFunc(func() (string, error) {
		u, err := uuid.NewRandom()
		if err != nil {
			return "", err
		}
		return u.String(), nil
	})
)

// Request is a fully signed lookup. It does not hold the app secret.
type Request struct {
	Word      string
	From      string
	To        string
	AppKey    string
	Salt      string
	Timestamp string
	Signature string
}

// Values returns the wire parameters of the request.
func (r *Request) Values() url.Values {
	v := url.Values{}
	v.Set("q", r.Word)
	v.Set("from", r.From)
	v.Set("to", r.To)
	v.Set("appKey", r.AppKey)
	v.Set("salt", r.Salt)
	v.Set("sign", r.Signature)
	v.Set("signType", SignType)
	v.Set("curtime", r.Timestamp)
	return v
}

// Encode returns the form-encoded body. Keys are sorted, so equal requests
// encode to identical bytes.
func (r *Request) Encode() string {
	return r.Values().Encode()
}

// Builder turns words into signed requests for one language pair.
type Builder struct {
	Credentials Credentials
	From        string
	To          string
	Clock       Clock
	Salts       SaltSource
}

// Build validates word and signs a request for it. No I/O is performed
// beyond reading the clock and the salt source.
func (b Builder) Build(word string) (*Request, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, apperrors.InvalidInput("Word is empty.")
	}
	if err := b.Credentials.Validate(); err != nil {
		return nil, err
	}

	clock := b.Clock
	if clock == nil {
		clock = SystemClock
	}
	salts := b.Salts
	if salts == nil {
		salts = UUIDSalt
	}

	salt, err := salts.Salt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	curtime := strconv.FormatInt(clock.Now().Unix(), 10)

	return &Request{
		Word:      word,
		From:      orAuto(b.From),
		To:        orAuto(b.To),
		AppKey:    b.Credentials.AppKey,
		Salt:      salt,
		Timestamp: curtime,
		Signature: Sign(b.Credentials.AppKey, word, salt, curtime, b.Credentials.AppSecret),
	}, nil
}

func orAuto(code string) string {
	if strings.TrimSpace(code) == "" {
		return "auto"
	}
	return code
}

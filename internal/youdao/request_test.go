package youdao

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/oukeidos/ydt/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = Credentials{AppKey: "testkey", AppSecret: "testsecret"}

func fixedBuilder(salt string) Builder {
	return Builder{
		Credentials: testCreds,
		From:        "en",
		To:          "zh-CHS",
		Clock:       ClockFunc(func() time.Time { return time.Unix(1700000000, 0) }),
		Salts:       SaltFunc(func() (string, error) { return salt, nil }),
	}
}

func TestBuild_Deterministic(t *testing.T) {
	for _, word := range []string{"hello", "pneumonoultramicroscopicsilico", "学习", "ice cream"} {
		t.Run(word, func(t *testing.T) {
			a, err := fixedBuilder("salt-1").Build(word)
			require.NoError(t, err)
			b, err := fixedBuilder("salt-1").Build(word)
			require.NoError(t, err)
			assert.Equal(t, a, b)
			assert.Equal(t, a.Encode(), b.Encode())
		})
	}
}

func TestBuild_Fields(t *testing.T) {
	req, err := fixedBuilder("salt-1").Build("  hello ")
	require.NoError(t, err)

	assert.Equal(t, "hello", req.Word)
	assert.Equal(t, "1700000000", req.Timestamp)
	assert.Equal(t, "salt-1", req.Salt)
	assert.Equal(t, "6f04f95360b78675f96742bacfcd90eb302684bcf4866729174a405a3d01916e", req.Signature)

	v, err := url.ParseQuery(req.Encode())
	require.NoError(t, err)
	assert.Equal(t, "hello", v.Get("q"))
	assert.Equal(t, "en", v.Get("from"))
	assert.Equal(t, "zh-CHS", v.Get("to"))
	assert.Equal(t, "testkey", v.Get("appKey"))
	assert.Equal(t, "salt-1", v.Get("salt"))
	assert.Equal(t, req.Signature, v.Get("sign"))
	assert.Equal(t, "v3", v.Get("signType"))
	assert.Equal(t, "1700000000", v.Get("curtime"))
	assert.NotContains(t, req.Encode(), "testsecret")
}

func TestBuild_SignatureRoundTrip(t *testing.T) {
	req, err := fixedBuilder("0f8c7a6e-2d0b-4c1e-9a55-3b2f7d1e6c4a").Build("pneumonoultramicroscopicsilico")
	require.NoError(t, err)

	v, err := url.ParseQuery(req.Encode())
	require.NoError(t, err)
	recomputed := Sign(v.Get("appKey"), v.Get("q"), v.Get("salt"), v.Get("curtime"), testCreds.AppSecret)
	assert.Equal(t, v.Get("sign"), recomputed)
	assert.True(t, VerifySignature(req, testCreds.AppSecret))
}

func TestBuild_EmptyWord(t *testing.T) {
	saltCalls := 0
	b := fixedBuilder("x")
	b.Salts = SaltFunc(func() (string, error) {
		saltCalls++
		return "x", nil
	})
	for _, word := range []string{"", " ", "\t\n", "　"} {
		_, err := b.Build(word)
		kind, ok := apperrors.KindOf(err)
		require.True(t, ok, "word %q", word)
		assert.Equal(t, apperrors.KindInvalidInput, kind, "word %q", word)
	}
	assert.Zero(t, saltCalls)
}

func TestBuild_EmptyWordWinsOverMissingCredentials(t *testing.T) {
	_, err := Builder{}.Build(" ")
	kind, _ := apperrors.KindOf(err)
	assert.Equal(t, apperrors.KindInvalidInput, kind)
}

func TestBuild_MissingCredentials(t *testing.T) {
	b := fixedBuilder("x")
	b.Credentials.AppSecret = ""
	_, err := b.Build("hello")
	kind, _ := apperrors.KindOf(err)
	assert.Equal(t, apperrors.KindConfig, kind)
}

func TestBuild_SaltFailure(t *testing.T) {
	b := fixedBuilder("x")
	b.Salts = SaltFunc(func() (string, error) { return "", errors.New("entropy exhausted") })
	_, err := b.Build("hello")
	require.Error(t, err)
}

func TestBuild_DefaultsToAutoAndFreshSalt(t *testing.T) {
	b := Builder{Credentials: testCreds}
	a, err := b.Build("hello")
	require.NoError(t, err)
	c, err := b.Build("hello")
	require.NoError(t, err)
	assert.Equal(t, "auto", a.From)
	assert.Equal(t, "auto", a.To)
	assert.NotEqual(t, a.Salt, c.Salt)
}

func TestCredentials_NeverFormatSecret(t *testing.T) {
	for _, out := range []string{
		fmt.Sprint(testCreds),
		fmt.Sprintf("%v", testCreds),
		fmt.Sprintf("%+v", testCreds),
		fmt.Sprintf("%#v", testCreds),
		fmt.Sprintf("%+v", fixedBuilder("x")),
		testCreds.LogValue().String(),
	} {
		assert.False(t, strings.Contains(out, "testsecret"), "leaked secret in %q", out)
	}
}

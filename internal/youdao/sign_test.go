package youdao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignInput(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		{"short word unchanged", "hello", "hello"},
		{"exactly twenty runes unchanged", "abcdefghijklmnopqrst", "abcdefghijklmnopqrst"},
		{"thirty runes truncated", "pneumonoultramicroscopicsilico", "pneumonoul30opicsilico"},
		{"counts runes not bytes", "你好世界你好世界你好世界你好世界你好世界你好", "你好世界你好世界你好22你好世界你好世界你好"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SignInput(tt.word))
		})
	}
}

func TestSign_KnownFixtures(t *testing.T) {
	// Fixtures computed independently with sha256sum over the concatenated input.
	assert.Equal(t,
		"6f04f95360b78675f96742bacfcd90eb302684bcf4866729174a405a3d01916e",
		Sign("testkey", "hello", "salt-1", "1700000000", "testsecret"))
	assert.Equal(t,
		"5c84f66d217cb68f7ef47a942e3770587122c9ee21e415e73dcef38e1973d2c3",
		Sign("testkey", "pneumonoultramicroscopicsilico", "salt-1", "1700000000", "testsecret"))
	assert.Equal(t,
		"db5b5e5bbb775de2c19597b95289683af9636395dc4010a61e6a91f916a740a5",
		Sign("testkey", "你好世界你好世界你好世界你好世界你好世界你好", "salt-1", "1700000000", "testsecret"))
}

func TestVerifySignature(t *testing.T) {
	req := &Request{
		Word:      "hello",
		AppKey:    "testkey",
		Salt:      "salt-1",
		Timestamp: "1700000000",
		Signature: "6f04f95360b78675f96742bacfcd90eb302684bcf4866729174a405a3d01916e",
	}
	assert.True(t, VerifySignature(req, "testsecret"))
	assert.False(t, VerifySignature(req, "wrong"))
	assert.False(t, VerifySignature(nil, "testsecret"))
}

package youdao

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
)

// Signature contract of the Youdao open API (signType v3).
const (
	SignType = "v3"
	// Words longer than signInputLimit runes are shortened to
	// first signInputEdge + rune count + last signInputEdge before hashing.
	signInputLimit = 20
	signInputEdge  = 10
)

// SignInput returns the form of word that enters the signature.
func SignInput(word string) string {
	r := []rune(word)
	n := len(r)
	if n <= signInputLimit {
		return word
	}
	return string(r[:signInputEdge]) + strconv.Itoa(n) + string(r[n-signInputEdge:])
}

// Sign computes hex(sha256(appKey + input(word) + salt + curtime + appSecret)).
func Sign(appKey, word, salt, curtime, appSecret string) string {
	h := sha256.New()
	h.Write([]byte(appKey))
	h.Write([]byte(SignInput(word)))
	h.Write([]byte(salt))
	h.Write([]byte(curtime))
	h.Write([]byte(appSecret))
	return hex.EncodeToString(h.Sum(nil))
}

// VerifySignature recomputes the signature of req with appSecret and
// compares it in constant time.
func VerifySignature(req *Request, appSecret string) bool {
	if req == nil {
		return false
	}
	want := Sign(req.AppKey, req.Word, req.Salt, req.Timestamp, appSecret)
	return subtle.ConstantTimeCompare([]byte(want), []byte(req.Signature)) == 1
}

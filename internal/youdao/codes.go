package youdao

import (
	"fmt"

	"github.com/oukeidos/ydt/internal/apperrors"
)

const unknownCategory = "unknown provider error"

// categories maps Youdao errorCode values to a short description.
var categories = map[string]string{
	"101": "missing required parameter",
	"102": "unsupported language pair",
	"103": "text too long",
	"104": "unsupported API type",
	"105": "unsupported signature type",
	"106": "unsupported response type",
	"107": "unsupported transport encryption",
	"108": "invalid signature",
	"109": "invalid batch log format",
	"110": "no valid service instance",
	"111": "invalid developer account",
	"113": "empty query",
	"201": "decryption failed",
	"202": "invalid signature",
	"203": "client IP not allowed",
	"205": "invalid app id for this platform",
	"206": "invalid timestamp",
	"207": "replayed request",
	"301": "dictionary query failed",
	"302": "translation query failed",
	"303": "provider server error",
	"401": "account overdue",
	"411": "rate limit exceeded",
	"412": "rate limit exceeded for long requests",
}

// Category returns the description of a provider error code.
func Category(code string) string {
	if c, ok := categories[code]; ok {
		return c
	}
	return unknownCategory
}

func providerError(code string) error {
	return apperrors.WithCode(
		apperrors.KindProvider,
		code,
		fmt.Sprintf("Youdao API error %s: %s.", code, Category(code)),
		fmt.Errorf("youdao errorCode=%s", code),
	)
}

package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindNetwork      Kind = "network"
	KindTimeout      Kind = "timeout"
	KindHTTPStatus   Kind = "http_status"
	KindParse        Kind = "parse"
	KindProvider     Kind = "provider"
	KindConfig       Kind = "config"
)

// Process exit codes, one per error class.
const (
	ExitOK        = 0
	ExitInput     = 1
	ExitTransport = 2
	ExitProvider  = 3
	ExitConfig    = 4
)

type Error struct {
	Kind Kind
	// SafeMessage is intended for user-facing output and logs.
	SafeMessage string
	// Code is the provider error code or the HTTP status, when one exists.
	Code string
	// Cause keeps the original internal error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.SafeMessage); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindInvalidInput:
		return "Invalid input."
	case KindNetwork:
		return "Network error: the dictionary service is unreachable."
	case KindTimeout:
		return "Request timed out."
	case KindHTTPStatus:
		return "Unexpected HTTP status from the dictionary service."
	case KindParse:
		return "Response from the dictionary service could not be parsed."
	case KindProvider:
		return "The dictionary service rejected the request."
	case KindConfig:
		return "Configuration error."
	default:
		return "Request failed."
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{
		Kind:        kind,
		SafeMessage: msg,
		Cause:       cause,
	}
}

// WithCode is New with a provider code or HTTP status attached.
func WithCode(kind Kind, code, safeMessage string, cause error) error {
	err := New(kind, safeMessage, cause).(*Error)
	err.Code = code
	return err
}

func InvalidInput(msg string) error {
	return New(KindInvalidInput, msg, errors.New(msg))
}

func Network(err error) error {
	return New(KindNetwork, "", err)
}

func Timeout(err error) error {
	return New(KindTimeout, "", err)
}

func UnexpectedStatus(code int, cause error) error {
	return WithCode(KindHTTPStatus, fmt.Sprint(code),
		fmt.Sprintf("Unexpected HTTP status %d from the dictionary service.", code), cause)
}

func Parse(err error) error {
	return New(KindParse, "", err)
}

func Config(msg string, cause error) error {
	return New(KindConfig, msg, cause)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

// CodeOf returns the provider code or HTTP status carried by err.
func CodeOf(err error) (string, bool) {
	var e *Error
	if !errors.As(err, &e) || e.Code == "" {
		return "", false
	}
	return e.Code, true
}

func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

// IsTransport reports whether err came from the transport layer.
func IsTransport(err error) bool {
	kind, ok := KindOf(err)
	if !ok {
		return false
	}
	return kind == KindNetwork || kind == KindTimeout || kind == KindHTTPStatus
}

// ExitCode maps err to the process exit code for its class.
// Errors without a kind are usage errors from the command layer.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	kind, ok := KindOf(err)
	if !ok {
		return ExitInput
	}
	switch kind {
	case KindNetwork, KindTimeout, KindHTTPStatus:
		return ExitTransport
	case KindParse, KindProvider:
		return ExitProvider
	case KindConfig:
		return ExitConfig
	default:
		return ExitInput
	}
}

package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestPublicMessage_UsesSafeMessage(t *testing.T) {
	sentinel := errors.New("SECRET_VALUE")
	err := New(KindProvider, "safe provider error", sentinel)
	if got := PublicMessage(err); got != "safe provider error" {
		t.Fatalf("PublicMessage() = %q, want %q", got, "safe provider error")
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped cause to be retained for internal matching")
	}
}

func TestPublicMessage_DefaultForKind(t *testing.T) {
	err := Timeout(errors.New("deadline"))
	if got := PublicMessage(err); got != "Request timed out." {
		t.Fatalf("PublicMessage() = %q", got)
	}
}

func TestPublicMessage_NonAppError(t *testing.T) {
	err := errors.New("plain")
	if got := PublicMessage(err); got != "plain" {
		t.Fatalf("PublicMessage() = %q, want %q", got, "plain")
	}
}

func TestKindAndCode_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("lookup: %w", WithCode(KindProvider, "108", "", nil))
	kind, ok := KindOf(err)
	if !ok || kind != KindProvider {
		t.Fatalf("KindOf() = (%q, %v), want (%q, true)", kind, ok, KindProvider)
	}
	code, ok := CodeOf(err)
	if !ok || code != "108" {
		t.Fatalf("CodeOf() = (%q, %v), want (108, true)", code, ok)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"invalid input", InvalidInput("word is empty"), ExitInput},
		{"network", Network(errors.New("dial")), ExitTransport},
		{"timeout", Timeout(errors.New("deadline")), ExitTransport},
		{"status", UnexpectedStatus(502, nil), ExitTransport},
		{"parse", Parse(errors.New("bad json")), ExitProvider},
		{"provider", WithCode(KindProvider, "411", "", nil), ExitProvider},
		{"config", Config("no key", nil), ExitConfig},
		{"plain", errors.New("usage"), ExitInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsTransport(t *testing.T) {
	if !IsTransport(UnexpectedStatus(500, nil)) {
		t.Fatalf("expected http status error to be a transport error")
	}
	if IsTransport(Parse(errors.New("x"))) {
		t.Fatalf("parse error must not be a transport error")
	}
}

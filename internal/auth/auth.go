// Package auth stores the Youdao app secret in the OS keychain.
package auth

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/zalando/go-keyring"
	"golang.org/x/term"
)

const (
	serviceName   = "ydt"
	secretAccount = "app-secret"
	// SecretEnvVar is consulted only when the caller allows environment credentials.
	SecretEnvVar = "YDT_APP_SECRET"
)

// Secret sources reported by GetSecret.
const (
	SourceKeychain = "Keychain"
	SourceEnv      = "Environment Variable"
)

// GetSecret returns the app secret and where it came from. The keychain
// wins; the environment is read only when allowEnv is true.
func GetSecret(allowEnv bool) (string, string) {
	secret, err := keyring.Get(serviceName, secretAccount)
	if err == nil && strings.TrimSpace(secret) != "" {
		return strings.TrimSpace(secret), SourceKeychain
	}
	if allowEnv {
		if secret, ok := GetEnvSecret(); ok {
			return secret, SourceEnv
		}
	}
	return "", ""
}

// GetEnvSecret reads the app secret from the environment only.
func GetEnvSecret() (string, bool) {
	secret := strings.TrimSpace(os.Getenv(SecretEnvVar))
	if secret == "" {
		return "", false
	}
	return secret, true
}

// SaveSecret stores the app secret in the OS keychain.
func SaveSecret(secret string) error {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return fmt.Errorf("app secret is empty")
	}
	return keyring.Set(serviceName, secretAccount, secret)
}

// DeleteSecret removes the app secret from the OS keychain.
func DeleteSecret() error {
	return keyring.Delete(serviceName, secretAccount)
}

// GetStatus reports whether the keychain holds an app secret.
func GetStatus() bool {
	secret, err := keyring.Get(serviceName, secretAccount)
	return err == nil && secret != ""
}

// PromptForSecret reads the app secret from the terminal without echo.
func PromptForSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(raw)), nil
}

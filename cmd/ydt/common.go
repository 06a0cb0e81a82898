package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/oukeidos/ydt/internal/apperrors"
	"github.com/oukeidos/ydt/internal/auth"
	"github.com/oukeidos/ydt/internal/config"
	"github.com/oukeidos/ydt/internal/logger"
	"github.com/oukeidos/ydt/internal/prompt"
	"github.com/oukeidos/ydt/internal/youdao"
	"golang.org/x/term"
)

var (
	isTerminal      = term.IsTerminal
	getSecret       = auth.GetSecret
	getEnvSecret    = auth.GetEnvSecret
	getStatus       = auth.GetStatus
	saveSecret      = auth.SaveSecret
	deleteSecret    = auth.DeleteSecret
	promptForSecret = auth.PromptForSecret
	loadConfig      = config.Load
	newConfirmer    = prompt.DefaultConfirmer
)

// resolveSecret finds the app secret: keychain, then the environment when
// allowed, then a hidden prompt on a terminal.
func resolveSecret(allowEnv, envOnly bool) (string, string, error) {
	if envOnly {
		if secret, ok := getEnvSecret(); ok {
			return secret, auth.SourceEnv, nil
		}
		return "", "", fmt.Errorf("env-only set but %s is not set", auth.SecretEnvVar)
	}

	if secret, source := getSecret(false); secret != "" {
		return secret, source, nil
	}

	if allowEnv {
		if secret, ok := getEnvSecret(); ok {
			return secret, auth.SourceEnv, nil
		}
	}

	if isTerminal(int(os.Stdin.Fd())) {
		secret, err := promptForSecret("Youdao app secret (press Enter to skip): ")
		if err != nil {
			return "", "", fmt.Errorf("error reading app secret: %w", err)
		}
		if strings.TrimSpace(secret) != "" {
			return strings.TrimSpace(secret), "Terminal Prompt", nil
		}
	}

	if !isTerminal(int(os.Stdin.Fd())) {
		return "", "", fmt.Errorf("no app secret available (non-interactive shell); run `ydt env setup` or use --allow-env")
	}
	if allowEnv {
		return "", "", fmt.Errorf("app secret is required; not found in keychain or environment")
	}
	return "", "", fmt.Errorf("app secret is required; not found in keychain (environment disabled by default; use --allow-env)")
}

// resolveCredentials pairs the configured app key with the resolved secret.
// Failures are configuration errors and never quote either value.
func resolveCredentials(appKey string, allowEnv, envOnly bool) (youdao.Credentials, error) {
	appKey = strings.TrimSpace(appKey)
	if appKey == "" {
		return youdao.Credentials{}, apperrors.Config(
			"Youdao app key is not configured; run `ydt config set app_key <key>` or set YDT_APP_KEY.", nil)
	}
	secret, source, err := resolveSecret(allowEnv, envOnly)
	if err != nil {
		return youdao.Credentials{}, apperrors.Config(err.Error(), err)
	}
	creds := youdao.Credentials{AppKey: appKey, AppSecret: secret}
	logger.Debug("Using credentials", "credentials", creds, "source", source)
	return creds, nil
}

func signalContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logger.Warn("Cancellation requested")
			cancel()
		case <-ctx.Done():
		}
	}()
	stop := func() {
		signal.Stop(sigCh)
		cancel()
	}
	return ctx, stop
}

package youdao

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/oukeidos/ydt/internal/apperrors"
)

// Credentials identify the application to the Youdao open API.
// Formatting and logging never reveal AppSecret.
type Credentials struct {
	AppKey    string
	AppSecret string
}

// Validate checks that both halves of the credential pair are present.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.AppKey) == "" {
		return apperrors.Config("App key is not configured. Set app_key in the config file or YDT_APP_KEY.", nil)
	}
	if strings.TrimSpace(c.AppSecret) == "" {
		return apperrors.Config("App secret is not configured. Run `ydt env setup` or use --allow-env with YDT_APP_SECRET.", nil)
	}
	return nil
}

func (c Credentials) String() string {
	secret := "<unset>"
	if c.AppSecret != "" {
		secret = "[REDACTED]"
	}
	return fmt.Sprintf("Credentials{AppKey:%s AppSecret:%s}", maskKey(c.AppKey), secret)
}

func (c Credentials) GoString() string {
	return c.String()
}

func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("app_id", maskKey(c.AppKey)),
		slog.Bool("has_secret", c.AppSecret != ""),
	)
}

// maskKey keeps the first four characters of an app key.
func maskKey(key string) string {
	r := []rune(key)
	if len(r) == 0 {
		return "<unset>"
	}
	if len(r) <= 4 {
		return strings.Repeat("*", len(r))
	}
	return string(r[:4]) + strings.Repeat("*", len(r)-4)
}

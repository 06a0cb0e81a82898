package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/oukeidos/ydt/internal/apperrors"
	"github.com/oukeidos/ydt/internal/cleanup"
	"github.com/oukeidos/ydt/internal/config"
	"github.com/oukeidos/ydt/internal/dict"
	"github.com/oukeidos/ydt/internal/files"
	"github.com/oukeidos/ydt/internal/httpclient"
	"github.com/oukeidos/ydt/internal/language"
	"github.com/oukeidos/ydt/internal/logger"
	"github.com/oukeidos/ydt/internal/render"
	"github.com/oukeidos/ydt/internal/webdict"
	"github.com/oukeidos/ydt/internal/youdao"
	"github.com/spf13/cobra"
)

type lookupOptions struct {
	from        string
	to          string
	web         bool
	jsonOut     bool
	color       string
	timeout     time.Duration
	allowEnv    bool
	envOnly     bool
	debug       bool
	logFilePath string
}

type lookupFunc func(ctx context.Context, word string) (*dict.Result, error)

func newLookupCmd() *cobra.Command {
	opts := lookupOptions{}
	cmd := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a word (same as ydt <word>)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return apperrors.InvalidInput("Please provide a word to look up.")
			}
			return runLookup(cmd, args, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addLookupFlags(cmd, &opts)
	return cmd
}

func addLookupFlags(cmd *cobra.Command, opts *lookupOptions) {
	cmd.Flags().StringVarP(&opts.from, "from", "f", "", "Source language code (default: detected, en or zh-CHS)")
	cmd.Flags().StringVarP(&opts.to, "to", "t", "", "Target language code (default: detected, zh-CHS or en)")
	cmd.Flags().BoolVar(&opts.web, "web", false, "Use the public web dictionary page instead of the API (no credentials)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Print the result as JSON")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "Color output: auto, always or never")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", config.DefaultTimeout, "Request timeout")
	cmd.Flags().BoolVar(&opts.allowEnv, "allow-env", false, "Allow reading the app secret from YDT_APP_SECRET")
	cmd.Flags().BoolVar(&opts.envOnly, "env-only", false, "Use only YDT_APP_SECRET for the app secret")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&opts.logFilePath, "log-file", "", "Path to save machine-readable JSONL logs")
}

func runLookup(cmd *cobra.Command, args []string, opts *lookupOptions) error {
	word := strings.TrimSpace(strings.Join(args, " "))
	if word == "" {
		return apperrors.InvalidInput("Word is empty.")
	}

	if err := initLogging(opts); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return apperrors.Config(fmt.Sprintf("Invalid configuration: %v", err), err)
	}
	settings, err := mergeSettings(cmd, opts, cfg)
	if err != nil {
		return err
	}

	pair, err := language.PairFor(word, settings.from, settings.to)
	if err != nil {
		return apperrors.InvalidInput(err.Error())
	}
	colorMode, err := render.ParseColorMode(settings.color)
	if err != nil {
		return apperrors.InvalidInput(err.Error())
	}

	lookup, err := newLookup(settings, pair, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	logger.Debug("Looking up", "word", word, "from", pair.From, "to", pair.To, "mode", settings.mode)
	res, err := lookup(ctx, word)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), res, settings.jsonOut, colorMode)
}

// lookupSettings is the effective configuration after flags override the
// config file and environment.
type lookupSettings struct {
	from     string
	to       string
	mode     string
	color    string
	jsonOut  bool
	timeout  time.Duration
	allowEnv bool
	envOnly  bool
}

func mergeSettings(cmd *cobra.Command, opts *lookupOptions, cfg *config.Config) (lookupSettings, error) {
	s := lookupSettings{
		from:     cfg.From,
		to:       cfg.To,
		mode:     cfg.Mode,
		color:    cfg.Color,
		jsonOut:  opts.jsonOut,
		timeout:  cfg.Timeout.Duration(),
		allowEnv: cfg.AllowEnv || opts.allowEnv || opts.envOnly,
		envOnly:  opts.envOnly,
	}
	flags := cmd.Flags()
	if flags.Changed("from") {
		s.from = opts.from
	}
	if flags.Changed("to") {
		s.to = opts.to
	}
	if opts.web {
		s.mode = config.ModeWeb
	}
	if flags.Changed("color") {
		s.color = opts.color
	}
	if flags.Changed("timeout") {
		if opts.timeout <= 0 {
			return s, apperrors.InvalidInput("Timeout must be positive.")
		}
		s.timeout = opts.timeout
	}
	return s, nil
}

func newLookup(s lookupSettings, pair language.Pair, cfg *config.Config) (lookupFunc, error) {
	if s.mode == config.ModeWeb {
		return webdict.NewClient(cfg.WebURL, httpclient.NewClient(s.timeout)).Lookup, nil
	}
	creds, err := resolveCredentials(cfg.AppKey, s.allowEnv, s.envOnly)
	if err != nil {
		return nil, err
	}
	builder := youdao.Builder{Credentials: creds, From: pair.From, To: pair.To}
	client := youdao.NewClient(builder, youdao.WithEndpoint(cfg.Endpoint), youdao.WithTimeout(s.timeout))
	return client.Lookup, nil
}

func writeResult(w io.Writer, res *dict.Result, jsonOut bool, mode render.ColorMode) error {
	if jsonOut {
		return render.JSON(w, res)
	}
	return render.New(w, mode).Render(res)
}

func initLogging(opts *lookupOptions) error {
	logLevel := logger.LevelWarn
	if opts.debug {
		logLevel = logger.LevelDebug
	}
	var logFileW io.Writer
	if opts.logFilePath != "" {
		f, err := files.OpenAppend(opts.logFilePath)
		if err != nil {
			return apperrors.InvalidInput(fmt.Sprintf("Failed to open log file: %v", err))
		}
		cleanup.Register(f.Close)
		logFileW = f
	}
	logger.Init(logLevel, logFileW)
	return nil
}

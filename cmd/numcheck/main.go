// Command numcheck validates decimal numbers passed as arguments against the
// limits configured through NUMBER_PRECISION, NUMBER_SCALE and
// NUMBER_ONLY_POSITIVE.
//
//	NUMBER_PRECISION=8 NUMBER_SCALE=2 numcheck 10 +1,25 1..2
//
// NUMCHECK_LANG selects the language of the output ("en" or "ru").
// Exit status is 0 when every value is valid, 1 when any value is invalid and
// 2 when the configuration cannot be loaded.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrymomot/numvalidator/pkg/config"
	"github.com/dmitrymomot/numvalidator/pkg/i18n"
	"github.com/dmitrymomot/numvalidator/pkg/logger"
	"github.com/dmitrymomot/numvalidator/pkg/numbervalidator"
	"github.com/dmitrymomot/numvalidator/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitConfig  = 2
)

// appConfig holds settings of the binary itself.
type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
	EnvFile  string `env:"NUMCHECK_ENV_FILE"`
	Lang     string `env:"NUMCHECK_LANG" envDefault:"en"`
}

type runIDKey struct{}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var app appConfig
	if err := config.Load(&app); err != nil {
		fmt.Fprintf(stderr, "numcheck: %v\n", err)
		return exitConfig
	}

	log := logger.New(
		logger.WithEnvironment(app.Env, "numcheck"),
		logger.WithLevelName(app.LogLevel),
		logger.WithOutput(stderr),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())

	if app.EnvFile != "" {
		if err := config.LoadEnv(app.EnvFile); err != nil {
			log.ErrorContext(ctx, "failed to load env file", logger.Error(err))
			return exitConfig
		}
	}

	var cfg numbervalidator.Config
	if err := config.Load(&cfg); err != nil {
		log.ErrorContext(ctx, "failed to load number rules", logger.Error(err))
		return exitConfig
	}

	v, err := numbervalidator.NewFromConfig(cfg)
	if err != nil {
		log.ErrorContext(ctx, "invalid number rules",
			logger.Rules(cfg.Precision, cfg.Scale, cfg.OnlyPositive),
			logger.Error(err),
		)
		return exitConfig
	}

	tr, err := i18n.NewDefaultTranslator(ctx, i18n.WithLogger(log), i18n.WithMissingTranslationsLogging(true))
	if err != nil {
		log.ErrorContext(ctx, "failed to load translations", logger.Error(err))
		return exitConfig
	}
	ctx = i18n.SetLocale(ctx, app.Lang)

	invalid := check(ctx, log, tr, v, args, stdout)

	log.InfoContext(ctx, "check finished",
		logger.Rules(cfg.Precision, cfg.Scale, cfg.OnlyPositive),
		slog.Int("total", len(args)),
		slog.Int("invalid", invalid),
	)

	if invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

// check writes one line per value and returns the number of rejected values.
func check(ctx context.Context, log *slog.Logger, tr *i18n.Translator, v *numbervalidator.Validator, values []string, out io.Writer) int {
	lang := i18n.GetLocale(ctx)
	valid := tr.T(lang, "numcheck.valid")
	rejected := tr.T(lang, "numcheck.invalid")

	invalid := 0
	for _, value := range values {
		rule := validator.ValidDecimal("value", value, v)
		if rule.Check() {
			fmt.Fprintf(out, "%s\t%s\n", value, valid)
			continue
		}

		invalid++
		fmt.Fprintf(out, "%s\t%s: %s\n", value, rejected, rule.Error.Translate(tr, lang))
		log.DebugContext(ctx, "value rejected",
			logger.Input(value),
			slog.String("reason", rule.Error.TranslationKey),
		)
	}
	return invalid
}

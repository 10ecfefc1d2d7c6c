// Command apdutrace walks the payment system directory of a smart card and
// prints every exchanged APDU with its decoded header and status fields.
//
//	apdutrace -config apdutrace.toml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ebfe/scard"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "apdutrace: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, cfg.LogLevel)
	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("apdutrace failed")
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "apdutrace").Logger()
}

func run(cfg Config, logger zerolog.Logger) error {
	ctx, err := scard.EstablishContext()
	if err != nil {
		return fmt.Errorf("establish PC/SC context: %w", err)
	}
	defer func() {
		if err := ctx.Release(); err != nil {
			logger.Warn().Err(err).Msg("release PC/SC context")
		}
	}()

	reader, err := pickReader(ctx, cfg.Reader)
	if err != nil {
		return err
	}
	logger.Info().Str("reader", reader).Msg("using reader")

	card, err := ctx.Connect(reader, scard.ShareShared, cfg.Protocol)
	if err != nil {
		return fmt.Errorf("connect to %q: %w", reader, err)
	}
	defer func() {
		if err := card.Disconnect(scard.LeaveCard); err != nil {
			logger.Warn().Err(err).Msg("disconnect card")
		}
	}()

	e, err := newExplorer(card, cfg, logger, os.Stdout)
	if err != nil {
		return err
	}
	return e.run()
}

func pickReader(ctx *scard.Context, want string) (string, error) {
	readers, err := ctx.ListReaders()
	if err != nil {
		return "", fmt.Errorf("list readers: %w", err)
	}
	if len(readers) == 0 {
		return "", fmt.Errorf("no smart card reader found")
	}
	if want == "" {
		return readers[0], nil
	}
	for _, r := range readers {
		if r == want {
			return r, nil
		}
	}
	return "", fmt.Errorf("reader %q not found among %q", want, readers)
}

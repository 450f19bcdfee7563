package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Totarae/googl/client"
	"github.com/Totarae/googl/internal/config"
)

// ErrUsage возвращается при неизвестной команде или неверном числе аргументов.
var ErrUsage = errors.New("usage: shortener [-k key] [-b base] [-t timeout] [-l level] [-c file] shorten|expand|analytics <url>")

type command func(ctx context.Context, c *client.Client, url string) (string, error)

var commands = map[string]command{
	"shorten": func(ctx context.Context, c *client.Client, url string) (string, error) {
		return c.Shorten(ctx, url)
	},
	"expand": func(ctx context.Context, c *client.Client, url string) (string, error) {
		return c.Expand(ctx, url)
	},
	"analytics": func(ctx context.Context, c *client.Client, url string) (string, error) {
		return c.GetAnalytics(ctx, url)
	},
}

// run выполняет одну команду и печатает результат в w.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, args []string, w io.Writer) error {
	if len(args) != 2 {
		return ErrUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}

	c, err := client.New(cfg.APIKey,
		client.WithBaseURL(cfg.BaseURL),
		client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		client.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	out, err := cmd(ctx, c, args[1])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	// XML-отчёт уже завершается переводом строки
	if args[0] == "analytics" {
		_, err = io.WriteString(w, out)
	} else {
		_, err = fmt.Fprintln(w, out)
	}
	return err
}

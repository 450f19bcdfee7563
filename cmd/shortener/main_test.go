package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Totarae/googl/client"
	"github.com/Totarae/googl/internal/config"
	"github.com/Totarae/googl/internal/fakeapi"
)

func testConfig(t *testing.T, key string) (*config.Config, *fakeapi.Server) {
	t.Helper()
	srv := fakeapi.New("secret", zaptest.NewLogger(t))
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	return &config.Config{
		APIKey:   key,
		BaseURL:  ts.URL + fakeapi.Prefix,
		Timeout:  5 * time.Second,
		LogLevel: "debug",
	}, srv
}

func TestRun_ShortenExpand(t *testing.T) {
	cfg, _ := testConfig(t, "secret")
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, run(ctx, cfg, zaptest.NewLogger(t), []string{"shorten", "https://example.com/a"}, &out))
	short := strings.TrimSpace(out.String())
	assert.Equal(t, fakeapi.GenerateShortURL("https://example.com/a"), short)

	out.Reset()
	require.NoError(t, run(ctx, cfg, zaptest.NewLogger(t), []string{"expand", short}, &out))
	assert.Equal(t, "https://example.com/a\n", out.String())
}

func TestRun_Analytics(t *testing.T) {
	cfg, srv := testConfig(t, "secret")
	srv.Add("http://goo.gl/abc", "https://example.com")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, zaptest.NewLogger(t), []string{"analytics", "http://goo.gl/abc"}, &out))
	assert.True(t, strings.HasPrefix(out.String(), `<?xml version="1.0" encoding="UTF-8"?>`+"\n<analytics>\n\t<allTime>\n"))
	assert.True(t, strings.HasSuffix(out.String(), "</analytics>\n"))
}

func TestRun_Usage(t *testing.T) {
	cfg, _ := testConfig(t, "secret")

	tests := []struct {
		name string
		args []string
	}{
		{name: "no args"},
		{name: "missing url", args: []string{"shorten"}},
		{name: "extra args", args: []string{"shorten", "a", "b"}},
		{name: "unknown command", args: []string{"delete", "http://goo.gl/abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), cfg, zaptest.NewLogger(t), tt.args, &out)
			assert.ErrorIs(t, err, ErrUsage)
			assert.Zero(t, out.Len())
		})
	}
}

func TestRun_Errors(t *testing.T) {
	cfg, _ := testConfig(t, "")
	err := run(context.Background(), cfg, zaptest.NewLogger(t), []string{"shorten", "https://example.com"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, client.ErrMissingCredential)

	cfg, _ = testConfig(t, "wrong")
	err = run(context.Background(), cfg, zaptest.NewLogger(t), []string{"expand", "http://goo.gl/abc"}, &bytes.Buffer{})
	var terr *client.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, 400, terr.StatusCode)
	assert.True(t, strings.HasPrefix(err.Error(), "expand: "))
}

func TestRun_Cancelled(t *testing.T) {
	cfg, _ := testConfig(t, "secret")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, cfg, zaptest.NewLogger(t), []string{"shorten", "https://example.com"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

package main

import (
	"log/slog"
	"os"

	"github.com/danielhkuo/monthlog/client"
)

// newClientFunc builds the API client from the global flags.
// Tests override it to point at a fake server.
var newClientFunc = defaultNewClient

func newClient() *client.Client {
	return newClientFunc()
}

// cliLogger writes to stderr; --verbose lowers the level to debug
func cliLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func defaultNewClient() *client.Client {
	opts := []client.Option{client.WithLogger(cliLogger())}
	if token != "" {
		opts = append(opts, client.WithToken(token))
	}
	return client.New(apiURL, opts...)
}

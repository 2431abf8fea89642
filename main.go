package main

import (
	"log/slog"

	"github.com/the11eximoverseas/exim_backend/cmd"
	"github.com/the11eximoverseas/exim_backend/pkg/logs"
)

func main() {
	// Sane structured logger until the config-driven one takes over.
	slog.SetDefault(logs.Default())

	cmd.Execute()
}

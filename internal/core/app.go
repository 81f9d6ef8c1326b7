package core

import (
	"fmt"

	"comiclinks/internal/config"
)

// App holds the core components of the application that are shared
// between the commands.
type App struct {
	Config *config.Config
}

// New sets up and returns a new App instance. It handles loading the
// configuration; there is deliberately no persistent state beyond the
// filesystem trees the commands operate on.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return &App{Config: cfg}, nil
}

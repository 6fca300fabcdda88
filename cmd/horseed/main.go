package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/apiclient"
	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/dashboard"
	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/tui"
)

func main() {
	var (
		apiBase = flag.String("api", "", "API base URL (default $HORSEED_API or http://localhost:8080)")
		local   = flag.Bool("local", false, "run against the built-in demo roster, no server needed")
		logPath = flag.String("log", "", "write debug log to this file")
	)
	flag.Parse()

	_ = godotenv.Load()

	// The terminal belongs to the TUI; logs go to a file or nowhere.
	logOut := io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	log := zerolog.New(logOut).With().Timestamp().Logger()

	var backend dashboard.Backend
	if *local {
		backend = dashboard.NewLocal()
	} else {
		base := *apiBase
		if base == "" {
			base = os.Getenv("HORSEED_API")
		}
		if base == "" {
			base = "http://localhost:8080"
		}
		client, err := apiclient.NewClient(base, 5*time.Second)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid API base %q: %v\n", base, err)
			os.Exit(1)
		}
		backend = client
	}

	app := dashboard.NewApp(backend, log)

	p := tea.NewProgram(tui.NewModel(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

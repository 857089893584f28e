// Command postmanager lists, creates, edits and deletes posts of the
// JSONPlaceholder demo API from the terminal.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"postmanager/adapters/jsonplaceholder"
	"postmanager/pkg/logger"
	"postmanager/ui/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	api := flag.String("api", jsonplaceholder.DefaultBaseURL, "Base URL of the posts API")
	logPath := flag.String("log", "postmanager.log", "Path of the diagnostic log file")
	debug := flag.Bool("debug", false, "Log every request")
	flag.Parse()

	// The terminal belongs to the UI, so diagnostics go to a file.
	f, err := tea.LogToFile(*logPath, "postmanager")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger.SetOutput(f, level)

	source := jsonplaceholder.NewClient(*api, nil)
	logger.Info("starting", "api", source.BaseURL)

	if _, err := tea.NewProgram(tui.New(source), tea.WithAltScreen()).Run(); err != nil {
		logger.Error("program stopped", "error", err)
		return err
	}
	return nil
}

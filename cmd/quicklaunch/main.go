package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"quicklaunch/internal/apps"
	"quicklaunch/internal/config"
	"quicklaunch/internal/engine"
	"quicklaunch/internal/eventbus"
	"quicklaunch/internal/plugins"
	"quicklaunch/internal/recency"
	"quicklaunch/internal/ui"
	"quicklaunch/internal/windows"
)

func main() {
	app := &cli.App{
		Name:  "quicklaunch",
		Usage: "Fuzzy launcher for windows, applications, and plugin providers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the settings file",
				Value:   config.SettingsPath(),
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Path to the log file",
			},
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Start with an initial query",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	store := config.NewStore()

	// Set up logging
	logPath := c.String("log-file")
	if logPath == "" {
		logPath = filepath.Join(store.Dir(), "quicklaunch.log")
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err == nil {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	// Load settings; a broken file degrades to defaults
	settings, err := config.LoadSettings(c.String("config"))
	if err != nil {
		log.Printf("Error loading settings: %v", err)
	}

	// Create context for background services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create event bus
	bus := eventbus.New()

	// Initialize services. The window manager and desktop-entry loader
	// are host integrations; without a backend the launcher still serves
	// applications from plugins and recency data.
	var manager windows.Manager = windows.NopManager{}
	var loader apps.Loader = apps.LoaderFunc(func(string) []apps.Result { return nil })

	roots := apps.SearchRoots()
	index := apps.NewIndex(bus, loader, roots, settings.IconSize)
	index.Rebuild()

	watcher := apps.NewWatcher(bus, roots)
	if err := watcher.Start(ctx); err != nil {
		log.Printf("Error starting root watcher: %v", err)
	}

	providers := plugins.NewService(bus, settings.Plugins)
	recents := recency.NewStore(store)
	eng := engine.New(bus, settings, recents, manager, index, providers)

	// Create UI model
	uiModel := ui.NewModel(bus, eng, c.String("query"))

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	bus.Subscribe(eventbus.EventIndexRebuilt, func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	})

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	// Cleanup: the engine stops providers on dismissal, but a crashed UI
	// must not leak subprocesses
	providers.StopAll()
	close(eventChan)
	cancel()

	return nil
}

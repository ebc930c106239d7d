package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/tableview/internal/config"
	"github.com/young1lin/tableview/internal/model"
	"github.com/young1lin/tableview/internal/monitor"
	"github.com/young1lin/tableview/internal/parser"
	"github.com/young1lin/tableview/internal/update"
	"github.com/young1lin/tableview/tui"
)

// ProgramSender is an interface for sending messages to a Bubbletea program
type ProgramSender interface {
	Send(msg tea.Msg)
}

// UnitStore is the unit database used by the application
type UnitStore interface {
	tui.UnitSource
	Count() (int, error)
	Seed(units []model.AdminUnit) error
	Close() error
}

// AppDependencies contains the dependencies for the main application
type AppDependencies struct {
	ConfigPath string
	ProjectDir string
	ImportPath string

	ConfigLoader   func(explicitPath, projectDir string) (*config.Config, error)
	DBOpener       func(string) (UnitStore, error)
	WatcherCreator func(string) (monitor.WatcherInterface, error)
	ProgramRunner  func(*tea.Program) error
	UpdateChecker  func() (*update.ReleaseInfo, error)
}

func run(deps *AppDependencies) error {
	loadConfig := deps.ConfigLoader
	if loadConfig == nil {
		loadConfig = config.Load
	}
	cfg, err := loadConfig(deps.ConfigPath, deps.ProjectDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbPath := cfg.DBPath()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := deps.DBOpener(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := seedUnits(db, deps.ImportPath); err != nil {
		return err
	}

	m := tui.NewModel(tui.Options{
		Source:   db,
		Table:    cfg.Table,
		DataFile: cfg.Data.File,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if cfg.Data.File != "" {
		watcher, err := deps.WatcherCreator(cfg.Data.File)
		if err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
		defer watcher.Close()

		go runWatchLoop(p, watcher)
	}

	if cfg.Update.Check && deps.UpdateChecker != nil {
		go checkForUpdate(p, deps.UpdateChecker)
	}

	return deps.ProgramRunner(p)
}

// seedUnits imports units from a JSONL file when one is given, otherwise
// fills an empty database with the demo units
func seedUnits(db UnitStore, importPath string) error {
	if importPath != "" {
		res, err := parser.ReadFile(importPath)
		if err != nil {
			return fmt.Errorf("failed to read import file: %w", err)
		}
		units := parser.Units(res.Records)
		if err := db.Seed(units); err != nil {
			return fmt.Errorf("failed to import units: %w", err)
		}
		if res.Skipped > 0 {
			fmt.Fprintf(os.Stderr, "Warning: skipped %d malformed lines in %s: %v\n", res.Skipped, importPath, res.FirstErr)
		}
		log.Printf("imported %d units from %s", len(units), importPath)
		return nil
	}

	n, err := db.Count()
	if err != nil {
		return fmt.Errorf("failed to count units: %w", err)
	}
	if n > 0 {
		return nil
	}
	if err := db.Seed(append(model.DemoDistricts(), model.DemoWards()...)); err != nil {
		return fmt.Errorf("failed to seed demo units: %w", err)
	}
	return nil
}

// runWatchLoop forwards data file reloads and watcher errors to the TUI
// until the watcher closes
func runWatchLoop(sender ProgramSender, watcher monitor.WatcherInterface) {
	for {
		select {
		case res, ok := <-watcher.Changes():
			if !ok {
				return
			}
			sender.Send(tui.DataFileMsg{Result: res})

		case err, ok := <-watcher.Errors():
			if !ok {
				return
			}
			sender.Send(tui.WatcherFailedMsg{Err: err})
		}
	}
}

// checkForUpdate reports a newer release to the TUI. Failures are only
// logged.
func checkForUpdate(sender ProgramSender, check func() (*update.ReleaseInfo, error)) {
	release, err := check()
	if err != nil {
		log.Printf("update check: %v", err)
		return
	}
	if release == nil {
		return
	}
	sender.Send(tui.UpdateAvailableMsg{
		Current: update.Version,
		Latest:  release.TagName,
		URL:     release.HTMLURL,
	})
}

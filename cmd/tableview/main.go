package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/tableview/internal/config"
	"github.com/young1lin/tableview/internal/monitor"
	"github.com/young1lin/tableview/internal/store"
	"github.com/young1lin/tableview/internal/update"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

func main() {
	configPath := flag.String("config", "", "path to a config file")
	importPath := flag.String("import", "", "import units from a JSONL file before starting")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("tableview %s (%s, built %s)\n", update.Version, update.Commit, update.BuildDate)
		return
	}

	// The TUI owns the terminal, so the log only goes to a file when asked.
	if path := os.Getenv("TABLEVIEW_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "tableview")
		if err != nil {
			logAndExit(err)
			return
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	projectDir, _ := os.Getwd()

	if err := run(&AppDependencies{
		ConfigPath:   *configPath,
		ProjectDir:   projectDir,
		ImportPath:   *importPath,
		ConfigLoader: config.Load,
		DBOpener: func(path string) (UnitStore, error) {
			return store.Open(path)
		},
		WatcherCreator: func(path string) (monitor.WatcherInterface, error) {
			return monitor.NewWatcher(path)
		},
		ProgramRunner: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
		UpdateChecker: update.NewChecker(update.Version, config.UserCacheDir()).Check,
	}); err != nil {
		logAndExit(err)
	}
}

func logAndExit(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}

package tui

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/young1lin/tableview/internal/document"
	"github.com/young1lin/tableview/internal/model"
	"github.com/young1lin/tableview/internal/nav"
)

var (
	errNoSource   = errors.New("no unit database")
	errNoDataFile = errors.New("no data file configured")
)

func (s *screen) registerRoutes() {
	s.engine.Register("home/index", s.page(s.showHome))
	s.engine.Register("dvhc/index", s.page(s.showRoots))
	s.engine.Register("dvhc/children", s.page(s.showChildren))
	s.engine.Register("dvhc/level", s.page(s.showLevel))
	s.engine.Register("dvhc/file", s.page(s.showFile))
	s.engine.Register("app/back", s.back)
	s.engine.Register("app/quit", s.quit)
}

// page wraps a page handler so successful visits are recorded for back
// and the table takes focus
func (s *screen) page(h nav.Handler) nav.Handler {
	return func(req nav.Request) error {
		if err := h(req); err != nil {
			return err
		}
		s.err = nil
		if !s.promptOpen {
			s.home.Table().Focus()
		}
		if n := len(s.history); n == 0 || s.history[n-1] != req.URL {
			s.history = append(s.history, req.URL)
		}
		return nil
	}
}

// currentURL returns the page on screen
func (s *screen) currentURL() string {
	if n := len(s.history); n > 0 {
		return s.history[n-1]
	}
	return ""
}

// reload runs the current page again and keeps the scroll position. A
// shorter page clamps it to the new maximum.
func (s *screen) reload() {
	u := s.currentURL()
	if u == "" {
		return
	}
	t := s.home.Table()
	first := t.FirstVisible()
	s.engine.Execute(u)
	t.Scroll().SetValue(first)
}

func (s *screen) navigationFailed(rawURL string, err error) {
	s.err = fmt.Errorf("%s: %w", rawURL, err)
}

func (s *screen) showHome(nav.Request) error {
	units := model.DemoDistricts()
	title := "Districts (demo)"
	if s.source != nil {
		stored, err := s.source.Units(0)
		if err != nil {
			return fmt.Errorf("failed to load units: %w", err)
		}
		if len(stored) > 0 {
			units, title = stored, "Top level"
		}
	}
	s.home.Render(Page{Title: title, Items: units})
	return nil
}

func (s *screen) showRoots(nav.Request) error {
	if s.source == nil {
		return errNoSource
	}
	units, err := s.source.Units(0)
	if err != nil {
		return fmt.Errorf("failed to load units: %w", err)
	}
	s.home.Render(Page{Title: "Top level", Items: units})
	return nil
}

func (s *screen) showChildren(req nav.Request) error {
	if s.source == nil {
		return errNoSource
	}
	raw := req.Query.Get("parent")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid parent %q: %w", raw, err)
	}
	units, err := s.source.Units(id)
	if err != nil {
		return fmt.Errorf("failed to load units: %w", err)
	}

	title := "Under #" + raw
	parent, err := s.source.GetUnit(id)
	if err != nil {
		return fmt.Errorf("failed to load unit %d: %w", id, err)
	}
	if parent != nil {
		title = "Under " + parent.Name
	}
	s.home.Render(Page{Title: title, Items: units})
	return nil
}

func (s *screen) showLevel(req nav.Request) error {
	if s.source == nil {
		return errNoSource
	}
	level := req.Query.Get("cap")
	if level == "" {
		return errors.New("missing level")
	}
	units, err := s.source.UnitsByLevel(level)
	if err != nil {
		return fmt.Errorf("failed to load units: %w", err)
	}
	s.home.Render(Page{Title: "Level " + level, Items: units})
	return nil
}

func (s *screen) showFile(nav.Request) error {
	if s.dataFile == "" {
		return errNoDataFile
	}
	s.home.Render(Page{Title: filepath.Base(s.dataFile), Items: s.fileRecords})
	return nil
}

// back returns to the previous page
func (s *screen) back(nav.Request) error {
	n := len(s.history)
	if n < 2 {
		return nil
	}
	prev := s.history[n-2]
	s.history = s.history[:n-1]
	return s.engine.Dispatch(prev)
}

func (s *screen) quit(nav.Request) error {
	s.quitting = true
	return nil
}

// open drills into the children of an opened row
func (s *screen) open(item any) {
	s.lastOpened = item
	id := document.FromObject(item).GetString("id")
	if id == "" {
		return
	}
	s.engine.Execute("dvhc/children?parent=" + url.QueryEscape(id))
}

// yank copies the last opened row, or the first visible one, to the
// clipboard as tab separated cells
func (s *screen) yank() {
	t := s.home.Table()
	item := s.lastOpened
	if item == nil {
		var ok bool
		if item, ok = t.ItemAt(t.FirstVisible()); !ok {
			s.status = "Nothing to copy"
			return
		}
	}

	doc := document.FromObject(item)
	cols := t.TableColumns()
	var cells []string
	for i := 0; i < cols.Len(); i++ {
		if name := cols.At(i).Name; name != "" {
			cells = append(cells, doc.GetString(name))
		}
	}
	text := strings.Join(cells, "\t")
	if err := s.clipboard(text); err != nil {
		s.err = fmt.Errorf("failed to copy: %w", err)
		return
	}
	s.status = "Copied " + strings.ReplaceAll(text, "\t", " | ")
}

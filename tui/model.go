package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/tableview/internal/config"
	"github.com/young1lin/tableview/internal/model"
	"github.com/young1lin/tableview/internal/nav"
	"github.com/young1lin/tableview/internal/parser"
	"github.com/young1lin/tableview/internal/ui"
)

// Color palette
var (
	primaryColor   = lipgloss.Color("86")  // Green
	secondaryColor = lipgloss.Color("239") // Grey
	errorColor     = lipgloss.Color("196") // Red
	warnColor      = lipgloss.Color("208") // Orange
)

// UnitSource supplies administrative units to the routes
type UnitSource interface {
	Units(parentID int64) ([]model.AdminUnit, error)
	UnitsByLevel(level string) ([]model.AdminUnit, error)
	GetUnit(id int64) (*model.AdminUnit, error)
}

// Options configures a Model
type Options struct {
	// Source is the unit database; nil shows the demo districts only
	Source UnitSource

	Table config.TableConfig

	// DataFile enables the data file page
	DataFile string

	// Clipboard writes copied text; defaults to the system clipboard
	Clipboard func(string) error

	// Now is the clock used for double-click detection
	Now func() time.Time
}

// Styles contains the Lipgloss styles for the status line
type Styles struct {
	Status lipgloss.Style
	Error  lipgloss.Style
	Notice lipgloss.Style
	Help   lipgloss.Style
	Prompt lipgloss.Style
	Muted  lipgloss.Style
}

// DefaultStyles returns the default UI styles
func DefaultStyles() Styles {
	var styles Styles

	styles.Status = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255"))

	styles.Error = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	styles.Notice = lipgloss.NewStyle().
		Foreground(warnColor)

	styles.Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	styles.Prompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor)

	styles.Muted = lipgloss.NewStyle().
		Foreground(secondaryColor)

	return styles
}

// screen is the element tree and navigation state shared by every copy of
// the Model
type screen struct {
	ctx    *ui.Context
	root   *ui.Grid
	home   *HomeView
	engine *nav.Engine
	clicks *clickCounter

	prompt     *ui.TextBox
	promptOpen bool

	source      UnitSource
	dataFile    string
	fileRecords []parser.Record
	history     []string
	lastOpened  any
	clipboard   func(string) error
	wheelDelta  float64

	status   string
	notice   string
	err      error
	quitting bool
}

// Model represents the application state
type Model struct {
	s      *screen
	styles Styles
	keys   KeyMap

	width  int
	height int
	ready  bool
}

// menuEntry is one navigation button
type menuEntry struct {
	text string
	url  string
}

// NewModel creates a new Model and builds its element tree
func NewModel(opts Options) Model {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	tbl := opts.Table
	if tbl.ItemHeight <= 0 {
		tbl.ItemHeight = config.DefaultItemHeight
	}
	if tbl.LineUnits <= 0 {
		tbl.LineUnits = config.DefaultLineUnits
	}
	if tbl.WheelDelta <= 0 {
		tbl.WheelDelta = config.DefaultWheelDelta
	}
	if len(tbl.Columns) == 0 {
		tbl.Columns = config.DefaultColumns()
	}

	ctx := ui.NewContext()
	s := &screen{
		ctx:        ctx,
		engine:     nav.NewEngine(),
		clicks:     newClickCounter(opts.Now),
		prompt:     ui.NewTextBox(ctx),
		source:     opts.Source,
		dataFile:   opts.DataFile,
		clipboard:  opts.Clipboard,
		wheelDelta: tbl.WheelDelta,
	}
	s.prompt.Filter = ui.NumberFilter{}
	s.engine.OnError = s.navigationFailed
	s.home = NewHomeView(ctx, TableColumns(tbl.Columns), tbl.ItemHeight, tbl.LineUnits)
	s.home.Table().OnOpen(s.open)
	s.build()
	s.registerRoutes()
	s.home.Table().Focus()

	return Model{
		s:      s,
		styles: DefaultStyles(),
		keys:   DefaultKeyMap(),
	}
}

// build lays out the menu bar above the side menu and the home view
func (s *screen) build() {
	menu := ui.NewHorizontalMenu(s.ctx)
	for _, e := range []menuEntry{
		{"Home", "home/index"},
		{"Districts", "dvhc/level?cap=" + model.LevelDistrict},
		{"Wards", "dvhc/level?cap=" + model.LevelWard},
		{"Quit", "app/quit"},
	} {
		b := ui.NewButton(s.ctx, ui.ButtonPlain, s.engine)
		b.SetText(e.text)
		b.URL = e.url
		b.Radius = 1
		b.Foreground = primaryColor
		menu.Children().Add(b)
	}

	side := ui.NewSideMenu(s.ctx)
	side.SetText("Navigate")
	side.Width = 16
	side.Caption().Foreground = primaryColor
	entries := []menuEntry{
		{"Top level", "dvhc/index"},
		{"Back", "app/back"},
	}
	if s.dataFile != "" {
		entries = append(entries, menuEntry{"Data file", "dvhc/file"})
	}
	for _, e := range entries {
		b := ui.NewButton(s.ctx, ui.ButtonMenu, s.engine)
		b.SetText(e.text)
		b.URL = e.url
		b.Height = 1
		side.Children().Add(b)
	}

	body := ui.NewStack(s.ctx, ui.Horizontal)
	body.Children().Add(side, s.home.Content())

	s.root = ui.NewGrid(s.ctx)
	s.root.Children().Add(menu, body)
	s.root.Split(2, 1)
	s.root.Rows().At(0).Size = 3
}

// startURL is the first page shown
func (s *screen) startURL() string {
	if s.dataFile != "" {
		return "dvhc/file"
	}
	return "home/index"
}

// Init navigates to the start page
func (m Model) Init() tea.Cmd {
	url := m.s.startURL()
	return func() tea.Msg {
		return NavigateMsg{URL: url}
	}
}

// Home returns the home view
func (m Model) Home() *HomeView {
	return m.s.home
}

// Root returns the root of the element tree
func (m Model) Root() ui.Node {
	return m.s.root
}

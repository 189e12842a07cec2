package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/thronedex/internal/pipeline"
	"github.com/five82/thronedex/internal/prefs"
	"github.com/five82/thronedex/internal/thronesapi"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *pipeline.Controller
	Grid       *Grid // the sink the controller renders into
	ThemeName  string
	PrefsPath  string
	Logger     *zap.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	controller *pipeline.Controller
	grid       *Grid
	logger     *zap.Logger
	prefsPath  string
	keys       keyMap
	help       help.Model

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Query input
	queryInput textinput.Model
	searching  bool

	// Grid state
	selected  int
	scrollRow int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	grid := opts.Grid
	if grid == nil {
		grid = NewGrid()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search names..."
	ti.CharLimit = 64

	return Model{
		ctx:        ctx,
		controller: opts.Controller,
		grid:       grid,
		logger:     logger,
		prefsPath:  prefsPath,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		theme:      GetTheme(opts.ThemeName),
		queryInput: ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.controller == nil {
		return nil
	}
	return loadCmd(m.ctx, m.controller)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.syncSelection()
		return m, nil

	case loadedMsg:
		m.apply(m.controller.Apply(msg.records, msg.err))
		m.syncSelection()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderControls())
	b.WriteString("\n")
	b.WriteString(m.renderGrid(m.width, m.gridHeight()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.queryInput.Focus()

	case key.Matches(msg, m.keys.NextFamily):
		m.cycleFamily(1)

	case key.Matches(msg, m.keys.PrevFamily):
		m.cycleFamily(-1)

	case key.Matches(msg, m.keys.ToggleSort):
		m.apply(m.controller.ToggleSort())
		m.savePrefs()
		m.resetSelection()

	case key.Matches(msg, m.keys.Reset):
		m.queryInput.SetValue("")
		m.apply(m.controller.Reset())
		m.resetSelection()

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-gridColumns(m.width))
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(gridColumns(m.width))
	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
		m.syncSelection()
	case key.Matches(msg, m.keys.Bottom):
		m.selected = len(m.grid.Cards()) - 1
		m.syncSelection()
	}
	return m, nil
}

// handleSearchKey feeds the query input and refilters on every change.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Escape) {
		m.searching = false
		m.queryInput.Blur()
		return m, nil
	}

	before := m.queryInput.Value()
	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	if after := m.queryInput.Value(); after != before {
		m.apply(m.controller.SetQuery(after))
		m.resetSelection()
	}
	return m, cmd
}

// cycleFamily moves the family selection by delta, wrapping around.
func (m *Model) cycleFamily(delta int) {
	cats := m.grid.Categories()
	if len(cats) == 0 {
		return
	}
	current := m.controller.Store().Category()
	idx := 0
	for i, c := range cats {
		if c == current {
			idx = i
			break
		}
	}
	next := ((idx+delta)%len(cats) + len(cats)) % len(cats)
	m.apply(m.controller.SetCategory(cats[next]))
	m.resetSelection()
}

func (m *Model) moveSelection(delta int) {
	m.selected += delta
	m.syncSelection()
}

func (m *Model) resetSelection() {
	m.selected = 0
	m.scrollRow = 0
	m.syncSelection()
}

// syncSelection clamps the selection to the view and scrolls it into sight.
func (m *Model) syncSelection() {
	m.selected = clampSelection(m.selected, len(m.grid.Cards()))
	m.scrollRow = scrollFor(m.selected, gridColumns(m.width), gridRows(m.gridHeight()), m.scrollRow)
}

func (m Model) gridHeight() int {
	// header + controls + footer
	h := m.height - 3
	if h < cardHeight {
		return cardHeight
	}
	return h
}

// apply logs controller errors. Only sink failures reach here; the grid sink
// never fails, so this is a diagnostic path.
func (m Model) apply(err error) {
	if err == nil {
		return
	}
	var loadErr *loadError
	if errors.As(err, &loadErr) {
		return
	}
	m.logger.Warn("pipeline update failed", zap.Error(err))
}

func (m Model) savePrefs() {
	p := prefs.Prefs{
		Theme: m.theme.Name,
		Sort:  m.controller.Store().Direction().String(),
	}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
	}
}

// Messages

type loadedMsg struct {
	records []thronesapi.Record
	err     error
}

// loadError marks an error already reported by the controller.
type loadError struct{ err error }

func (e *loadError) Error() string { return e.err.Error() }
func (e *loadError) Unwrap() error { return e.err }

// Commands

// loadCmd runs the single fetch off the event loop. The store is only
// touched once the result comes back as a loadedMsg.
func loadCmd(ctx context.Context, c *pipeline.Controller) tea.Cmd {
	return func() tea.Msg {
		records, err := c.Fetch(ctx)
		if err != nil {
			err = &loadError{err: err}
		}
		return loadedMsg{records: records, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	if opts.Controller == nil {
		return fmt.Errorf("ui requires a pipeline controller")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
		opts.Context = ctx
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

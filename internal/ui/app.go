package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/keylog/internal/keystroke"
	"github.com/five82/keylog/internal/prefs"
	"github.com/five82/keylog/internal/recorder"
	"github.com/five82/keylog/internal/watch"
)

// LogStore is the log file as seen by the window.
type LogStore interface {
	keystroke.Sink
	Path() string
	Stat() (recorder.Info, error)
	Tail(maxChars int) (content string, found bool, err error)
	Clear() error
}

// DefaultPreviewChars bounds how much of the log a viewer shows.
const DefaultPreviewChars = 20000

const readyStatus = "Ready: start typing below"

// Options configures the UI.
type Options struct {
	Log          LogStore
	ContextChars int // zero uses keystroke.DefaultContextChars
	PreviewChars int // zero uses DefaultPreviewChars
	Changes      <-chan watch.Event
	Logger       *slog.Logger
	ThemeName    string
	PrefsPath    string // empty disables persisting theme and intro state
	ShowIntro    bool
	Now          func() time.Time
	Copy         func(string) error // nil uses the system clipboard
}

type focusArea int

const (
	focusEditor focusArea = iota
	focusToolbar
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	log          LogStore
	handler      *keystroke.Handler
	previewChars int
	changes      <-chan watch.Event
	logger       *slog.Logger
	prefsPath    string
	now          func() time.Time
	copyFn       func(string) error
	keys         keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	focus    focusArea
	selected int // toolbar button under keyboard focus

	editor  textarea.Model
	modals  []Modal
	viewers int

	// Help overlay
	showHelp     bool
	introPending bool

	// Session state
	status     string
	recordErr  error
	entries    int
	logInfo    recorder.Info
	logRemoved bool // the log was deleted while the window was open
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	previewChars := opts.PreviewChars
	if previewChars <= 0 {
		previewChars = DefaultPreviewChars
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	ta := textarea.New()
	ta.Placeholder = "Type here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()

	m := Model{
		log:          opts.Log,
		handler:      keystroke.NewHandler(opts.Log, opts.ContextChars),
		previewChars: previewChars,
		changes:      opts.Changes,
		logger:       logger,
		prefsPath:    opts.PrefsPath,
		now:          now,
		copyFn:       opts.Copy,
		keys:         DefaultKeyMap(),
		theme:        GetTheme(opts.ThemeName),
		editor:       ta,
		showHelp:     opts.ShowIntro,
		introPending: opts.ShowIntro,
		status:       readyStatus,
	}
	m.refreshLogInfo()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.changes != nil {
		cmds = append(cmds, waitForLogChange(m.changes))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeEditor()
		return m, m.broadcast(msg)

	case logChangedMsg:
		m.refreshLogInfo()
		if watch.Event(msg).Removed() && !m.logInfo.Exists {
			m.logRemoved = true
		}
		return m, waitForLogChange(m.changes)

	case watchClosedMsg:
		return m, nil

	case clearConfirmedMsg:
		return m.clearLog()

	case copyResultMsg:
		return m, m.broadcast(msg)
	}

	// Cursor blink and clipboard paste results belong to the editor.
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if n := len(m.modals); n > 0 {
		return m.modals[n-1].View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// handleKey routes a key to the help overlay, the topmost modal, the
// toolbar or the editor, in that order. Command keys never reach the editor.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		if m.introPending {
			m.introPending = false
			m.savePrefs()
		}
		return m, nil
	}

	if n := len(m.modals); n > 0 {
		top := m.modals[n-1]
		if _, ok := top.(*viewerModal); ok {
			// Viewers behave like secondary windows: the log commands stay live.
			switch {
			case key.Matches(msg, m.keys.ShowLog):
				return m.showLog()
			case key.Matches(msg, m.keys.ClearLog):
				return m.confirmClear()
			}
		}
		next, cmd, closed := top.Update(msg, m.keys)
		if closed {
			m.modals = m.modals[:n-1]
		} else {
			m.modals[n-1] = next
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.ShowLog):
		return m.showLog()
	case key.Matches(msg, m.keys.ClearLog):
		return m.confirmClear()
	}

	if m.focus == focusToolbar {
		return m.handleToolbarKey(msg)
	}
	if key.Matches(msg, m.keys.Toolbar) {
		m.focusToolbar()
		return m, nil
	}
	return m.handleEditorKey(msg)
}

// handleEditorKey applies the key to the editor and records it against the
// resulting content. Printable runes that arrived in one terminal read are
// replayed one key at a time; only a bracketed paste is a single entry.
func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyRunes || msg.Paste || len(msg.Runes) <= 1 {
		return m.recordKey(msg)
	}
	cmds := make([]tea.Cmd, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		single := msg
		single.Runes = []rune{r}
		var cmd tea.Cmd
		m, cmd = m.recordKey(single)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) recordKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	ev := keystroke.FromKeyMsg(msg)

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	written, err := m.handler.Handle(ev, m.editor.Value())
	if err != nil {
		m.recordErr = err
		m.status = fmt.Sprintf("Could not write log: %v", err)
		m.logger.Error("record keystroke failed", "path", m.log.Path(), "error", err)
		return m, cmd
	}
	if written {
		m.recordErr = nil
		m.entries++
		m.status = fmt.Sprintf("Last: %s at %s", ev.Keysym, m.now().Format("15:04:05"))
		m.refreshLogInfo()
	}
	return m, cmd
}

func (m Model) handleToolbarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Editor):
		return m, m.focusEditor()
	case key.Matches(msg, m.keys.Next):
		m.selected = (m.selected + 1) % len(toolbarButtons)
	case key.Matches(msg, m.keys.Prev):
		m.selected = (m.selected - 1 + len(toolbarButtons)) % len(toolbarButtons)
	case key.Matches(msg, m.keys.Press):
		return m.activate(toolbarButtons[m.selected].action)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if n := len(m.modals); n > 0 {
		next, cmd, closed := m.modals[n-1].Update(msg, m.keys)
		if closed {
			m.modals = m.modals[:n-1]
		} else {
			m.modals[n-1] = next
		}
		return m, cmd
	}
	if m.showHelp {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if msg.Y < toolbarRows {
		for i, r := range buttonRegions(m.width) {
			if msg.X >= r.start && msg.X < r.end {
				m.selected = i
				return m.activate(r.action)
			}
		}
		return m, nil
	}
	if msg.Y < toolbarRows+m.editorHeight() {
		return m, m.focusEditor()
	}
	return m, nil
}

func (m Model) activate(action toolbarAction) (tea.Model, tea.Cmd) {
	switch action {
	case actionShowLog:
		return m.showLog()
	case actionClearLog:
		return m.confirmClear()
	}
	return m, nil
}

// showLog opens a snapshot viewer of the log tail, or a notice when there is
// nothing to show. It never creates the log file.
func (m Model) showLog() (tea.Model, tea.Cmd) {
	content, found, err := m.log.Tail(m.previewChars)
	if err != nil {
		m.logger.Error("read log failed", "path", m.log.Path(), "error", err)
		m.push(newNotice(noticeError, "Log file", fmt.Sprintf("Could not read log file: %v", err)))
		return m, nil
	}
	if !found {
		m.push(newNotice(noticeInfo, "Log file", "No log file found yet."))
		return m, nil
	}
	m.viewers++
	m.push(newViewer(m.viewers, content, m.width, m.height, m.copyFn))
	return m, nil
}

func (m Model) confirmClear() (tea.Model, tea.Cmd) {
	m.push(newConfirm("Clear log", "Permanently delete the log file?", func() tea.Msg {
		return clearConfirmedMsg{}
	}))
	return m, nil
}

func (m Model) clearLog() (tea.Model, tea.Cmd) {
	if err := m.log.Clear(); err != nil {
		m.logger.Error("clear log failed", "path", m.log.Path(), "error", err)
		m.push(newNotice(noticeError, "Clear log", fmt.Sprintf("Could not delete log file: %v", err)))
		return m, nil
	}
	m.logger.Info("log cleared", "path", m.log.Path())
	m.refreshLogInfo()
	m.push(newNotice(noticeSuccess, "Clear log", "Log file deleted."))
	return m, nil
}

func (m *Model) push(modal Modal) {
	m.modals = append(m.modals, modal)
}

// broadcast delivers a non-key message to every open modal.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, modal := range m.modals {
		next, cmd, _ := modal.Update(msg, m.keys)
		m.modals[i] = next
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) focusToolbar() {
	m.focus = focusToolbar
	m.editor.Blur()
}

func (m *Model) focusEditor() tea.Cmd {
	m.focus = focusEditor
	return m.editor.Focus()
}

func (m *Model) refreshLogInfo() {
	info, err := m.log.Stat()
	if err != nil {
		m.logger.Warn("stat log failed", "path", m.log.Path(), "error", err)
		return
	}
	m.logInfo = info
	if info.Exists {
		m.logRemoved = false
	}
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, SeenIntro: true}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// Messages

type logChangedMsg watch.Event

type watchClosedMsg struct{}

type clearConfirmedMsg struct{}

// Commands

func waitForLogChange(ch <-chan watch.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return logChangedMsg(ev)
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Log == nil {
		return fmt.Errorf("ui requires a log store")
	}
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

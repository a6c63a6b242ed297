package controller

import (
	"context"
	"fmt"
	"time"

	"scini/internal/config"
	"scini/internal/mqttbridge"
	"scini/internal/state"
	"scini/internal/storage"
	"scini/internal/tui/components"
	"scini/internal/tui/design"
	"scini/internal/tui/pages"
	"scini/internal/tui/shell"
	"scini/internal/tui/view"
	"scini/internal/watch"
	"scini/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const tuiSubsystem = "TUI"

// Constants for UI
const (
	MaxActivityLogLines = 1000
	MaxTelemetrySamples = 500

	tuiChannelSize   = 256
	busBufferSize    = 256
	maxFlushPasses   = 8
	statusDuration   = 3 * time.Second
	defaultSnackTime = 3 * time.Second
)

// Options wire the TUI to the rest of the application.
type Options struct {
	Context      context.Context
	Config       config.SciniConfig
	Version      string
	Store        *state.Store
	Storage      *storage.Local
	Messaging    shell.Messaging
	Connectivity *watch.Connectivity
	LogChannel   <-chan logging.LogEntry

	// Location is where navigation starts, "/" when empty.
	Location string

	// Clipboard copies text, clipboard.WriteAll when nil.
	Clipboard func(string) error
}

// Model is the Bubble Tea model around the shell.
type Model struct {
	Width  int
	Height int

	cfg        config.SciniConfig
	version    string
	store      *state.Store
	shell      *shell.Shell
	router     *Router
	breakpoint *watch.Breakpoint
	storage    *storage.Local

	tuiChannel chan tea.Msg
	logChannel <-chan logging.LogEntry
	bus        *mqttbridge.Channel
	busChannel <-chan mqttbridge.Message
	busCancel  func()

	keys       KeyMap
	help       help.Model
	content    viewport.Model
	logView    viewport.Model
	transcript textinput.Model

	speaking     bool
	showLog      bool
	drawerCursor int
	drawerOpen   bool

	tree         shell.Tree
	pendingTitle string

	snackbarOpen  bool
	snackbarLines string
	snackbarGen   int

	activityLog  []string
	telemetry    []pages.Sample
	latest       map[string]pages.Sample
	busConnected bool

	statusMessage string
	statusType    components.MessageType
	statusCancel  chan struct{}

	copy        func(string) error
	unsubscribe func()
}

// NewModel builds the model and the shell inside it. It fails when the
// shell cannot start, e.g. on a malformed persisted camera map.
func NewModel(opts Options) (*Model, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("state store is required")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	m := &Model{
		cfg:        opts.Config,
		version:    opts.Version,
		store:      opts.Store,
		storage:    opts.Storage,
		router:     NewRouter(opts.Location),
		breakpoint: watch.NewBreakpoint(opts.Config.Layout.WideMinColumns),
		tuiChannel: make(chan tea.Msg, tuiChannelSize),
		logChannel: opts.LogChannel,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		content:    viewport.New(0, 0),
		logView:    viewport.New(0, 0),
		transcript: textinput.New(),
		latest:     make(map[string]pages.Sample),
		copy:       copyFn,
	}
	m.transcript.Prompt = ""
	m.transcript.Placeholder = "speak a command"
	m.transcript.CharLimit = 200
	m.transcript.Width = 30
	m.transcript.PlaceholderStyle = design.InputStyle
	m.transcript.TextStyle = design.InputFocusedStyle

	m.unsubscribe = opts.Store.Subscribe(func(st state.State) {
		m.router.Record(st.Location)
	})

	svc := shell.Services{
		Viewport:   contentScroller{m},
		Metadata:   windowTitle{m},
		Router:     m.router,
		Breakpoint: m.breakpoint,
		Speech:     transcriptEcho{m},
	}
	if opts.Storage != nil {
		svc.Persistence = opts.Storage
	}
	if opts.Connectivity != nil {
		svc.Connectivity = uiConnectivity{ctx: ctx, watcher: opts.Connectivity, out: m.tuiChannel}
	}
	if opts.Messaging != nil {
		svc.Messaging = opts.Messaging
		// Subscribe before the shell starts the worker so no status is missed.
		m.bus = opts.Messaging.OpenChannel(shell.ChannelName)
		m.busChannel, m.busCancel = m.bus.Subscribe(busBufferSize)
	}

	sh, err := shell.New(opts.Store, svc, shell.Options{
		AppTitle:  opts.Config.App.Title,
		HomeRoute: opts.Config.App.HomeRoute,
	})
	if err != nil {
		m.Close()
		return nil, err
	}
	m.shell = sh
	return m, nil
}

// Close detaches the model from the store and the bus.
func (m *Model) Close() {
	if m.shell != nil {
		m.shell.Close()
	}
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	if m.busCancel != nil {
		m.busCancel()
	}
}

// Init implements tea.Model. It flushes the shell for the first time, which
// installs the watchers, and starts the readers of the async channels.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{channelReaderCmd(m.tuiChannel)}
	if m.logChannel != nil {
		cmds = append(cmds, logReaderCmd(m.logChannel))
	}
	if m.busChannel != nil {
		cmds = append(cmds, busReaderCmd(m.busChannel))
	}
	cmds = append(cmds, m.sync())
	return tea.Batch(cmds...)
}

// sync flushes the shell until it settles, then brings the viewports, the
// window title and the snackbar timer in line with the new tree.
func (m *Model) sync() tea.Cmd {
	for i := 0; i < maxFlushPasses && m.shell.Dirty(); i++ {
		m.tree = m.shell.Flush()
	}

	if m.tree.Drawer.Opened && !m.drawerOpen {
		m.drawerCursor = selectedLink(m.tree.Drawer.Links)
	}
	m.drawerOpen = m.tree.Drawer.Opened

	m.resize()
	m.refreshContent()

	var cmds []tea.Cmd
	if m.pendingTitle != "" {
		cmds = append(cmds, tea.SetWindowTitle(m.pendingTitle))
		m.pendingTitle = ""
	}
	if cmd := m.armSnackbar(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// armSnackbar starts the auto-close timer whenever the banner opens or its
// text changes while open. Older timers are ignored through the generation.
func (m *Model) armSnackbar() tea.Cmd {
	lines := fmt.Sprint(m.tree.Snackbar.Lines)
	active := m.tree.Snackbar.Active
	changed := active && (!m.snackbarOpen || lines != m.snackbarLines)
	m.snackbarOpen = active
	m.snackbarLines = lines
	if !changed {
		return nil
	}

	m.snackbarGen++
	gen := m.snackbarGen
	d := m.cfg.Snackbar.Duration
	if d <= 0 {
		d = defaultSnackTime
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return snackbarTimeoutMsg{gen: gen}
	})
}

func (m *Model) resize() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	w, h := view.ContentSize(m.tree, m.Width, m.Height)
	m.content.Width, m.content.Height = w, h
	lw, lh := view.LogOverlaySize(m.Width, m.Height)
	m.logView.Width, m.logView.Height = lw, lh
	m.help.Width = m.Width
}

func (m *Model) refreshContent() {
	p := m.shell.ActivePage()
	if p == nil {
		m.content.SetContent("")
		return
	}
	m.content.SetContent(p.View(m.pageContext()))
}

func (m *Model) pageContext() pages.Context {
	st := m.store.State()
	ctx := pages.Context{
		Width:        m.content.Width,
		Height:       m.content.Height,
		AppTitle:     m.shell.AppTitle(),
		Version:      m.version,
		Route:        m.tree.Route,
		Query:        st.Query,
		Offline:      st.Offline,
		BusConnected: m.busConnected,
		CameraMap:    st.CameraMap,
		Telemetry:    m.telemetry,
		Latest:       m.latest,
		ActivityLog:  m.activityLog,
		Dispatched:   m.store.Metrics().Dispatched,
		LogsDropped:  logging.Dropped(),
	}
	if m.bus != nil {
		ctx.BusDropped = m.bus.Metrics().Dropped
	}
	if m.storage != nil {
		ctx.StorageKeys = m.storage.Keys()
		ctx.StoragePath = m.storage.Path()
	}
	return ctx
}

func (m *Model) appendLog(line string) {
	m.activityLog = append(m.activityLog, line)
	if len(m.activityLog) > MaxActivityLogLines {
		m.activityLog = m.activityLog[len(m.activityLog)-MaxActivityLogLines:]
	}
	if m.showLog {
		m.refreshLogView()
	}
}

func (m *Model) recordBus(msg mqttbridge.Message) {
	switch msg.Type {
	case mqttbridge.MessageStatus:
		m.busConnected = msg.Connected
	case mqttbridge.MessageData:
		sample := pages.Sample{Topic: msg.Topic, Value: string(msg.Payload), Time: msg.Time}
		if sample.Time.IsZero() {
			sample.Time = time.Now()
		}
		m.telemetry = append(m.telemetry, sample)
		if len(m.telemetry) > MaxTelemetrySamples {
			m.telemetry = m.telemetry[len(m.telemetry)-MaxTelemetrySamples:]
		}
		m.latest[msg.Topic] = sample
	}
}

// setStatusMessage shows message in the footer until clearAfter elapses or
// another message replaces it.
func (m *Model) setStatusMessage(message string, msgType components.MessageType, clearAfter time.Duration) tea.Cmd {
	m.statusMessage = message
	m.statusType = msgType

	if m.statusCancel != nil {
		close(m.statusCancel)
	}
	m.statusCancel = make(chan struct{})
	captured := m.statusCancel

	return tea.Tick(clearAfter, func(time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return clearStatusMsg{}
		}
	})
}

func selectedLink(links []shell.Link) int {
	// The leading Home entry duplicates the home page, prefer the named link.
	for i := len(links) - 1; i >= 0; i-- {
		if links[i].Selected {
			return i
		}
	}
	return 0
}

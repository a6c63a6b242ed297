package controller

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scini/internal/config"
	"scini/internal/mqttbridge"
	"scini/internal/state"
	"scini/internal/storage"
	"scini/internal/tui/design"
	"scini/internal/tui/shell"
	"scini/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

type testApp struct {
	m      *Model
	store  *state.Store
	copied []string
}

func newTestApp(t *testing.T, mutate func(*Options)) *testApp {
	t.Helper()
	app := &testApp{store: state.NewStore(state.Initial())}
	opts := Options{
		Config: config.GetDefaultConfig(),
		Store:  app.store,
		Clipboard: func(s string) error {
			app.copied = append(app.copied, s)
			return nil
		},
	}
	if mutate != nil {
		mutate(&opts)
	}
	m, err := NewModel(opts)
	require.NoError(t, err)
	t.Cleanup(m.Close)
	app.m = m

	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return app
}

func (a *testApp) send(msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = a.m.Update(msg)
	}
	return cmd
}

func TestRouter(t *testing.T) {
	r := NewRouter("")
	var seen []string
	require.NoError(t, r.Install(func(loc string) { seen = append(seen, loc) }))
	assert.Equal(t, []string{"/"}, seen)
	assert.Error(t, r.Install(func(string) {}))

	assert.False(t, r.Back())
	r.Push("/controls")
	r.Record("/controls?q=x")
	r.Record("/controls?q=x")
	assert.Equal(t, "/controls?q=x", r.Location())
	assert.True(t, r.CanGoBack())

	assert.True(t, r.Back())
	assert.True(t, r.Back())
	assert.Equal(t, []string{"/", "/controls", "/controls", "/"}, seen)

	r.Push("/about")
	assert.Equal(t, "/about", r.Location())
	assert.True(t, r.Back())
	assert.Equal(t, "/", r.Location())
}

func TestInitResolvesShell(t *testing.T) {
	app := newTestApp(t, nil)

	assert.True(t, app.m.tree.Resolved)
	assert.Equal(t, state.RouteCamera, app.m.tree.Route)
	assert.Contains(t, app.m.View(), "Cameras")
}

func TestWindowSizeDrivesLayout(t *testing.T) {
	app := newTestApp(t, nil)
	assert.False(t, app.store.State().WideLayout)

	app.send(tea.WindowSizeMsg{Width: 140, Height: 40})
	assert.True(t, app.store.State().WideLayout)
	assert.True(t, app.m.tree.Wide)

	app.send(tea.WindowSizeMsg{Width: 60, Height: 40})
	assert.False(t, app.m.tree.Wide)
}

func TestDrawerNavigation(t *testing.T) {
	app := newTestApp(t, nil)

	app.send(runes("m"))
	require.True(t, app.m.tree.Drawer.Opened)
	assert.Equal(t, 1, app.m.drawerCursor)

	app.send(tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, app.m.tree.Drawer.Opened)
	assert.Equal(t, state.RouteControls, app.store.State().Page)

	app.send(runes("m"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.store.State().DrawerOpened)
}

func TestJumpKeys(t *testing.T) {
	app := newTestApp(t, nil)

	app.send(runes("9"))
	assert.Equal(t, state.RouteAbout, app.store.State().Page)
	app.send(runes("6"))
	assert.Equal(t, state.RouteTroubleshooting, app.store.State().Page)
}

func TestBackKey(t *testing.T) {
	app := newTestApp(t, nil)

	app.send(runes("2"), runes("3"))
	assert.Equal(t, state.RouteTelemetry, app.store.State().Page)

	app.send(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, state.RouteControls, app.store.State().Page)
	app.send(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, state.RouteCamera, app.store.State().Page)
}

func TestBackKeyLeavesUnknownRoute(t *testing.T) {
	app := newTestApp(t, func(o *Options) { o.Location = "/nowhere" })
	require.Equal(t, state.RouteNotFound, app.m.tree.Active)
	assert.Contains(t, app.m.View(), "/camera")

	app.send(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, state.RouteCamera, app.store.State().Page)
	assert.Equal(t, state.RouteCamera, app.m.tree.Active)
}

func TestTranscriptUsesInputStyles(t *testing.T) {
	app := newTestApp(t, nil)
	assert.Equal(t, design.InputFocusedStyle.Render("x"), app.m.transcript.TextStyle.Render("x"))
	assert.Equal(t, design.InputStyle.Render("x"), app.m.transcript.PlaceholderStyle.Render("x"))
}

func TestTranscriptInterimAndFinal(t *testing.T) {
	app := newTestApp(t, nil)

	app.send(runes("/"))
	require.True(t, app.m.speaking)
	app.send(runes("l"), runes("i"), runes("g"))
	assert.Equal(t, state.RouteCamera, app.store.State().Page)
	assert.Equal(t, "lig", app.m.transcript.Value())

	app.send(tea.KeyMsg{Type: tea.KeyEnter})
	st := app.store.State()
	assert.Equal(t, state.RouteControls, st.Page)
	assert.Equal(t, "lig", st.Query)
	assert.False(t, app.m.speaking)
	assert.Contains(t, app.m.View(), "lig")

	app.send(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, state.RouteCamera, app.store.State().Page)
}

func TestTranscriptEscCancels(t *testing.T) {
	app := newTestApp(t, nil)

	app.send(runes("/"), runes("x"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.m.speaking)
	assert.Equal(t, state.RouteCamera, app.store.State().Page)
	assert.Empty(t, app.m.transcript.Value())
}

func TestSnackbarAutoClose(t *testing.T) {
	app := newTestApp(t, nil)

	app.store.Dispatch(state.SetOffline{Offline: true})
	app.send(clearStatusMsg{})
	require.True(t, app.m.tree.Snackbar.Active)
	gen := app.m.snackbarGen

	app.send(snackbarTimeoutMsg{gen: gen - 1})
	assert.True(t, app.store.State().SnackbarOpened)

	app.send(snackbarTimeoutMsg{gen: gen})
	assert.False(t, app.store.State().SnackbarOpened)
	assert.False(t, app.m.tree.Snackbar.Active)
}

func TestWatcherMsgRunsOnUpdate(t *testing.T) {
	app := newTestApp(t, nil)
	ran := false
	app.send(watcherMsg{apply: func() {
		ran = true
		app.store.Dispatch(state.SetOffline{Offline: true})
	}})
	assert.True(t, ran)
	assert.Contains(t, app.m.tree.Snackbar.Lines, "Network: offline.")
}

func TestCopyLogsOnlyOnTroubleshooting(t *testing.T) {
	app := newTestApp(t, nil)
	app.send(logEntryMsg{entry: logging.LogEntry{
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Level:     logging.LevelInfo,
		Subsystem: "Shell",
		Message:   "hello",
	}})

	app.send(runes("y"))
	assert.Empty(t, app.copied)

	app.send(runes("6"), runes("y"))
	require.Len(t, app.copied, 1)
	assert.Equal(t, "12:00:00 [INFO] Shell: hello", app.copied[0])
	assert.Equal(t, "Logs copied to clipboard", app.m.statusMessage)

	app.send(clearStatusMsg{})
	assert.Empty(t, app.m.statusMessage)
}

func TestCopyLogsFailure(t *testing.T) {
	app := newTestApp(t, func(o *Options) {
		o.Clipboard = func(string) error { return errors.New("no display") }
	})
	app.send(runes("L"))
	require.True(t, app.m.showLog)
	app.send(runes("y"))
	assert.Equal(t, "Copy logs failed", app.m.statusMessage)

	app.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, app.m.showLog)
}

func TestBusMessages(t *testing.T) {
	app := newTestApp(t, nil)

	app.send(
		busMsg{msg: mqttbridge.Message{Type: mqttbridge.MessageStatus, Connected: true}},
		busMsg{msg: mqttbridge.Message{Type: mqttbridge.MessageData, Topic: "rov/depth", Payload: []byte("12.5")}},
		busMsg{msg: mqttbridge.Message{Type: mqttbridge.MessageData, Topic: "rov/depth", Payload: []byte("13.0")}},
	)
	assert.True(t, app.m.busConnected)
	assert.Len(t, app.m.telemetry, 2)
	assert.Equal(t, "13.0", app.m.latest["rov/depth"].Value)

	app.send(runes("4"))
	assert.Contains(t, app.m.View(), "13.0")
}

func TestQuitKey(t *testing.T) {
	app := newTestApp(t, nil)
	cmd := app.m.handleKey(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMalformedCameraMapFailsStartup(t *testing.T) {
	local, err := storage.Open(filepath.Join(t.TempDir(), "localstorage.yaml"))
	require.NoError(t, err)
	require.NoError(t, local.Set(shell.CameraMapKey, "{not json"))

	_, err = NewModel(Options{
		Config:  config.GetDefaultConfig(),
		Store:   state.NewStore(state.Initial()),
		Storage: local,
	})
	assert.True(t, errors.Is(err, shell.ErrCameraMapMalformed))
}

func TestCameraMapFromStorage(t *testing.T) {
	local, err := storage.Open(filepath.Join(t.TempDir(), "localstorage.yaml"))
	require.NoError(t, err)
	require.NoError(t, local.Set(shell.CameraMapKey, `{"bow":{"url":"rtsp://bow"}}`))

	app := newTestApp(t, func(o *Options) { o.Storage = local })
	assert.Contains(t, app.store.State().CameraMap, "bow")
	assert.Contains(t, app.m.View(), "bow")

	app.send(runes("5"))
	assert.Contains(t, app.m.View(), "cameraMap")
}

func TestMessagingHandshakeAndBus(t *testing.T) {
	hub := mqttbridge.NewHub()
	t.Cleanup(hub.Close)
	msging := &stubMessaging{hub: hub}

	app := newTestApp(t, func(o *Options) { o.Messaging = msging })
	assert.Equal(t, 1, msging.inits)
	require.NotNil(t, app.m.busChannel)

	hub.Channel(shell.ChannelName).Post(mqttbridge.Message{Type: mqttbridge.MessageStatus, Connected: true})
	select {
	case msg := <-app.m.busChannel:
		assert.True(t, msg.Connected)
	case <-time.After(time.Second):
		t.Fatal("bus message not delivered")
	}
}

type stubMessaging struct {
	hub   *mqttbridge.Hub
	inits int
}

func (s *stubMessaging) NewWorker() mqttbridge.Port { return stubPort{} }

func (s *stubMessaging) OpenChannel(name string) *mqttbridge.Channel { return s.hub.Channel(name) }

func (s *stubMessaging) Init(mqttbridge.Port, *mqttbridge.Channel) { s.inits++ }

type stubPort struct{}

func (stubPort) Post(mqttbridge.Command) bool { return true }

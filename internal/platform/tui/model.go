package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"physbox/internal/core"
	"physbox/internal/scene"
	"physbox/internal/storage"
)

// Model is the Bubble Tea model for running physbox scenes.
type Model struct {
	scn          scene.Scene
	screen       *core.Screen
	store        *storage.Store
	config       core.RuntimeConfig
	keys         *KeyMapper
	inputFrame   core.InputFrame
	sceneState   core.SceneState
	quitting     bool
	sessionSaved bool // Whether this session has been persisted
}

// NewModel creates a new Bubble Tea model for the given scene.
func NewModel(scn scene.Scene, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	scn.Reset(cfg)

	return Model{
		scn:        scn,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuit := m.keys.MapKeyToFrame(msg, &m.inputFrame); isQuit {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The scene is reset with the
// new dimensions so the world bounds match the viewport again; bounds never
// change mid-tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.scn.Reset(m.config)
	m.sceneState = m.scn.State()
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.scn.Step(m.inputFrame)
	m.sceneState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveSession persists the finished session, best effort.
func (m *Model) saveSession() {
	if m.store == nil || m.sessionSaved || m.sceneState.Ticks == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, quitting regardless
	m.store.SaveSession(m.scn.ID(), m.sceneState.Ticks, m.sceneState.Bounces, m.sceneState.PeakSpeed)
	m.sessionSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.scn.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(scn scene.Scene, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(scn, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

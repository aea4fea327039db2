package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emirpasha/sokak-snake/internal/core"
	"github.com/emirpasha/sokak-snake/internal/game"
	"github.com/emirpasha/sokak-snake/internal/platform/audio"
	"github.com/emirpasha/sokak-snake/internal/registry"
	"github.com/emirpasha/sokak-snake/internal/storage"
)

// Model is the Bubble Tea model driving one game session.
type Model struct {
	variant registry.Variant
	eng     *game.Engine
	screen  *core.Screen
	store   *storage.Store
	sound   *audio.Player
	keys    *KeyMapper
	config  core.RuntimeConfig

	flavor     string // last flavor line, shown under the grid
	deathLine  string // flavor line of the fatal event
	runStarted time.Time
	runSaved   bool // whether the finished run has been persisted
	quitting   bool
}

// NewModel creates a session model for the given variant. The store may
// be nil; persistence is then skipped.
func NewModel(variant registry.Variant, store *storage.Store, sound *audio.Player, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	eng := variant.NewEngine(cfg.Seed)
	if store != nil {
		if best, err := store.BestScore(variant.ID); err == nil {
			eng.SetBestScore(best)
		}
	}

	return Model{
		variant: variant,
		eng:     eng,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		sound:   sound,
		keys:    NewKeyMapper(),
		config:  cfg,
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionStart:
		if m.eng.Phase() != game.PhaseRunning {
			m.flavor = ""
			m.deathLine = ""
			m.runStarted = time.Now()
			m.runSaved = false
			m.playEvents(m.eng.StartNewRun(time.Now().UnixMilli()))
		}
	case core.ActionMute:
		if m.sound != nil {
			m.sound.SetMuted(!m.sound.Muted())
		}
	default:
		if d := action.Dir(); !d.IsZero() {
			m.eng.QueueTurn(d)
		}
	}

	return m, nil
}

// handleTick advances the simulation to the tick's wall-clock reading.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	m.playEvents(m.eng.Tick(t.UnixMilli()))

	// Persist the finished run once.
	if m.eng.Phase() == game.PhaseGameOver && !m.runSaved {
		m.runSaved = true
		if m.store != nil {
			snap := m.eng.Snapshot()
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.RecordRun(m.variant.ID, snap.Score, len(snap.Snake), time.Since(m.runStarted))
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveBest(m.variant.ID, snap.Score)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// playEvents plays each event's cue and remembers its line for the HUD.
func (m *Model) playEvents(events []game.Event) {
	for _, ev := range events {
		if m.sound != nil {
			m.sound.Play(ev.Sound)
		}
		if ev.Line != "" {
			m.flavor = ev.Line
			if ev.Sound == game.SoundDead {
				m.deathLine = ev.Line
			}
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.eng.Snapshot(), m.variant.Title, m.flavor, m.deathLine, m.sound != nil && m.sound.Muted())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(variant registry.Variant, store *storage.Store, sound *audio.Player, cfg core.RuntimeConfig) error {
	model := NewModel(variant, store, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

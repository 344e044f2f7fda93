package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-arena/internal/entity"
	"github.com/vovakirdan/bubble-arena/internal/session"
	"github.com/vovakirdan/bubble-arena/internal/storage"
)

// Outcome recorded when the HUD is closed before the session ends.
const outcomeQuit = "quit"

// ResultSaver persists finished sessions. *storage.Store implements it.
type ResultSaver interface {
	SaveResult(r storage.Result) (int64, error)
}

var _ ResultSaver = (*storage.Store)(nil)

// Model is the Bubble Tea model of the HUD. It advances the arena clock at
// the session tick rate while the session is running.
type Model struct {
	session  *session.Session
	clock    entity.Ticker // nil when the arena cannot be advanced
	store    ResultSaver
	logger   *log.Logger
	tickRate int

	theme    Theme
	keys     KeyMap
	help     help.Model
	progress progress.Model

	width    int
	paused   bool
	quitting bool
	saved    bool
}

// NewModel creates a HUD for s. store and logger may be nil.
func NewModel(s *session.Session, store ResultSaver, logger *log.Logger, width int) Model {
	clock, _ := s.Arena().(entity.Ticker)

	m := Model{
		session:  s,
		clock:    clock,
		store:    store,
		logger:   logger,
		tickRate: s.Config().TickRate,
		theme:    DefaultTheme(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.resize(width)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if outcome := m.session.Outcome(); outcome != session.Running {
			m.save(outcome.String())
		} else {
			m.save(outcomeQuit)
		}
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	outcome := m.session.Outcome()
	if outcome != session.Running {
		m.save(outcome.String())
		return m, tickCmd(m.tickRate)
	}

	if !m.paused && m.clock != nil {
		m.clock.Tick()
	}
	return m, tickCmd(m.tickRate)
}

// save records the session result once.
func (m *Model) save(outcome string) {
	if m.saved {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}

	st := m.session.State()
	_, err := m.store.SaveResult(storage.Result{
		Level:         m.session.Layout().Dir,
		Outcome:       outcome,
		Points:        st.Points,
		TotalPoints:   st.TotalPoints,
		EnemyLives:    st.EnemyLives,
		RemainingTime: st.RemainingTime,
	})
	if err != nil && m.logger != nil {
		m.logger.Warn("could not save result", "error", err)
	}
}

func (m *Model) resize(width int) {
	m.width = width
	m.progress.Width = max(10, width-8)
	m.help.Width = width
}

// View renders the HUD.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.session.State()
	budget := m.session.Config().PlayTime

	var b strings.Builder
	b.WriteString(RenderSummary(m.session, m.theme))
	b.WriteString("\n\n")
	b.WriteString(m.progress.ViewAs(float64(st.RemainingTime) / float64(budget)))
	b.WriteString(fmt.Sprintf(" %ds\n", st.RemainingTime))

	switch {
	case m.session.Outcome() == session.Won:
		b.WriteString(m.theme.Won.Render("All enemies defeated and every bonus collected!"))
	case m.session.Outcome() == session.Lost:
		b.WriteString(m.theme.Lost.Render("GAME OVER"))
	case m.paused:
		b.WriteString(m.theme.Paused.Render("PAUSED"))
	case m.clock == nil:
		b.WriteString(m.theme.Paused.Render("arena clock is driven by the entity library"))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.HelpLine.Render(m.help.View(m.keys)))

	return b.String()
}

// Run starts the HUD program for s.
func Run(s *session.Session, store ResultSaver, logger *log.Logger, width int) error {
	p := tea.NewProgram(NewModel(s, store, logger, width), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

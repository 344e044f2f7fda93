package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubble-arena/internal/core"
	"github.com/vovakirdan/bubble-arena/internal/session"
)

// RenderSummary draws the level contents and the current session state.
func RenderSummary(s *session.Session, theme Theme) string {
	st := s.State()
	w, h := s.Arena().Size()

	rows := []string{
		theme.Title.Render("Level " + s.Layout().Dir),
		row(theme, "Field", fmt.Sprintf("%dx%d", w, h)),
		row(theme, "Platforms", fmt.Sprint(len(s.Platforms()))),
		row(theme, "Enemies", fmt.Sprintf("%d (%d lives)", len(s.Enemies()), st.EnemyLives)),
		row(theme, "Bonuses", fmt.Sprintf("%d (%d points)", len(s.Bonuses()), st.TotalPoints)),
	}
	for _, id := range []core.PlayerID{core.Player1, core.Player2} {
		hero := s.HeroByID(id)
		rows = append(rows, row(theme, id.String(),
			fmt.Sprintf("%v  %d lives  %d points", hero.Position(), hero.Lives(), hero.Points())))
	}
	rows = append(rows,
		row(theme, "Points", fmt.Sprintf("%d / %d", st.Points, st.TotalPoints)),
		row(theme, "Time left", fmt.Sprintf("%ds", st.RemainingTime)),
		row(theme, "Outcome", outcomeStyle(theme, s.Outcome()).Render(s.Outcome().String())),
	)
	return theme.Frame.Render(strings.Join(rows, "\n"))
}

func row(theme Theme, label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, theme.Label.Render(label), theme.Value.Render(value))
}

func outcomeStyle(theme Theme, o session.Outcome) lipgloss.Style {
	switch o {
	case session.Won:
		return theme.Won
	case session.Lost:
		return theme.Lost
	default:
		return theme.Running
	}
}

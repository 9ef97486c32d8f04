package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	zlog "github.com/rs/zerolog/log"
)

// Run runs the terminal player until the user quits, ctx is cancelled or the
// session ends.
func Run(ctx context.Context, s Session) error {
	m := New(s)

	notifications := s.GetNotificationManager()
	id := notifications.Subscribe(m.updates)
	defer notifications.Unsubscribe(id)

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		zlog.Debug().Msgf("tui: stopped by context: %v", err)
		return nil
	}
	return err
}

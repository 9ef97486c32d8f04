package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/osa030/podcastr/internal/domain/episode"
)

// episodeItem implements list.DefaultItem for a catalog episode.
type episodeItem struct {
	index   int // Position in the catalog
	episode episode.Episode
}

func (i episodeItem) FilterValue() string { return i.episode.Title + " " + i.episode.Members }
func (i episodeItem) Title() string       { return i.episode.Title }

func (i episodeItem) Description() string {
	parts := []string{i.episode.DurationString()}
	if i.episode.Members != "" {
		parts = append(parts, i.episode.Members)
	}
	return strings.Join(parts, " · ")
}

func newEpisodeItems(eps []episode.Episode) []list.Item {
	return lo.Map(eps, func(ep episode.Episode, i int) list.Item {
		return episodeItem{index: i, episode: ep}
	})
}

// newEpisodeList creates the catalog list. Its paging keys are moved off the
// letters used by the player bindings.
func newEpisodeList(title string, eps []episode.Episode) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(accentColor).
		BorderLeftForeground(accentColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		BorderLeftForeground(accentColor)

	l := list.New(newEpisodeItems(eps), delegate, 0, 0)
	l.Title = title
	l.Styles.Title = headerStyle
	l.SetShowHelp(false)
	l.SetStatusBarItemName("episode", "episodes")
	l.KeyMap.PrevPage.SetKeys("pgup")
	l.KeyMap.NextPage.SetKeys("pgdown")
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.Styles.PaginationStyle = lipgloss.NewStyle().PaddingLeft(2)
	return l
}

// Package statusbar provides status bar UI components.
package statusbar

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/younisrahman/appheader/pkg/ui/alert"
	"github.com/younisrahman/appheader/pkg/ui/common"
)

// DefaultAlertTimeout is how long an alert stays on the status bar.
const DefaultAlertTimeout = 3 * time.Second

// HelpZoneID is the mouse zone of the help toggle.
const HelpZoneID = "statusbar-help"

type dismissMsg struct {
	seq int
}

// Model is a status bar model.
type Model struct {
	common  common.Common
	key     string
	value   string
	info    string
	alert   *alert.Msg
	seq     int
	timeout time.Duration
}

// New creates a new status bar component.
func New(c common.Common) *Model {
	s := &Model{
		common:  c,
		timeout: DefaultAlertTimeout,
	}
	return s
}

// SetSize implements common.Component.
func (s *Model) SetSize(width, height int) {
	s.common.Width = width
	s.common.Height = height
}

// SetAlertTimeout sets how long alerts are shown. Zero keeps them until the
// next alert.
func (s *Model) SetAlertTimeout(d time.Duration) {
	s.timeout = d
}

// SetStatus sets the status bar status.
func (s *Model) SetStatus(key, value, info string) {
	if key != "" {
		s.key = key
	}
	if value != "" {
		s.value = value
	}
	if info != "" {
		s.info = info
	}
}

// Alert returns the alert being shown, if any.
func (s *Model) Alert() *alert.Msg {
	return s.alert
}

// Init implements tea.Model.
func (s *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *Model) Update(msg tea.Msg) (common.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
	case alert.Msg:
		s.alert = &msg
		s.seq++
		s.common.Logger.Debug("alert", "title", msg.Title, "message", msg.Message)
		if s.timeout > 0 {
			seq := s.seq
			return s, tea.Tick(s.timeout, func(time.Time) tea.Msg {
				return dismissMsg{seq: seq}
			})
		}
	case dismissMsg:
		if msg.seq == s.seq {
			s.alert = nil
		}
	}
	return s, nil
}

// View implements tea.Model.
func (s *Model) View() string {
	st := s.common.Styles
	w := lipgloss.Width
	help := s.common.Zone.Mark(
		HelpZoneID,
		st.StatusBarHelp.Render("? Help"),
	)
	key := st.StatusBarKey.Render(s.key)
	info := ""
	if s.info != "" {
		info = st.StatusBarInfo.Render(s.info)
	}
	alertView := ""
	if s.alert != nil {
		alertView = st.StatusBarAlert.Render(s.alert.Title + ": " + s.alert.Message)
	}
	maxWidth := max(s.common.Width-w(key)-w(info)-w(alertView)-w(help), 0)
	v := common.TruncateString(s.value, maxWidth-st.StatusBarValue.GetHorizontalFrameSize())
	value := st.StatusBarValue.
		Width(maxWidth).
		Render(v)

	return lipgloss.NewStyle().MaxWidth(s.common.Width).
		Render(
			lipgloss.JoinHorizontal(lipgloss.Top,
				key,
				value,
				alertView,
				info,
				help,
			),
		)
}

package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/younisrahman/appheader/pkg/ui/common"
)

// ZoneID is the mouse zone of the footer. Clicking it toggles the full help.
const ZoneID = "footer"

// ToggleFooterMsg is a message sent to show/hide the full help.
type ToggleFooterMsg struct{}

// ToggleFooterCmd sends a ToggleFooterMsg.
func ToggleFooterCmd() tea.Msg {
	return ToggleFooterMsg{}
}

// Footer is a Bubble Tea model that displays help and other info.
type Footer struct {
	common common.Common
	help   help.Model
	keymap help.KeyMap
}

// New creates a new Footer.
func New(c common.Common, keymap help.KeyMap) *Footer {
	h := help.New()
	h.Styles.ShortKey = c.Styles.HelpKey
	h.Styles.ShortDesc = c.Styles.HelpValue
	h.Styles.ShortSeparator = c.Styles.HelpDivider
	h.Styles.FullKey = c.Styles.HelpKey
	h.Styles.FullDesc = c.Styles.HelpValue
	h.Styles.FullSeparator = c.Styles.HelpDivider
	f := &Footer{
		common: c,
		help:   h,
		keymap: keymap,
	}
	return f
}

// SetSize implements common.Component.
func (f *Footer) SetSize(width, height int) {
	f.common.SetSize(width, height)
	f.help.Width = width -
		f.common.Styles.Footer.GetHorizontalFrameSize()
}

// Init implements tea.Model.
func (f *Footer) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (f *Footer) Update(msg tea.Msg) (common.Model, tea.Cmd) {
	if _, ok := msg.(ToggleFooterMsg); ok {
		f.SetShowAll(!f.ShowAll())
	}
	return f, nil
}

// View implements tea.Model.
func (f *Footer) View() string {
	if f.keymap == nil {
		return ""
	}
	s := f.common.Styles.Footer.
		Width(f.common.Width)
	helpView := f.help.View(f.keymap)
	return f.common.Zone.Mark(
		ZoneID,
		s.Render(helpView),
	)
}

// ShowAll returns whether the full help is shown.
func (f *Footer) ShowAll() bool {
	return f.help.ShowAll
}

// SetShowAll sets whether the full help is shown.
func (f *Footer) SetShowAll(show bool) {
	f.help.ShowAll = show
}

// Height returns the height of the footer.
func (f *Footer) Height() int {
	return lipgloss.Height(f.View())
}

package header

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/younisrahman/appheader/pkg/ui/common"
)

// Band geometry in layout units.
const (
	HeightUnits  = 60
	PaddingUnits = 16
)

// StyleFunc modifies a base style. It is how callers override the header's
// styles without losing the properties they don't touch.
type StyleFunc func(lipgloss.Style) lipgloss.Style

// Header represents a header component with a left slot, a centered title,
// and a right slot.
type Header struct {
	common         common.Common
	left           common.Renderable
	right          common.Renderable
	title          string
	containerStyle StyleFunc
	titleStyle     StyleFunc
}

// New creates a new header component.
func New(c common.Common) *Header {
	return &Header{
		common: c,
	}
}

// SetSlots sets the content of all three slots.
func (h *Header) SetSlots(left common.Renderable, title string, right common.Renderable) {
	h.left = left
	h.title = title
	h.right = right
}

// SetContainerStyle sets the modifier applied to the band style.
func (h *Header) SetContainerStyle(fn StyleFunc) {
	h.containerStyle = fn
}

// SetTitleStyle sets the modifier applied to the title style.
func (h *Header) SetTitleStyle(fn StyleFunc) {
	h.titleStyle = fn
}

// Title returns the current title.
func (h *Header) Title() string {
	return h.title
}

// SetSize implements common.Component.
func (h *Header) SetSize(width, height int) {
	h.common.SetSize(width, height)
}

// Height returns the number of rows the header occupies.
func (h *Header) Height() int {
	return common.Rows(HeightUnits) + h.style().GetVerticalFrameSize()
}

// Init implements tea.Model.
func (h *Header) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (h *Header) Update(msg tea.Msg) (common.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.SetSize(msg.Width, h.Height())
	}
	return h, nil
}

// View implements tea.Model.
func (h *Header) View() string {
	st := h.common.Styles.Header
	rows := common.Rows(HeightUnits)
	style := h.style()

	left := slot(st.Left, rows, h.left)
	right := slot(st.Right, rows, h.right)

	titleStyle := st.Title
	if h.titleStyle != nil {
		titleStyle = h.titleStyle(titleStyle)
	}
	titleStyle = titleStyle.
		Height(rows).
		AlignVertical(lipgloss.Center)

	title := strings.TrimSpace(h.title)
	if h.common.Width > 0 {
		content := max(h.common.Width-style.GetHorizontalFrameSize(), 0)
		tw := max(content-lipgloss.Width(left)-lipgloss.Width(right), 0)
		if tw > titleStyle.GetHorizontalFrameSize() {
			title = common.TruncateString(title, tw-titleStyle.GetHorizontalFrameSize())
		} else {
			title = ""
		}
		titleStyle = titleStyle.Width(tw)
		style = style.Width(content + style.GetHorizontalPadding())
	}

	return style.Render(
		lipgloss.JoinHorizontal(lipgloss.Center,
			left,
			titleStyle.Render(title),
			right,
		),
	)
}

func (h *Header) style() lipgloss.Style {
	style := h.common.Styles.Header.Base.
		Height(common.Rows(HeightUnits)).
		Padding(0, common.Columns(PaddingUnits))
	if h.containerStyle != nil {
		style = h.containerStyle(style)
	}
	return style
}

func slot(style lipgloss.Style, rows int, r common.Renderable) string {
	var v string
	if r != nil {
		v = r.View()
	}
	return style.
		Height(rows).
		AlignVertical(lipgloss.Center).
		Render(v)
}

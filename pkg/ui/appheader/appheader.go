// Package appheader composes the application header: a left control that
// opens the navigation drawer, the title of the focused screen, and a right
// control.
package appheader

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/younisrahman/appheader/pkg/nav"
	"github.com/younisrahman/appheader/pkg/ui/alert"
	"github.com/younisrahman/appheader/pkg/ui/common"
	"github.com/younisrahman/appheader/pkg/ui/components/header"
	"github.com/younisrahman/appheader/pkg/ui/components/pressable"
	"github.com/younisrahman/appheader/pkg/ui/icons"
)

const (
	// DefaultTitle is shown when there is neither a title nor a route.
	DefaultTitle = "Header"

	// RightPressedMessage is the alert raised by the default right action.
	RightPressedMessage = "Right pressed!"
)

// ErrNoNavigator is returned by the default left action when the header has
// no navigator to dispatch to.
var ErrNoNavigator = errors.New("no navigator")

// Model is the application header.
type Model struct {
	common   common.Common
	nav      nav.Navigator
	alerter  alert.Alerter
	registry *icons.Registry
	opts     Options
	header   *header.Header
	left     *pressable.Model
	right    *pressable.Model
}

var _ common.Component = (*Model)(nil)

// New returns a new header. A nil alerter raises alert.Msg.
func New(c common.Common, n nav.Navigator, a alert.Alerter, opts Options) *Model {
	if a == nil {
		a = alert.Messenger{}
	}
	m := &Model{
		common:   c,
		nav:      n,
		alerter:  a,
		registry: icons.Default,
		header:   header.New(c),
	}
	m.left = pressable.New(c, pressable.Params{
		OnPress: m.leftAction,
		Child:   common.RenderFunc(m.leftView),
		Align:   lipgloss.Left,
		Height:  common.Rows(header.HeightUnits),
	})
	m.right = pressable.New(c, pressable.Params{
		OnPress: m.rightAction,
		Child:   common.RenderFunc(m.rightView),
		Align:   lipgloss.Right,
		Height:  common.Rows(header.HeightUnits),
	})
	m.SetOptions(opts)
	return m
}

// SetOptions replaces the header options.
func (m *Model) SetOptions(opts Options) {
	m.opts = opts
	m.left.SetDisabled(opts.LeftPressDisable)
	m.right.SetDisabled(opts.RightPressDisable)
	m.header.SetContainerStyle(opts.HeaderStyle)
	m.header.SetTitleStyle(opts.TitleStyle)
}

// Options returns the current options.
func (m *Model) Options() Options {
	return m.opts
}

// SetRegistry sets the icon registry. It defaults to icons.Default.
func (m *Model) SetRegistry(r *icons.Registry) {
	if r != nil {
		m.registry = r
	}
}

// Left returns the left control.
func (m *Model) Left() *pressable.Model {
	return m.left
}

// Right returns the right control.
func (m *Model) Right() *pressable.Model {
	return m.right
}

// Title returns the title to show: the configured one, else the focused
// route's name, else DefaultTitle.
func (m *Model) Title() string {
	if m.opts.Title != "" {
		return m.opts.Title
	}
	if m.nav != nil {
		if r := m.nav.State().Current(); r != nil && r.Name != "" {
			return r.Name
		}
	}
	return DefaultTitle
}

// LeftGlyph returns the resolved left icon.
func (m *Model) LeftGlyph() icons.Glyph {
	return m.registry.Resolve(m.opts.leftDescriptor())
}

// RightGlyph returns the resolved right icon.
func (m *Model) RightGlyph() icons.Glyph {
	return m.registry.Resolve(m.opts.rightDescriptor())
}

// Height returns the rendered height of the header.
func (m *Model) Height() int {
	return m.header.Height()
}

// SetSize implements common.Component.
func (m *Model) SetSize(width, height int) {
	m.common.SetSize(width, height)
	m.header.SetSize(width, height)
}

// ShortHelp implements help.KeyMap.
func (m *Model) ShortHelp() []key.Binding {
	b := make([]key.Binding, 0, 2)
	if !m.left.Disabled() {
		b = append(b, m.common.KeyMap.Left)
	}
	if !m.right.Disabled() {
		b = append(b, m.common.KeyMap.Right)
	}
	return b
}

// FullHelp implements help.KeyMap.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, 2)
	for _, c := range []common.Renderable{m.opts.LeftComponent, m.opts.RightComponent} {
		if cm, ok := c.(common.Model); ok {
			cmds = append(cmds, cm.Init())
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (common.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.common.KeyMap.Left):
			cmds = append(cmds, m.left.Tap())
		case key.Matches(msg, m.common.KeyMap.Right):
			cmds = append(cmds, m.right.Tap())
		}
	}

	_, cmd := m.left.Update(msg)
	cmds = append(cmds, cmd)
	_, cmd = m.right.Update(msg)
	cmds = append(cmds, cmd)

	if cm, ok := m.opts.LeftComponent.(common.Model); ok {
		nm, cmd := cm.Update(msg)
		m.opts.LeftComponent = nm
		cmds = append(cmds, cmd)
	}
	if cm, ok := m.opts.RightComponent.(common.Model); ok {
		nm, cmd := cm.Update(msg)
		m.opts.RightComponent = nm
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *Model) View() string {
	m.header.SetSlots(m.left, m.Title(), m.right)
	return m.header.View()
}

func (m *Model) leftAction() tea.Cmd {
	if m.opts.OnLeftPress != nil {
		return m.opts.OnLeftPress()
	}
	if m.nav == nil {
		return common.ErrorCmd(ErrNoNavigator)
	}
	a := nav.DrawerActions.OpenDrawer()
	m.common.Logger.Debug("dispatch", "action", a.Type)
	if err := m.nav.Dispatch(a); err != nil {
		return common.ErrorCmd(err)
	}
	return nil
}

func (m *Model) rightAction() tea.Cmd {
	if m.opts.OnRightPress != nil {
		return m.opts.OnRightPress()
	}
	return m.alerter.Alert(RightPressedMessage)
}

func (m *Model) leftView() string {
	if m.opts.LeftComponent != nil {
		return m.opts.LeftComponent.View()
	}
	return m.iconView(m.LeftGlyph(), m.opts.LeftIcon.Style)
}

func (m *Model) rightView() string {
	if m.opts.RightComponent != nil {
		return m.opts.RightComponent.View()
	}
	return m.iconView(m.RightGlyph(), m.opts.RightIcon.Style)
}

func (m *Model) iconView(g icons.Glyph, fn header.StyleFunc) string {
	style := m.common.Renderer.NewStyle()
	if fn != nil {
		style = fn(style)
	}
	return g.Render(style)
}

// Package drawer implements the navigation drawer listing the screens.
package drawer

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/younisrahman/appheader/pkg/nav"
	"github.com/younisrahman/appheader/pkg/ui/common"
	"github.com/younisrahman/appheader/pkg/ui/icons"
)

// DefaultTitle is the title shown above the items.
const DefaultTitle = "Screens"

// Width is the drawer width in cells, borders included.
const Width = 28

// SelectMsg is sent when an item is selected.
type SelectMsg struct{ Item nav.DrawerItem }

// Drawer is a list of screens.
type Drawer struct {
	common common.Common
	list   list.Model
}

var _ common.Component = (*Drawer)(nil)

// New creates a new drawer.
func New(c common.Common, items []nav.DrawerItem) *Drawer {
	d := &Drawer{common: c}
	l := list.New(toListItems(items), ItemDelegate{
		common:   &d.common,
		registry: icons.Default,
	}, 0, 0)
	l.Title = DefaultTitle
	l.Styles.Title = c.Styles.Drawer.Title
	l.Styles.TitleBar = c.Renderer.NewStyle()
	l.Styles.NoItems = c.Styles.NoContent
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	d.list = l
	d.SetSize(c.Width, c.Height)
	return d
}

func toListItems(items []nav.DrawerItem) []list.Item {
	its := make([]list.Item, len(items))
	for i, item := range items {
		its[i] = Item{item}
	}
	return its
}

// SetItems sets the items in the drawer.
func (d *Drawer) SetItems(items []nav.DrawerItem) tea.Cmd {
	return d.list.SetItems(toListItems(items))
}

// SetSize implements common.Component. The width is fixed.
func (d *Drawer) SetSize(_, height int) {
	d.common.SetSize(Width, height)
	st := d.common.Styles.Drawer.Base
	d.list.SetSize(
		max(Width-st.GetHorizontalFrameSize(), 0),
		max(height-st.GetVerticalFrameSize(), 0),
	)
}

// Index returns the index of the highlighted item.
func (d *Drawer) Index() int {
	return d.list.Index()
}

// Selected returns the highlighted item.
func (d *Drawer) Selected() (nav.DrawerItem, bool) {
	i, ok := d.list.SelectedItem().(Item)
	return i.DrawerItem, ok
}

// SelectName highlights the item with the given name.
func (d *Drawer) SelectName(name string) {
	for i, item := range d.list.Items() {
		if it, ok := item.(Item); ok && it.Name == name {
			d.list.Select(i)
			return
		}
	}
}

// ShortHelp implements help.KeyMap.
func (d *Drawer) ShortHelp() []key.Binding {
	return []key.Binding{
		d.common.KeyMap.Navigate,
		d.common.KeyMap.Select,
	}
}

// FullHelp implements help.KeyMap.
func (d *Drawer) FullHelp() [][]key.Binding {
	return [][]key.Binding{d.ShortHelp()}
}

// Init implements tea.Model.
func (d *Drawer) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (d *Drawer) Update(msg tea.Msg) (common.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			d.list.CursorUp()
		case tea.MouseButtonWheelDown:
			d.list.CursorDown()
		case tea.MouseButtonLeft:
			for i, item := range d.list.VisibleItems() {
				it, ok := item.(Item)
				if !ok {
					continue
				}
				if z := d.common.Zone.Get(it.ID()); z != nil && z.InBounds(msg) {
					d.list.Select(i)
					cmds = append(cmds, d.selectCmd)
					break
				}
			}
		}
		return d, tea.Batch(cmds...)
	case tea.KeyMsg:
		if key.Matches(msg, d.common.KeyMap.Select) {
			cmds = append(cmds, d.selectCmd)
		}
	}
	l, cmd := d.list.Update(msg)
	d.list = l
	cmds = append(cmds, cmd)
	return d, tea.Batch(cmds...)
}

// View implements tea.Model.
func (d *Drawer) View() string {
	st := d.common.Styles.Drawer.Base
	return st.
		Width(Width - st.GetHorizontalBorderSize()).
		Height(max(d.common.Height-st.GetVerticalBorderSize(), 0)).
		MaxHeight(d.common.Height).
		Render(d.list.View())
}

func (d *Drawer) selectCmd() tea.Msg {
	item, ok := d.Selected()
	if !ok {
		return nil
	}
	d.common.Logger.Debug("drawer select", "screen", item.Name)
	return SelectMsg{item}
}

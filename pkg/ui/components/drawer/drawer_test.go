package drawer

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matryer/is"
	"github.com/younisrahman/appheader/pkg/nav"
	"github.com/younisrahman/appheader/pkg/ui/common"
)

var items = []nav.DrawerItem{
	{Name: "Home", LeftIcon: "home", LeftIconFamily: "Feather"},
	{Name: "Profile", DrawerLabel: "My profile"},
	{Name: "Settings", RightIcon: "bell", RightIconFamily: "Feather"},
}

func newDrawer(t *testing.T) *Drawer {
	t.Helper()
	c := common.NewCommon(context.TODO(), lipgloss.NewRenderer(io.Discard), 80, 20)
	t.Cleanup(c.Zone.Close)
	return New(c, items)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func selected(t *testing.T, cmd tea.Cmd) (SelectMsg, bool) {
	t.Helper()
	if cmd == nil {
		return SelectMsg{}, false
	}
	switch msg := cmd().(type) {
	case SelectMsg:
		return msg, true
	case tea.BatchMsg:
		for _, c := range msg {
			if m, ok := selected(t, c); ok {
				return m, true
			}
		}
	}
	return SelectMsg{}, false
}

func TestView(t *testing.T) {
	is := is.New(t)
	d := newDrawer(t)
	v := d.common.Zone.Scan(d.View())
	is.True(strings.Contains(v, DefaultTitle))
	is.True(strings.Contains(v, "Home"))
	is.True(strings.Contains(v, "My profile")) // label wins over name
	is.True(strings.Contains(v, "Settings"))
	is.True(strings.Contains(v, "┃"))  // active item marker
	is.True(strings.Contains(v, "🔔")) // right icon
	lines := strings.Split(v, "\n")
	is.Equal(len(lines), 20)
	for _, l := range lines {
		is.Equal(lipgloss.Width(l), Width)
	}
}

func TestNavigateAndSelect(t *testing.T) {
	is := is.New(t)
	d := newDrawer(t)
	item, ok := d.Selected()
	is.True(ok)
	is.Equal(item.Name, "Home")

	d.Update(keyMsg("down"))
	is.Equal(d.Index(), 1)
	_, cmd := d.Update(keyMsg("enter"))
	msg, ok := selected(t, cmd)
	is.True(ok)
	is.Equal(msg.Item.Name, "Profile")
}

func TestSelectName(t *testing.T) {
	is := is.New(t)
	d := newDrawer(t)
	d.SelectName("Settings")
	is.Equal(d.Index(), 2)
	d.SelectName("Nowhere")
	is.Equal(d.Index(), 2)
}

func TestSetItems(t *testing.T) {
	is := is.New(t)
	d := newDrawer(t)
	d.SetItems(nil)
	_, ok := d.Selected()
	is.True(!ok)
	_, cmd := d.Update(keyMsg("enter"))
	_, ok = selected(t, cmd)
	is.True(!ok)
}

func TestFixedWidth(t *testing.T) {
	is := is.New(t)
	d := newDrawer(t)
	d.SetSize(200, 10)
	is.Equal(d.common.Width, Width)
	is.Equal(len(strings.Split(d.View(), "\n")), 10)
}

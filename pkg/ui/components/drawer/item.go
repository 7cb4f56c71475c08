package drawer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/younisrahman/appheader/pkg/nav"
	"github.com/younisrahman/appheader/pkg/ui/common"
	"github.com/younisrahman/appheader/pkg/ui/icons"
)

// Item is a drawer entry. Implements list.Item.
type Item struct {
	nav.DrawerItem
}

// ID returns the mouse zone ID of the item.
func (i Item) ID() string {
	return "drawer-" + i.Name
}

// FilterValue implements list.Item.
func (i Item) FilterValue() string { return i.Label() }

// ItemDelegate renders drawer items.
type ItemDelegate struct {
	common   *common.Common
	registry *icons.Registry
}

var _ list.ItemDelegate = ItemDelegate{}

// Height implements list.ItemDelegate.
func (d ItemDelegate) Height() int { return 1 }

// Spacing implements list.ItemDelegate.
func (d ItemDelegate) Spacing() int { return 0 }

// Update implements list.ItemDelegate.
func (d ItemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

// Render implements list.ItemDelegate.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(Item)
	if !ok {
		return
	}

	styles := d.common.Styles.Drawer.Normal
	if index == m.Index() {
		styles = d.common.Styles.Drawer.Active
	}

	// Icons are optional on drawer items.
	var left, right string
	if i.LeftIcon != "" {
		left = d.registry.Resolve(icons.Descriptor{
			Name:   i.LeftIcon,
			Family: i.LeftIconFamily,
			Size:   i.LeftIconSize,
			Color:  i.LeftIconColor,
		}).Render(styles.Icon)
	}
	if i.RightIcon != "" {
		right = d.registry.Resolve(icons.Descriptor{
			Name:   i.RightIcon,
			Family: i.RightIconFamily,
			Size:   i.RightIconSize,
			Color:  i.RightIconColor,
		}).Render(styles.Icon.UnsetMarginRight().MarginLeft(1))
	}

	avail := m.Width() - styles.Base.GetHorizontalFrameSize() - lipgloss.Width(left) - lipgloss.Width(right)
	label := styles.Label.Render(common.TruncateString(i.Label(), max(avail, 0)))

	line := styles.Base.Render(lipgloss.JoinHorizontal(lipgloss.Center, left, label, right))
	fmt.Fprint(w, d.common.Zone.Mark(i.ID(), line)) //nolint:errcheck
}

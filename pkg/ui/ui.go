// Package ui is the full-screen demo of the application header.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/younisrahman/appheader/pkg/config"
	"github.com/younisrahman/appheader/pkg/nav"
	"github.com/younisrahman/appheader/pkg/ui/alert"
	"github.com/younisrahman/appheader/pkg/ui/appheader"
	"github.com/younisrahman/appheader/pkg/ui/common"
	"github.com/younisrahman/appheader/pkg/ui/components/body"
	"github.com/younisrahman/appheader/pkg/ui/components/drawer"
	"github.com/younisrahman/appheader/pkg/ui/components/footer"
	"github.com/younisrahman/appheader/pkg/ui/components/statusbar"
)

type sessionState int

const (
	startState sessionState = iota
	errorState
)

// UI is the main UI model.
type UI struct {
	common     common.Common
	name       string
	host       *nav.Host
	bodies     map[string]string
	route      string
	opts       appheader.Options
	header     *appheader.Model
	body       *body.Body
	drawer     *drawer.Drawer
	statusbar  *statusbar.Model
	footer     *footer.Footer
	state      sessionState
	showFooter bool
	error      error
}

var _ tea.Model = (*UI)(nil)

// New returns a new UI model for the screens of cfg.
func New(c common.Common, cfg *config.Config) *UI {
	items := make([]nav.DrawerItem, 0, len(cfg.Screens))
	bodies := make(map[string]string, len(cfg.Screens))
	for _, s := range cfg.Screens {
		items = append(items, nav.DrawerItem{
			Name:            s.Name,
			DrawerLabel:     s.Label,
			Title:           s.Title,
			LeftIcon:        s.LeftIcon,
			LeftIconFamily:  s.LeftIconFamily,
			LeftIconSize:    s.LeftIconSize,
			LeftIconColor:   s.LeftIconColor,
			RightIcon:       s.RightIcon,
			RightIconFamily: s.RightIconFamily,
			RightIconSize:   s.RightIconSize,
			RightIconColor:  s.RightIconColor,
		})
		bodies[s.Name] = s.Body
	}

	host := nav.NewHost(items...)
	ui := &UI{
		common:    c,
		name:      cfg.Name,
		host:      host,
		bodies:    bodies,
		opts:      appheader.OptionsFromConfig(cfg.Header),
		body:      body.New(c),
		drawer:    drawer.New(c, items),
		statusbar: statusbar.New(c),
		state:     startState,
	}
	ui.header = appheader.New(c, host, alert.Messenger{Title: cfg.Name}, ui.opts)
	ui.statusbar.SetAlertTimeout(cfg.UI.AlertTimeout)
	ui.footer = footer.New(c, ui)
	ui.sync() //nolint:errcheck
	ui.SetSize(c.Width, c.Height)
	return ui
}

// Host returns the navigation host.
func (ui *UI) Host() *nav.Host {
	return ui.host
}

func (ui *UI) getMargins() (wm, hm int) {
	style := ui.common.Styles.App
	wm = style.GetHorizontalFrameSize()
	hm = style.GetVerticalFrameSize() +
		ui.header.Height() +
		lipgloss.Height(ui.statusbar.View())
	if ui.showFooter {
		hm += ui.footer.Height()
	}
	return
}

// ShortHelp implements help.KeyMap.
func (ui *UI) ShortHelp() []key.Binding {
	b := make([]key.Binding, 0)
	switch {
	case ui.state == errorState:
		b = append(b, ui.common.KeyMap.Back)
	case ui.host.State().DrawerOpen:
		b = append(b, ui.drawer.ShortHelp()...)
		b = append(b, ui.common.KeyMap.Drawer)
	default:
		b = append(b, ui.header.ShortHelp()...)
		b = append(b, ui.body.ShortHelp()...)
		b = append(b, ui.common.KeyMap.Drawer, ui.common.KeyMap.Back)
	}
	b = append(b, ui.common.KeyMap.Quit, ui.common.KeyMap.Help)
	return b
}

// FullHelp implements help.KeyMap.
func (ui *UI) FullHelp() [][]key.Binding {
	b := make([][]key.Binding, 0)
	switch {
	case ui.state == errorState:
		b = append(b, []key.Binding{ui.common.KeyMap.Back})
	case ui.host.State().DrawerOpen:
		b = append(b, ui.drawer.FullHelp()...)
	default:
		b = append(b, ui.header.FullHelp()...)
		b = append(b, ui.body.FullHelp()...)
	}
	b = append(b, []key.Binding{
		ui.common.KeyMap.Drawer,
		ui.common.KeyMap.Back,
	}, []key.Binding{
		ui.common.KeyMap.Quit,
		ui.common.KeyMap.Help,
	})
	return b
}

// SetSize implements common.Component.
func (ui *UI) SetSize(width, height int) {
	ui.common.SetSize(width, height)
	wm := ui.common.Styles.App.GetHorizontalFrameSize()
	ui.header.SetSize(width-wm, height)
	ui.statusbar.SetSize(width-wm, 1)
	ui.footer.SetSize(width-wm, height)
	_, hm := ui.getMargins()
	h := max(height-hm, 0)
	ui.drawer.SetSize(drawer.Width, h)
	bw := max(width-wm, 0)
	if ui.host.State().DrawerOpen {
		bw = max(bw-drawer.Width, 0)
	}
	bs := ui.common.Styles.Body
	ui.body.SetSize(
		max(bw-bs.GetHorizontalFrameSize(), 0),
		max(h-bs.GetVerticalFrameSize(), 0),
	)
}

// Init implements tea.Model.
func (ui *UI) Init() tea.Cmd {
	return tea.Batch(
		ui.header.Init(),
		ui.body.Init(),
		ui.drawer.Init(),
		ui.statusbar.Init(),
		ui.footer.Init(),
	)
}

// Update implements tea.Model.
func (ui *UI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ui.common.Logger.Debugf("msg received: %T", msg)
	cmds := make([]tea.Cmd, 0)
	drawerOpen := ui.host.State().DrawerOpen
	toHeader := true
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ui.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ui.common.KeyMap.Quit):
			// Stop bubblezone background workers.
			ui.common.Zone.Close()
			return ui, tea.Quit
		case key.Matches(msg, ui.common.KeyMap.Back) && ui.error != nil:
			ui.error = nil
			ui.state = startState
			return ui, nil
		case key.Matches(msg, ui.common.KeyMap.Help):
			cmds = append(cmds, footer.ToggleFooterCmd)
		case key.Matches(msg, ui.common.KeyMap.Drawer):
			cmds = append(cmds, ui.dispatch(nav.DrawerActions.ToggleDrawer()))
			toHeader = false
		case key.Matches(msg, ui.common.KeyMap.Back):
			if drawerOpen {
				cmds = append(cmds, ui.dispatch(nav.DrawerActions.CloseDrawer()))
			} else {
				cmds = append(cmds, ui.dispatch(nav.GoBack()))
			}
			toHeader = false
		}
		if drawerOpen {
			// The drawer has the keyboard while it is open.
			toHeader = false
			_, cmd := ui.drawer.Update(msg)
			cmds = append(cmds, cmd)
		} else if ui.state == startState {
			_, cmd := ui.body.Update(msg)
			cmds = append(cmds, cmd)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			switch {
			case ui.common.Zone.Get(footer.ZoneID).InBounds(msg),
				ui.common.Zone.Get(statusbar.HelpZoneID).InBounds(msg):
				cmds = append(cmds, footer.ToggleFooterCmd)
			}
		}
		if drawerOpen {
			_, cmd := ui.drawer.Update(msg)
			cmds = append(cmds, cmd)
		} else if ui.state == startState {
			_, cmd := ui.body.Update(msg)
			cmds = append(cmds, cmd)
		}
	case drawer.SelectMsg:
		cmds = append(cmds, ui.dispatch(nav.Navigate(msg.Item.Name, nil)))
	case footer.ToggleFooterMsg:
		ui.showFooter = !ui.showFooter
		ui.footer.Update(msg)
	case common.ErrorMsg:
		ui.error = msg
		ui.state = errorState
		ui.showFooter = true
		ui.footer.SetShowAll(false)
	}

	if toHeader {
		_, cmd := ui.header.Update(msg)
		cmds = append(cmds, cmd)
	}
	_, cmd := ui.statusbar.Update(msg)
	cmds = append(cmds, cmd)

	cmds = append(cmds, ui.sync())
	// This fixes determining the height margin of the footer.
	ui.SetSize(ui.common.Width, ui.common.Height)

	return ui, tea.Batch(cmds...)
}

func (ui *UI) dispatch(a nav.Action) tea.Cmd {
	ui.common.Logger.Debug("dispatch", "action", a.Type, "target", a.Target)
	if err := ui.host.Dispatch(a); err != nil {
		return common.ErrorCmd(err)
	}
	return nil
}

// sync points the header, body, drawer, and status bar at the focused
// screen.
func (ui *UI) sync() tea.Cmd {
	st := ui.host.State()
	cur := st.Current()
	if cur == nil {
		ui.header.SetOptions(ui.opts)
		return ui.body.SetContent("")
	}
	item, _ := ui.host.Item(cur.Name)
	ui.header.SetOptions(ui.opts.WithItem(item))
	ui.statusbar.SetStatus(ui.name, item.Label(), fmt.Sprintf("%d/%d", st.Index+1, len(st.Routes)))
	if cur.Key == ui.route {
		return nil
	}
	ui.route = cur.Key
	ui.drawer.SelectName(cur.Name)
	return ui.body.SetContent(ui.bodies[cur.Name])
}

// View implements tea.Model.
func (ui *UI) View() string {
	style := ui.common.Styles.App
	wm, hm := ui.getMargins()
	width := max(ui.common.Width-wm, 0)
	height := max(ui.common.Height-hm, 0)

	var body string
	switch ui.state {
	case errorState:
		err := ui.common.Styles.ErrorTitle.Render("Bummer")
		err += ui.common.Styles.ErrorBody.Render(ui.error.Error())
		body = ui.common.Styles.Error.
			Width(max(width-ui.common.Styles.ErrorBody.GetHorizontalFrameSize(), 0)).
			Height(max(height-ui.common.Styles.Error.GetVerticalFrameSize(), 0)).
			Render(err)
	default:
		bodyWidth := width
		var drawerView string
		if ui.host.State().DrawerOpen {
			drawerView = ui.drawer.View()
			bodyWidth = max(width-lipgloss.Width(drawerView), 0)
		}
		bs := ui.common.Styles.Body
		body = bs.
			Width(max(bodyWidth-bs.GetHorizontalMargins(), 0)).
			Height(max(height-bs.GetVerticalMargins(), 0)).
			MaxHeight(height).
			Render(ui.body.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, drawerView, body)
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		ui.header.View(),
		body,
		ui.statusbar.View(),
	)
	if ui.showFooter {
		view = lipgloss.JoinVertical(lipgloss.Left, view, ui.footer.View())
	}

	return ui.common.Zone.Scan(style.Render(view))
}

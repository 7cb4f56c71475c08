package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// XXX: For now, this is in its own package so that it can be shared between
// different packages without incurring an illegal import cycle.

// ShadowBorder draws the bottom elevation shadow of the header band.
var ShadowBorder = lipgloss.Border{
	Bottom: "▔",
}

// Styles defines styles for the UI.
type Styles struct {
	App lipgloss.Style

	Header struct {
		Base  lipgloss.Style
		Title lipgloss.Style
		Left  lipgloss.Style
		Right lipgloss.Style
	}

	Pressable struct {
		Rest    lipgloss.Style
		Pressed lipgloss.Style
	}

	Drawer struct {
		Base   lipgloss.Style
		Title  lipgloss.Style
		Normal struct {
			Base  lipgloss.Style
			Icon  lipgloss.Style
			Label lipgloss.Style
		}
		Active struct {
			Base  lipgloss.Style
			Icon  lipgloss.Style
			Label lipgloss.Style
		}
	}

	Body lipgloss.Style

	Footer      lipgloss.Style
	HelpKey     lipgloss.Style
	HelpValue   lipgloss.Style
	HelpDivider lipgloss.Style

	Error      lipgloss.Style
	ErrorTitle lipgloss.Style
	ErrorBody  lipgloss.Style

	StatusBar       lipgloss.Style
	StatusBarKey    lipgloss.Style
	StatusBarValue  lipgloss.Style
	StatusBarInfo   lipgloss.Style
	StatusBarAlert  lipgloss.Style
	StatusBarHelp   lipgloss.Style
	NoContent       lipgloss.Style
	TableHeader     lipgloss.Style
	TableCell       lipgloss.Style
	TableBorderLine lipgloss.Style
}

// DefaultStyles returns default styles for the UI.
func DefaultStyles(r *lipgloss.Renderer) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	background := lipgloss.Color("#ffffff")
	shadow := lipgloss.Color("#e6e6e6")
	accent := lipgloss.Color("#007aff")

	s := new(Styles)

	s.App = r.NewStyle()

	s.Header.Base = r.NewStyle().
		Background(background).
		BorderStyle(ShadowBorder).
		BorderBottom(true).
		BorderForeground(shadow)

	s.Header.Title = r.NewStyle().
		Background(background).
		Foreground(lipgloss.Color("#333333")).
		Bold(true).
		Align(lipgloss.Center)

	s.Header.Left = r.NewStyle().
		Background(background).
		Align(lipgloss.Left)

	s.Header.Right = r.NewStyle().
		Background(background).
		Align(lipgloss.Right)

	s.Pressable.Rest = r.NewStyle().
		Background(background)

	s.Pressable.Pressed = s.Pressable.Rest.
		Faint(true)

	s.Drawer.Base = r.NewStyle().
		Padding(1, 2).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color("241"))

	s.Drawer.Title = r.NewStyle().
		Bold(true).
		Foreground(accent).
		MarginBottom(1)

	s.Drawer.Normal.Base = r.NewStyle().
		PaddingLeft(1).
		Border(lipgloss.Border{Left: " "}, false, false, false, true)

	s.Drawer.Normal.Icon = r.NewStyle().
		MarginRight(1)

	s.Drawer.Normal.Label = r.NewStyle().
		Foreground(lipgloss.Color("250"))

	s.Drawer.Active.Base = s.Drawer.Normal.Base.
		BorderStyle(lipgloss.Border{Left: "┃"}).
		BorderForeground(accent)

	s.Drawer.Active.Icon = s.Drawer.Normal.Icon

	s.Drawer.Active.Label = s.Drawer.Normal.Label.
		Foreground(accent).
		Bold(true)

	s.Body = r.NewStyle().
		Padding(1, 2)

	s.Footer = r.NewStyle().
		MarginTop(1).
		Padding(0, 1).
		Height(1)

	s.HelpKey = r.NewStyle().
		Foreground(lipgloss.Color("241"))

	s.HelpValue = r.NewStyle().
		Foreground(lipgloss.Color("239"))

	s.HelpDivider = r.NewStyle().
		Foreground(lipgloss.Color("237")).
		SetString(" • ")

	s.Error = r.NewStyle().
		MarginTop(2)

	s.ErrorTitle = r.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("204")).
		Bold(true).
		Padding(0, 1)

	s.ErrorBody = r.NewStyle().
		Foreground(lipgloss.Color("252")).
		MarginLeft(2)

	s.StatusBar = r.NewStyle().
		Height(1)

	s.StatusBarKey = r.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(lipgloss.Color("206")).
		Foreground(lipgloss.Color("228"))

	s.StatusBarValue = r.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("243"))

	s.StatusBarInfo = r.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("212")).
		Foreground(lipgloss.Color("230"))

	s.StatusBarAlert = r.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("62")).
		Foreground(lipgloss.Color("230"))

	s.StatusBarHelp = r.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("237")).
		Foreground(lipgloss.Color("243"))

	s.NoContent = r.NewStyle().
		SetString("No Content.").
		MarginTop(1).
		MarginLeft(2).
		Foreground(lipgloss.Color("242"))

	s.TableHeader = r.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(accent)

	s.TableCell = r.NewStyle().
		Padding(0, 1)

	s.TableBorderLine = r.NewStyle().
		Foreground(lipgloss.Color("238"))

	return s
}
